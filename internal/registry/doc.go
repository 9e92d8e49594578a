// Package registry provides the glue between puzzle manifests and the
// compiled Go solvers.
//
// Each day package registers a Solver under its puzzle name ("day01", ...).
// The manifests loaded by the `hcl` package describe which runs to perform
// for that puzzle. At startup the registry is populated from both sides and
// then validated, so a manifest without code or an options block the solver
// cannot accept is reported before any puzzle runs.
package registry

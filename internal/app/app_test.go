package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/aoc2023/internal/executor"
	"github.com/specialistvlad/aoc2023/internal/registry"
	"github.com/specialistvlad/aoc2023/internal/textinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sumOptions struct {
	Scale int `hcl:"scale,optional"`
}

// sumModule registers a "sum" puzzle: part 1 sums the numbers, part 2
// multiplies them, both times the scale option.
type sumModule struct{}

func (sumModule) Register(r *registry.Registry) {
	parse := func(r io.Reader) ([]int, error) {
		lines, err := textinput.Lines(r)
		if err != nil {
			return nil, err
		}
		return textinput.Ints(strings.Join(lines, " "))
	}
	r.RegisterSolver(registry.NewSolverWithOptions("sum", parse,
		func() sumOptions { return sumOptions{Scale: 1} },
		func(nums []int, o sumOptions) (int, error) {
			s := 0
			for _, n := range nums {
				s += n
			}
			return s * o.Scale, nil
		},
		func(nums []int, o sumOptions) (int, error) {
			p := 1
			for _, n := range nums {
				p *= n
			}
			return p * o.Scale, nil
		},
	))
}

// writeTree creates files under a temp dir and returns its path.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

const sumManifest = `
puzzle "sum" {
  title = "Adding Up"

  run "sample" {
    file  = "sample.txt"
    part1 = 6
    part2 = 6
  }

  run "scaled" {
    file  = "sample.txt"
    parts = [1]
    part1 = 60

    options {
      scale = 10
    }
  }

  run "input" {
    file     = "input.txt"
    optional = true
  }
}
`

func TestApp_Run(t *testing.T) {
	// --- Arrange ---
	root := writeTree(t, map[string]string{
		"sum/puzzle.hcl": sumManifest,
		"sum/sample.txt": "1 2\n3\n",
	})
	a, out, logs, err := SetupAppTest(t, &Config{PuzzlesPath: root}, sumModule{})
	require.NoError(t, err)

	// --- Act ---
	err = a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	want := "--- sum: Adding Up ---\n" +
		"Sample part 1: 6 ✅\n" +
		"Sample part 2: 6 ✅\n" +
		"Scaled part 1: 60 ✅\n"
	assert.Equal(t, want, out.String())
	assert.Contains(t, logs.String(), "skipping optional run")
}

func TestApp_Run_RealInput(t *testing.T) {
	root := writeTree(t, map[string]string{
		"sum/puzzle.hcl": sumManifest,
		"sum/sample.txt": "1 2\n3\n",
		"sum/input.txt":  "4 5\n",
	})
	a, out, _, err := SetupAppTest(t, &Config{PuzzlesPath: root}, sumModule{})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Part 1: 9\nPart 2: 20\n")
}

func TestApp_Run_SamplesOnly(t *testing.T) {
	root := writeTree(t, map[string]string{
		"sum/puzzle.hcl": sumManifest,
		"sum/sample.txt": "1 2\n3\n",
		"sum/input.txt":  "4 5\n",
	})
	a, out, _, err := SetupAppTest(t, &Config{PuzzlesPath: root, SamplesOnly: true}, sumModule{})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))
	assert.NotContains(t, out.String(), "Part 1:")
}

func TestApp_Run_Mismatch(t *testing.T) {
	root := writeTree(t, map[string]string{
		"puzzle.hcl": `
puzzle "sum" {
  title = "Adding Up"
  run "sample" {
    file  = "sample.txt"
    part1 = 7
  }
}
`,
		"sample.txt": "1 2 3\n",
	})
	a, out, _, err := SetupAppTest(t, &Config{PuzzlesPath: root}, sumModule{})
	require.NoError(t, err)

	err = a.Run(context.Background())

	require.ErrorIs(t, err, executor.ErrAnswerMismatch)
	assert.Contains(t, out.String(), "Sample part 1: 6 ❌ (want 7)")
	assert.Contains(t, out.String(), "Sample part 2: 6\n")
}

func TestApp_Run_UnknownPuzzle(t *testing.T) {
	root := writeTree(t, map[string]string{
		"puzzle.hcl": sumManifest,
		"sample.txt": "1\n",
	})
	a, _, _, err := SetupAppTest(t, &Config{PuzzlesPath: root, Puzzles: []string{"day42"}}, sumModule{})
	require.NoError(t, err)

	err = a.Run(context.Background())
	require.ErrorIs(t, err, registry.ErrUnknownPuzzle)
}

func TestNewApp_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "manifest without solver",
			manifest: `puzzle "day99" {}`,
			wantErr:  "no Go solver is registered",
		},
		{
			name: "unknown option",
			manifest: `
puzzle "sum" {
  run "sample" {
    file = "sample.txt"
    options {
      colour = "red"
    }
  }
}`,
			wantErr: "failed to decode options",
		},
		{
			name: "bad parts",
			manifest: `
puzzle "sum" {
  run "sample" {
    file  = "sample.txt"
    parts = [3]
  }
}`,
			wantErr: "parts may only contain 1 and 2",
		},
		{
			name:     "syntax error",
			manifest: `puzzle "sum" {`,
			wantErr:  "failed to parse HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := writeTree(t, map[string]string{"puzzle.hcl": tc.manifest})

			_, _, _, err := SetupAppTest(t, &Config{PuzzlesPath: root}, sumModule{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestApp_AllDaySamples(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every day's samples")
	}

	a, out, _, err := SetupAppTest(t, &Config{PuzzlesPath: "../../days", SamplesOnly: true, WorkerCount: 4})
	require.NoError(t, err)
	assert.Len(t, a.Registry().Solvers, len(coreModules))

	require.NoError(t, a.Run(context.Background()))

	report := out.String()
	assert.NotContains(t, report, "❌")
	assert.Less(t, strings.Index(report, "--- day01:"), strings.Index(report, "--- day16:"))
	assert.Contains(t, report, "--- day11: Cosmic Expansion ---\nSample part 1: 374 ✅\nSample part 2: 82000210 ✅\n")
}

package grid

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all headings clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta returns the position offset of a single step.
func (d Direction) Delta() Pos {
	switch d {
	case Up:
		return Pos{-1, 0}
	case Right:
		return Pos{0, 1}
	case Down:
		return Pos{1, 0}
	case Left:
		return Pos{0, -1}
	}
	return Pos{}
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Bit returns a single-bit mask for d, handy for per-cell visited sets.
func (d Direction) Bit() uint8 {
	return 1 << d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return "?"
}

package chess

// Direction classifies the geometric relationship between two squares.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
	KnightJump // L-shaped leap, not a ray
	Illegal    // no piece may move this way as a primitive
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	names := []string{"Up", "Down", "Left", "Right", "UpLeft", "UpRight", "DownLeft", "DownRight", "Knight", "Illegal"}
	if d >= 0 && int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// IsStraight reports whether d runs along a rank or a file.
func (d Direction) IsStraight() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	default:
		return false
	}
}

// IsDiagonal reports whether d is one of the four diagonals.
func (d Direction) IsDiagonal() bool {
	switch d {
	case UpLeft, UpRight, DownLeft, DownRight:
		return true
	default:
		return false
	}
}

// IsRay reports whether squares can be walked one at a time along d.
func (d Direction) IsRay() bool {
	return d.IsStraight() || d.IsDiagonal()
}

// IsUpward reports whether d increases the rank.
func (d Direction) IsUpward() bool {
	return d == Up || d == UpLeft || d == UpRight
}

// IsDownward reports whether d decreases the rank.
func (d Direction) IsDownward() bool {
	return d == Down || d == DownLeft || d == DownRight
}

// IsLeftward reports whether d decreases the file.
func (d Direction) IsLeftward() bool {
	return d == Left || d == UpLeft || d == DownLeft
}

// IsRightward reports whether d increases the file.
func (d Direction) IsRightward() bool {
	return d == Right || d == UpRight || d == DownRight
}

// Step returns the file and rank increments of one step along d.
// Both are zero for non-ray directions.
func (d Direction) Step() (df, dr int) {
	if !d.IsRay() {
		return 0, 0
	}
	if d.IsRightward() {
		df = 1
	} else if d.IsLeftward() {
		df = -1
	}
	if d.IsUpward() {
		dr = 1
	} else if d.IsDownward() {
		dr = -1
	}
	return df, dr
}

// Opposite returns the reverse of a ray direction.
// KnightJump and Illegal are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return DownRight
	case DownRight:
		return UpLeft
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	default:
		return d
	}
}

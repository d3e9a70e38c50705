package chess

// movement is the shape of motion a piece kind uses.
type movement int

const (
	rayMove  movement = iota // any distance along allowed directions, blockable
	leapMove                 // fixed knight offset, never blocked
	stepMove                 // exactly one square along allowed directions
	pawnMove                 // forward push, double push, diagonal capture
)

// moveRule is the movement table entry for a piece kind.
type moveRule struct {
	movement movement
	straight bool
	diagonal bool
}

// allows reports whether the rule permits travelling along dir.
func (r moveRule) allows(dir Direction) bool {
	return (r.straight && dir.IsStraight()) || (r.diagonal && dir.IsDiagonal())
}

var moveRules = [NumPieceKinds]moveRule{
	Pawn:   {movement: pawnMove},
	Knight: {movement: leapMove},
	Bishop: {movement: rayMove, diagonal: true},
	Rook:   {movement: rayMove, straight: true},
	Queen:  {movement: rayMove, straight: true, diagonal: true},
	King:   {movement: stepMove, straight: true, diagonal: true},
}

// IsRay reports whether the kind moves along blockable rays.
func (k PieceKind) IsRay() bool {
	return k > NoPiece && k < NumPieceKinds && moveRules[k].movement == rayMove
}

// Piece is a chess piece standing on a square. Owner is the owning
// player's colour; the piece holds no reference to the player itself.
type Piece struct {
	Kind  PieceKind
	Owner Colour
	Pos   Position
}

// IsEmpty reports whether p describes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Owner == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// Name returns the full name of the piece kind.
func (p Piece) Name() string {
	return p.Kind.String()
}

// String returns the piece letter followed by its square, e.g. "NG1".
func (p Piece) String() string {
	return string(p.Letter()) + p.Pos.String()
}

// CanMoveTo reports whether the piece's geometry allows a move to dest.
// destOccupied says whether dest holds an opposing piece; only pawns use it.
// For blockable moves the squares strictly between the piece and dest are
// appended to crossed, and the caller must verify they are all empty. The
// board is never consulted here.
func (p Piece) CanMoveTo(dest Position, destOccupied bool, crossed []Position) ([]Position, bool) {
	if p.Kind <= NoPiece || p.Kind >= NumPieceKinds {
		return crossed, false
	}
	dir := p.Pos.DirectionTo(dest)
	rule := moveRules[p.Kind]

	switch rule.movement {
	case leapMove:
		return crossed, dir == KnightJump
	case rayMove:
		if !rule.allows(dir) {
			return crossed, false
		}
		return append(crossed, p.Pos.PositionsCrossed(dest, dir, false)...), true
	case stepMove:
		if !rule.allows(dir) {
			return crossed, false
		}
		return crossed, abs(dest.File-p.Pos.File) <= 1 && abs(dest.Rank-p.Pos.Rank) <= 1
	case pawnMove:
		return p.pawnCanMoveTo(dest, dir, destOccupied, crossed)
	}
	return crossed, false
}

// pawnCanMoveTo applies the pawn rules: a push onto an empty square, a double
// push from the start rank over an empty square, or a diagonal capture.
func (p Piece) pawnCanMoveTo(dest Position, dir Direction, destOccupied bool, crossed []Position) ([]Position, bool) {
	forward := p.Owner.Forward()
	distance := abs(dest.Rank - p.Pos.Rank)

	switch {
	case dir == forward && distance == 1:
		return crossed, !destOccupied
	case dir == forward && distance == 2 && p.Pos.Rank == p.Owner.PawnRank():
		if destOccupied {
			return crossed, false
		}
		return append(crossed, p.Pos.PositionsCrossed(dest, dir, false)...), true
	case dir.IsDiagonal() && distance == 1 && dir.IsUpward() == forward.IsUpward():
		return crossed, destOccupied
	}
	return crossed, false
}

// Forward returns the direction pawns of colour c advance in.
func (c Colour) Forward() Direction {
	if c == White {
		return Up
	}
	return Down
}

// PawnRank returns the rank index pawns of colour c start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return Height - 2
}

// BackRank returns the rank index of colour c's home rank.
func (c Colour) BackRank() int {
	if c == White {
		return 0
	}
	return Height - 1
}

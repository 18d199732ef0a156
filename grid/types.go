package grid

import "fmt"

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Offsets returns the (dRow, dCol) neighbour offsets for conn.
// The returned slice is shared and must not be modified.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Point addresses a single grid cell.
type Point struct {
	Row, Col int
}

// String renders the point as "[row, col]".
func (p Point) String() string {
	return fmt.Sprintf("[%d, %d]", p.Row, p.Col)
}

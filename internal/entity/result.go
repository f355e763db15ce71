package entity

// Result is the outcome of a game, derived from the board on demand.
type Result int

const (
	ResultNone Result = iota
	ResultTie
	ResultRedWin
	ResultBlackWin
)

func (that Result) String() string {
	switch that {
	case ResultNone:
		return "none"
	case ResultTie:
		return "tie"
	case ResultRedWin:
		return "red wins"
	case ResultBlackWin:
		return "black wins"
	default:
		return "unknown"
	}
}

// directions holds {deltaRow, deltaCol} pairs: horizontal, vertical, diagonal up-right, diagonal up-left.
// Walking only forward from every origin visits each line of four once.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Result - determines the game result from scratch.
//
// Origins are scanned by row, then column, then direction in the order of directions; the first
// four-in-a-row found decides the winner. Legal alternating play never produces runs for both
// colors, so the scan order only matters for positions built by ParseBoard.
func (that *Board) Result() Result {
	for row := 0; row < Rows; row++ {
		for column := 0; column < Columns; column++ {
			cell := that.cells[row][column]
			if cell == CellEmpty {
				continue
			}

			for _, d := range directions {
				if that.countInDirection(row, column, d[0], d[1], cell) == ToWin {
					return winnerOf(cell)
				}
			}
		}
	}

	// the game will continue until all the columns are full
	if that.IsFull() {
		return ResultTie
	}

	return ResultNone
}

// countInDirection counts up to ToWin consecutive cells equal to cell, starting at (row, column).
func (that *Board) countInDirection(row, column, deltaRow, deltaCol int, cell Cell) int {
	count := 0
	r, c := row, column
	for count < ToWin && r >= 0 && r < Rows && c >= 0 && c < Columns && that.cells[r][c] == cell {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

func winnerOf(cell Cell) Result {
	switch cell {
	case CellRed:
		return ResultRedWin
	case CellBlack:
		return ResultBlackWin
	default:
		return ResultNone
	}
}

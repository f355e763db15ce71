package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	Rows     = 6
	Columns  = 7
	ToWin    = 4
	Capacity = Rows * Columns
)

// Cell is the state of one slot of the board.
type Cell int

const (
	CellEmpty Cell = iota
	CellRed
	CellBlack
)

func (that Cell) String() string {
	switch that {
	case CellEmpty:
		return " "
	case CellRed:
		return "R"
	case CellBlack:
		return "B"
	default:
		return "?"
	}
}

// Board is a 6x7 Connect Four grid. Row 0 is the bottom of the board and column 0 the leftmost.
// RED always plays the first token.
//
// A Board is not safe for concurrent use.
type Board struct {
	cells [Rows][Columns]Cell
	turn  Cell
}

// NewBoard - creates an empty board with RED to move.
func NewBoard() *Board {
	return &Board{
		turn: CellRed,
	}
}

// Turn returns the player who moves next, CellRed or CellBlack.
func (that *Board) Turn() Cell {
	return that.turn
}

// Drop - places the current player's token on the lowest free row of column and passes the turn.
//
// A column outside [0, Columns) is ignored: nothing is written, no error is returned and the same
// player keeps the move. A full column yields apperror.ErrColumnFull and the player keeps the move too.
func (that *Board) Drop(column int) error {
	if !isValidColumn(column) {
		return nil
	}

	height := that.height(column)
	if height == Rows {
		return fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	that.cells[height][column] = that.turn
	that.turn = toggleTurn(that.turn)

	return nil
}

// HeightOf returns the number of tokens in column.
func (that *Board) HeightOf(column int) (int, error) {
	if !isValidColumn(column) {
		return 0, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	return that.height(column), nil
}

// TopOf returns the topmost token of column, or CellEmpty when the column has none.
func (that *Board) TopOf(column int) (Cell, error) {
	if !isValidColumn(column) {
		return CellEmpty, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	height := that.height(column)
	if height == 0 {
		return CellEmpty, nil
	}

	return that.cells[height-1][column], nil
}

// ColumnAsString returns the tokens of column from the bottom up, e.g. "RBB".
func (that *Board) ColumnAsString(column int) (string, error) {
	if !isValidColumn(column) {
		return "", fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	var sb strings.Builder
	for row := 0; row < that.height(column); row++ {
		sb.WriteString(that.cells[row][column].String())
	}

	return sb.String(), nil
}

// IsFull reports whether every column holds Rows tokens.
func (that *Board) IsFull() bool {
	for column := 0; column < Columns; column++ {
		if that.cells[Rows-1][column] == CellEmpty {
			return false
		}
	}

	return true
}

// height relies on tokens being stacked from row 0 without gaps.
func (that *Board) height(column int) int {
	height := 0
	for height < Rows && that.cells[height][column] != CellEmpty {
		height++
	}

	return height
}

func isValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

func toggleTurn(current Cell) Cell {
	if current == CellRed {
		return CellBlack
	}
	return CellRed
}

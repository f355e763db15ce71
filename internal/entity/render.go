package entity

import (
	"errors"
	"fmt"
	"strings"
)

// lineWidth is the width of a rendered row: a bar before every column plus the closing one.
const lineWidth = 2*Columns + 1

var ErrMalformedBoard = errors.New("malformed board")

// Render returns the board as text, top row first:
//
//	| | | | | | | |
//	| | | | | | | |
//	| | | | | | | |
//	| |R| | |R| | |
//	|B|B| | |B|R| |
//	|R|B| |B|R|R| |
//	---------------
//
// There is no newline after the dash line.
func (that *Board) Render() string {
	return that.RenderWith(Cell.String)
}

func (that *Board) String() string {
	return that.Render()
}

// RenderWith lays the board out like Render, drawing every cell with token.
// token must return a single visible character for the layout to line up.
func (that *Board) RenderWith(token func(Cell) string) string {
	lines := make([]string, 0, Rows+1)

	for row := Rows - 1; row >= 0; row-- {
		var sb strings.Builder
		sb.WriteString("|")
		for column := 0; column < Columns; column++ {
			sb.WriteString(token(that.cells[row][column]))
			sb.WriteString("|")
		}
		lines = append(lines, sb.String())
	}

	lines = append(lines, strings.Repeat("-", lineWidth))

	return strings.Join(lines, "\n")
}

// ParseBoard - builds a board from its Render form.
//
// The text must describe a position reachable by alternating play as far as gravity and token
// counts go: no token may float above an empty cell, and RED holds either as many tokens as
// BLACK or one more. The player to move is derived from the counts.
func ParseBoard(text string) (*Board, error) {
	lines := strings.Split(text, "\n")
	if len(lines) != Rows+1 {
		return nil, fmt.Errorf("%w: expected %d lines, got %d", ErrMalformedBoard, Rows+1, len(lines))
	}

	if lines[Rows] != strings.Repeat("-", lineWidth) {
		return nil, fmt.Errorf("%w: bad bottom line %q", ErrMalformedBoard, lines[Rows])
	}

	board := NewBoard()
	counts := map[Cell]int{}

	for i, line := range lines[:Rows] {
		row := Rows - 1 - i

		if len(line) != lineWidth {
			return nil, fmt.Errorf("%w: line %d has width %d", ErrMalformedBoard, i+1, len(line))
		}

		for column := 0; column < Columns; column++ {
			if line[2*column] != '|' {
				return nil, fmt.Errorf("%w: line %d: missing separator", ErrMalformedBoard, i+1)
			}

			cell, err := parseCell(line[2*column+1])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedBoard, i+1, err)
			}

			board.cells[row][column] = cell
			counts[cell]++
		}

		if line[lineWidth-1] != '|' {
			return nil, fmt.Errorf("%w: line %d: missing separator", ErrMalformedBoard, i+1)
		}
	}

	for column := 0; column < Columns; column++ {
		for row := 1; row < Rows; row++ {
			if board.cells[row][column] != CellEmpty && board.cells[row-1][column] == CellEmpty {
				return nil, fmt.Errorf("%w: floating token in column %d", ErrMalformedBoard, column)
			}
		}
	}

	switch counts[CellRed] - counts[CellBlack] {
	case 0:
		board.turn = CellRed
	case 1:
		board.turn = CellBlack
	default:
		return nil, fmt.Errorf("%w: %d red and %d black tokens", ErrMalformedBoard, counts[CellRed], counts[CellBlack])
	}

	return board, nil
}

func parseCell(token byte) (Cell, error) {
	switch token {
	case ' ':
		return CellEmpty, nil
	case 'R':
		return CellRed, nil
	case 'B':
		return CellBlack, nil
	default:
		return CellEmpty, fmt.Errorf("unknown token %q", token)
	}
}

package view

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var (
	clrRed   = lipgloss.Color("#f85149")
	clrBlack = lipgloss.Color("#f0c862")
)

// Renderer draws a board in the canonical layout with colored tokens. On an output without color
// support the result is identical to entity.Board.Render.
type Renderer struct {
	red   lipgloss.Style
	black lipgloss.Style
}

// NewRenderer - creates a renderer whose color profile is detected from w.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)

	return &Renderer{
		red:   r.NewStyle().Foreground(clrRed).Bold(true),
		black: r.NewStyle().Foreground(clrBlack).Bold(true),
	}
}

func (that *Renderer) Render(board *entity.Board) string {
	return board.RenderWith(that.token)
}

func (that *Renderer) token(cell entity.Cell) string {
	switch cell {
	case entity.CellRed:
		return that.red.Render(cell.String())
	case entity.CellBlack:
		return that.black.Render(cell.String())
	default:
		return cell.String()
	}
}

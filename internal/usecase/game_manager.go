package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// maxConsecutiveRejects bounds how many unplayable picks in a row Play tolerates.
const maxConsecutiveRejects = 10 * entity.Capacity

var ErrPickerStuck = errors.New("column picker keeps choosing unplayable columns")

type columnPicker interface {
	PickColumn(board *entity.Board) int
}

type Options struct {
	// MaxMoves caps the number of tokens placed; values outside [1, entity.Capacity] mean entity.Capacity.
	MaxMoves int
	// PrintBoard writes the board after every successful drop.
	PrintBoard bool
	// Render draws the board; defaults to (*entity.Board).Render.
	Render func(board *entity.Board) string
}

// Summary describes how a game played by GameManager went.
type Summary struct {
	Result   entity.Result
	Moves    int
	Rejected int
	Board    *entity.Board
}

type GameManager struct {
	logger *slog.Logger
	picker columnPicker
	out    io.Writer

	opts Options
}

func NewGameManager(logger *slog.Logger, picker columnPicker, out io.Writer, opts Options) *GameManager {
	if opts.MaxMoves <= 0 || opts.MaxMoves > entity.Capacity {
		opts.MaxMoves = entity.Capacity
	}

	if opts.Render == nil {
		opts.Render = (*entity.Board).Render
	}

	return &GameManager{
		logger: logger.With("component", "game_manager"),
		picker: picker,
		out:    out,

		opts: opts,
	}
}

// Play - drives board until somebody wins, the board is full or MaxMoves tokens have been placed.
//
// Picks naming a full or out of range column are skipped and do not count as moves; the same
// player simply picks again.
func (that *GameManager) Play(ctx context.Context, board *entity.Board) (*Summary, error) {
	log := that.logger.With("method", "Play")

	if result := board.Result(); result != entity.ResultNone {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameFinished, result)
	}

	summary := &Summary{Board: board}
	rejectedInRow := 0

	for summary.Moves < that.opts.MaxMoves && board.Result() == entity.ResultNone {
		if err := ctx.Err(); err != nil {
			summary.Result = board.Result()
			return summary, fmt.Errorf("game interrupted: %w", err)
		}

		player := board.Turn()
		column := that.picker.PickColumn(board)

		placed, err := that.drop(board, column)
		if err != nil {
			summary.Result = board.Result()
			return summary, err
		}

		if !placed {
			log.Debug("drop rejected", "player", player.String(), "column", column)

			summary.Rejected++
			rejectedInRow++
			if rejectedInRow >= maxConsecutiveRejects {
				summary.Result = board.Result()
				return summary, fmt.Errorf("%w: %d rejected picks in a row", ErrPickerStuck, rejectedInRow)
			}

			continue
		}

		rejectedInRow = 0
		summary.Moves++
		log.Debug("token dropped", "player", player.String(), "column", column, "move", summary.Moves)

		if that.opts.PrintBoard {
			if _, err = fmt.Fprintf(that.out, "%s\n\n", that.opts.Render(board)); err != nil {
				summary.Result = board.Result()
				return summary, fmt.Errorf("failed to print board: %w", err)
			}
		}
	}

	summary.Result = board.Result()

	return summary, nil
}

// drop reports whether a token was placed. A full column and an ignored out of range column both
// leave the turn unchanged and report false.
func (that *GameManager) drop(board *entity.Board, column int) (bool, error) {
	player := board.Turn()

	if err := board.Drop(column); err != nil {
		if errors.Is(err, apperror.ErrColumnFull) {
			return false, nil
		}

		return false, fmt.Errorf("failed to drop token: %w", err)
	}

	return board.Turn() != player, nil
}

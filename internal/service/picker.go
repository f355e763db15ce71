package service

import (
	"math/rand"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// ColumnPicker chooses the next column to drop a token into.
type ColumnPicker interface {
	PickColumn(board *entity.Board) int
}

type randomPicker struct {
	rnd *rand.Rand
}

// NewRandomPicker - returns a picker choosing uniformly among all columns, full ones included.
// Two pickers built with the same seed yield the same sequence.
func NewRandomPicker(seed int64) ColumnPicker {
	return &randomPicker{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *randomPicker) PickColumn(_ *entity.Board) int {
	return that.rnd.Intn(entity.Columns)
}

type sequencePicker struct {
	columns []int
	next    int
}

// NewSequencePicker - returns a picker replaying columns in order, starting over after the last one.
func NewSequencePicker(columns []int) ColumnPicker {
	return &sequencePicker{
		columns: append([]int(nil), columns...),
	}
}

func (that *sequencePicker) PickColumn(_ *entity.Board) int {
	if len(that.columns) == 0 {
		return -1
	}

	column := that.columns[that.next]
	that.next = (that.next + 1) % len(that.columns)

	return column
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

func TestRandomPicker(t *testing.T) {
	t.Run("Stays within the board", func(t *testing.T) {
		// Given: a random picker
		picker := NewRandomPicker(42)
		board := entity.NewBoard()

		seen := map[int]bool{}
		for i := 0; i < 1000; i++ {
			// When: picking a column
			column := picker.PickColumn(board)

			// Then: it is a valid column index
			assert.GreaterOrEqual(t, column, 0)
			assert.Less(t, column, entity.Columns)
			seen[column] = true
		}

		// Then: every column comes up eventually
		assert.Len(t, seen, entity.Columns)
	})

	t.Run("Same seed gives the same sequence", func(t *testing.T) {
		// Given: two pickers with the same seed
		first := NewRandomPicker(7)
		second := NewRandomPicker(7)

		// Then: they pick identical columns
		for i := 0; i < 100; i++ {
			assert.Equal(t, first.PickColumn(nil), second.PickColumn(nil))
		}
	})
}

func TestSequencePicker(t *testing.T) {
	t.Run("Replays and cycles", func(t *testing.T) {
		// Given: a sequence picker over three columns
		columns := []int{3, 0, 6}
		picker := NewSequencePicker(columns)

		// When: picking seven times
		picked := make([]int, 0, 7)
		for i := 0; i < 7; i++ {
			picked = append(picked, picker.PickColumn(nil))
		}

		// Then: the sequence starts over after the last column
		assert.Equal(t, []int{3, 0, 6, 3, 0, 6, 3}, picked)
	})

	t.Run("Caller's slice is copied", func(t *testing.T) {
		// Given: a picker built from a slice that is changed afterwards
		columns := []int{1, 2}
		picker := NewSequencePicker(columns)
		columns[0] = 5

		// Then: the picker keeps the original columns
		assert.Equal(t, 1, picker.PickColumn(nil))
	})

	t.Run("Empty sequence picks an invalid column", func(t *testing.T) {
		// Given: a picker without columns
		picker := NewSequencePicker(nil)

		// Then: it returns -1, which the board ignores
		assert.Equal(t, -1, picker.PickColumn(nil))
	})
}

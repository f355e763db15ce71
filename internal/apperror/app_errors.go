package apperror

import "errors"

var (
	ErrColumnFull    = errors.New("column is full")
	ErrInvalidColumn = errors.New("invalid column index")
	ErrGameFinished  = errors.New("game is already finished")
)

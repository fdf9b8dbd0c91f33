package core

import "errors"

var (
	// ErrDimensions reports a non-positive grid dimension.
	ErrDimensions = errors.New("core: grid dimensions must be positive")
	// ErrOutOfBounds reports a start or goal outside the grid.
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")
	// ErrBlockedCell reports a start or goal on an obstacle.
	ErrBlockedCell = errors.New("core: cell is an obstacle")
	// ErrDuplicateStart reports two agents sharing a start cell.
	ErrDuplicateStart = errors.New("core: duplicate start cell")
	// ErrGoalPool reports fewer goals than agents.
	ErrGoalPool = errors.New("core: goal pool smaller than agent count")
)

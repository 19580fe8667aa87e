package maze

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of maze loading error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrEmptyMaze indicates the maze source held no rows.
	ErrEmptyMaze ErrorCode = iota

	// ErrUnevenRows indicates a row whose width differs from the first row.
	ErrUnevenRows

	// ErrMissingStart indicates there is no start tile.
	ErrMissingStart

	// ErrMissingExit indicates there is no exit tile.
	ErrMissingExit

	// ErrMultipleStarts indicates more than one start tile.
	ErrMultipleStarts

	// ErrNoHollows indicates the maze holds no hollow at all.
	ErrNoHollows

	// ErrInvalidTile indicates a symbol that is not a known tile.
	ErrInvalidTile

	// ErrReadFailed indicates the maze source could not be read.
	ErrReadFailed
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrEmptyMaze:      "ErrEmptyMaze",
	ErrUnevenRows:     "ErrUnevenRows",
	ErrMissingStart:   "ErrMissingStart",
	ErrMissingExit:    "ErrMissingExit",
	ErrMultipleStarts: "ErrMultipleStarts",
	ErrNoHollows:      "ErrNoHollows",
	ErrInvalidTile:    "ErrInvalidTile",
	ErrReadFailed:     "ErrReadFailed",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies an invalid or unreadable maze.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error, if any
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying error, if any.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}

// IsErrorCode returns whether err is an Error with a matching error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}
	return e.ErrorCode == c
}

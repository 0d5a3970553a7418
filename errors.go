package rowalign

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for out-of-range arguments, both at
	// construction time and by Insert.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrBufferIndexOutOfRange indicates an Insert into a buffer that does not exist.
//
// It unwraps to ErrInvalidArgument.
type ErrBufferIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrBufferIndexOutOfRange) Error() string {
	return fmt.Sprintf("buffer index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *ErrBufferIndexOutOfRange) Unwrap() error { return ErrInvalidArgument }

package geoutil

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by DecodeError and ProjectionRangeError. Use
// errors.Is to test for them.
var (
	ErrTruncated   = errors.New("truncated value")
	ErrInvalidByte = errors.New("invalid byte")
	ErrOverflow    = errors.New("value overflow")
	ErrOutOfRange  = errors.New("out of range")
)

// DecodeError reports malformed encoded polyline input.
type DecodeError struct {
	Offset int   // byte offset of the failure
	Err    error // one of ErrTruncated, ErrInvalidByte or ErrOverflow
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("polyline: %s at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ProjectionRangeError reports an input outside the domain of the UTM
// forward or inverse projection.
type ProjectionRangeError struct {
	Op    string // "forward" or "inverse"
	Field string // latitude, longitude, easting, northing or zone
	Value string
}

func (e *ProjectionRangeError) Error() string {
	return fmt.Sprintf("utm %s: %s %s out of range", e.Op, e.Field, e.Value)
}

func (e *ProjectionRangeError) Unwrap() error { return ErrOutOfRange }

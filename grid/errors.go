package grid

import "errors"

// ErrShapeMismatch indicates a buffer whose length does not match the
// requested grid shape.
var ErrShapeMismatch = errors.New("grid: buffer length does not match shape")

package model

import "errors"

// ErrInvalidArgument marks input the core refuses to process: a negative
// top-k, a price series with non-increasing timestamps. Short history and
// empty stores are not errors; they yield empty or undefined results.
var ErrInvalidArgument = errors.New("invalid argument")

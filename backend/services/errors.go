package services

import "errors"

// ErrValidation marks bad caller input (negative deltas, empty ids,
// malformed preferences). Handlers map it to a 4xx response.
var ErrValidation = errors.New("validation error")

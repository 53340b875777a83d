package graphgen

import "errors"

// ErrTooFewVertices indicates that n is smaller than the minimum a given
// constructor requires.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrInvalidProbability indicates a probability parameter outside [0,1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

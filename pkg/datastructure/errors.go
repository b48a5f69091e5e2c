package datastructure

import "errors"

var (
	ErrInvalidCapacity      = errors.New("number of vertices must be in [1, MAX_NODES]")
	ErrIndexOutOfRange      = errors.New("vertex id out of range")
	ErrVertexNotSet         = errors.New("vertex id was never added")
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
	ErrEdgeCapacityExceeded = errors.New("edge capacity exceeded")
)

package rbush

import "spatialindex/envelope"

// Boundable pairs an envelope with a payload. It is the leaf entry stored
// by an RTree.
type Boundable[T any] struct {
	Bounds envelope.Envelope
	Item   T
}

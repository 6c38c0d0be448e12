// Package meshdata defines the in-memory data model shared by mesh
// simulation format drivers: mesh geometry with streaming iterators,
// dataset groups, and 2D/3D time-step datasets.
//
// The package defines contracts only; all decoding and I/O lives in
// format drivers that implement GeometrySource and the Dataset
// accessors. See driver/memory for the reference implementation.
package meshdata

import "errors"

// Common errors
var (
	ErrNoCRSResolver = errors.New("no CRS resolver configured")
	ErrStopWalk      = errors.New("walk stopped")
)

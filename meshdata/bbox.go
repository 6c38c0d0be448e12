package meshdata

import "math"

// BBox is a 2D extent box. A valid box has MinX <= MaxX and MinY <= MaxY.
type BBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewBBox returns a box with the given bounds.
func NewBBox(minX, maxX, minY, maxY float64) BBox {
	return BBox{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// EmptyBBox returns a box that contains nothing. Extending it with any
// point yields a box covering exactly that point.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
}

// ExtendPoint returns the box grown to include (x, y).
func (b BBox) ExtendPoint(x, y float64) BBox {
	return BBox{
		MinX: math.Min(b.MinX, x),
		MaxX: math.Max(b.MaxX, x),
		MinY: math.Min(b.MinY, y),
		MaxY: math.Max(b.MaxY, y),
	}
}

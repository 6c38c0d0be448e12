// Package memory provides the in-memory reference driver for the
// meshdata model: geometry held in flat Go slices, datasets backed by
// value slices with statistics computed at construction. Other drivers
// (and tests) build on its Source and dataset types once they have
// decoded their format into memory.
package memory

import (
	"fmt"

	"github.com/robert-malhotra/go-meshdata/meshdata"
)

// DriverName identifies meshes created by this driver.
const DriverName = "memory"

var (
	_ meshdata.GeometrySource = (*Source)(nil)
	_ meshdata.Dataset        = (*Dataset2D)(nil)
	_ meshdata.Dataset        = (*Dataset3D)(nil)
)

// Source holds mesh geometry in flat arrays: two coordinate slots per
// vertex, one index slice per face. It implements meshdata.GeometrySource.
type Source struct {
	vertices []float64
	faces    [][]int
}

// NewSource validates and wraps geometry arrays. vertices holds x,y pairs;
// every face must reference at least three valid vertex indices.
func NewSource(vertices []float64, faces [][]int) (*Source, error) {
	if len(vertices)%2 != 0 {
		return nil, fmt.Errorf("vertex array has odd length %d", len(vertices))
	}
	vertexCount := len(vertices) / 2
	for i, f := range faces {
		if len(f) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices, need at least 3", i, len(f))
		}
		for _, v := range f {
			if v < 0 || v >= vertexCount {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i, v, vertexCount)
			}
		}
	}
	return &Source{vertices: vertices, faces: faces}, nil
}

// VerticesCount returns the number of vertices.
func (s *Source) VerticesCount() int { return len(s.vertices) / 2 }

// FacesCount returns the number of faces.
func (s *Source) FacesCount() int { return len(s.faces) }

// FaceVerticesMaximumCount returns the largest polygon arity present.
func (s *Source) FaceVerticesMaximumCount() int {
	max := 0
	for _, f := range s.faces {
		if len(f) > max {
			max = len(f)
		}
	}
	return max
}

// Extent returns the bounding box of the vertices.
func (s *Source) Extent() meshdata.BBox {
	box := meshdata.EmptyBBox()
	for i := 0; i+1 < len(s.vertices); i += 2 {
		box = box.ExtendPoint(s.vertices[i], s.vertices[i+1])
	}
	return box
}

// ReadVertices starts a fresh vertex iteration pass.
func (s *Source) ReadVertices() meshdata.VertexIterator {
	return &vertexIterator{vertices: s.vertices}
}

// ReadFaces starts a fresh face iteration pass.
func (s *Source) ReadFaces() meshdata.FaceIterator {
	return &faceIterator{faces: s.faces}
}

// NewMesh builds a complete mesh description around the geometry.
func NewMesh(uri string, vertices []float64, faces [][]int) (*meshdata.Mesh, error) {
	return NewMeshForDriver(DriverName, uri, vertices, faces)
}

// NewMeshForDriver is NewMesh reporting a different driver name, for
// drivers that decode their format into memory-backed geometry.
func NewMeshForDriver(driverName, uri string, vertices []float64, faces [][]int) (*meshdata.Mesh, error) {
	src, err := NewSource(vertices, faces)
	if err != nil {
		return nil, fmt.Errorf("building geometry: %w", err)
	}
	return meshdata.NewMesh(
		driverName,
		src.VerticesCount(),
		src.FacesCount(),
		src.FaceVerticesMaximumCount(),
		src.Extent(),
		uri,
		src,
	), nil
}

// vertexIterator streams coordinate pairs out of the flat vertex array.
type vertexIterator struct {
	vertices []float64
	pos      int // vertices already streamed
}

func (it *vertexIterator) Next(coords []float64) int {
	total := len(it.vertices) / 2
	n := total - it.pos
	if maxCount := len(coords) / 2; n > maxCount {
		n = maxCount
	}
	if n <= 0 {
		return 0
	}
	copy(coords, it.vertices[it.pos*2:(it.pos+n)*2])
	it.pos += n
	return n
}

// faceIterator streams faces as CSR-style offset plus index arrays.
type faceIterator struct {
	faces [][]int
	pos   int // faces already streamed
}

func (it *faceIterator) Next(faceOffsets, vertexIndices []int) int {
	if len(faceOffsets) < 2 {
		return 0
	}
	n := 0
	used := 0
	for n < len(faceOffsets)-1 && it.pos+n < len(it.faces) {
		f := it.faces[it.pos+n]
		if used+len(f) > len(vertexIndices) {
			break
		}
		faceOffsets[n] = used
		copy(vertexIndices[used:], f)
		used += len(f)
		n++
	}
	if n == 0 {
		return 0
	}
	faceOffsets[n] = used
	it.pos += n
	return n
}

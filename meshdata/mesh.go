package meshdata

import "fmt"

// VertexIterator streams mesh vertices in caller-sized chunks. A single
// forward pass: not restartable, not safe for concurrent use.
//
// Next writes up to len(coords)/2 vertices into coords, two slots per
// vertex (x, y), and returns the number of vertices written. Every call
// before exhaustion fills the buffer completely unless fewer vertices
// remain; a return of 0 means the pass is over. Drivers surface read
// failures by ending the pass early; consumers compare the streamed
// total against Mesh.VerticesCount.
type VertexIterator interface {
	Next(coords []float64) int
}

// FaceIterator streams mesh faces in caller-sized chunks, same pass
// semantics as VertexIterator.
//
// Next writes up to len(faceOffsets)-1 faces. For n faces written it
// fills faceOffsets[0:n+1] with the exclusive running sum of per-face
// vertex counts (faceOffsets[0] is always 0), so face i's vertex indices
// occupy vertexIndices[faceOffsets[i]:faceOffsets[i+1]] without per-face
// allocation. vertexIndices receives the flattened, face-major 0-based
// vertex indices. When vertexIndices cannot hold a full chunk of whole
// faces, fewer faces are written; callers wanting full chunks size it to
// (len(faceOffsets)-1) times the mesh's FaceVerticesMaximumCount.
type FaceIterator interface {
	Next(faceOffsets, vertexIndices []int) int
}

// GeometrySource is the driver-implemented half of a Mesh: a factory for
// fresh geometry iteration passes. Each call returns an independent
// iterator owned exclusively by the caller.
type GeometrySource interface {
	ReadVertices() VertexIterator
	ReadFaces() FaceIterator
}

// CRSResolver resolves indirect spatial-reference forms into WKT text.
// Resolution is a collaborator concern; the core only stores the result.
type CRSResolver interface {
	FromEPSG(code int) (string, error)
	FromProjFile(path string) (string, error)
}

// Mesh is the geometry container for one loaded source: entity counts,
// extent, spatial reference, and the ordered dataset groups attached to
// the geometry. Geometry is immutable once the driver finishes
// construction.
type Mesh struct {
	driverName               string
	verticesCount            int
	facesCount               int
	faceVerticesMaximumCount int
	extent                   BBox
	uri                      string
	crs                      string
	source                   GeometrySource
	resolver                 CRSResolver
	groups                   []*DatasetGroup
}

// NewMesh constructs a mesh description backed by the given geometry
// source. faceVerticesMaximumCount is the largest polygon arity present
// (typically 3 or 4, sometimes up to 9).
func NewMesh(driverName string, verticesCount, facesCount, faceVerticesMaximumCount int, extent BBox, uri string, source GeometrySource) *Mesh {
	return &Mesh{
		driverName:               driverName,
		verticesCount:            verticesCount,
		facesCount:               facesCount,
		faceVerticesMaximumCount: faceVerticesMaximumCount,
		extent:                   extent,
		uri:                      uri,
		source:                   source,
	}
}

// DriverName identifies the driver that created the mesh.
func (m *Mesh) DriverName() string { return m.driverName }

// VerticesCount returns the declared number of vertices.
func (m *Mesh) VerticesCount() int { return m.verticesCount }

// FacesCount returns the declared number of faces.
func (m *Mesh) FacesCount() int { return m.facesCount }

// FaceVerticesMaximumCount returns the largest polygon arity present.
func (m *Mesh) FaceVerticesMaximumCount() int { return m.faceVerticesMaximumCount }

// Extent returns the geometry's bounding box.
func (m *Mesh) Extent() BBox { return m.extent }

// URI returns the provenance string the mesh was loaded from.
func (m *Mesh) URI() string { return m.uri }

// CRS returns the stored spatial reference text.
func (m *Mesh) CRS() string { return m.crs }

// ReadVertices starts a fresh vertex iteration pass.
func (m *Mesh) ReadVertices() VertexIterator {
	if m.source == nil {
		return emptyVertexIterator{}
	}
	return m.source.ReadVertices()
}

// ReadFaces starts a fresh face iteration pass.
func (m *Mesh) ReadFaces() FaceIterator {
	if m.source == nil {
		return emptyFaceIterator{}
	}
	return m.source.ReadFaces()
}

// SetCRSResolver installs the collaborator used by SetSourceCrsFromEPSG
// and SetSourceCrsFromPrjFile.
func (m *Mesh) SetCRSResolver(r CRSResolver) { m.resolver = r }

// SetSourceCrs stores a spatial reference verbatim.
func (m *Mesh) SetSourceCrs(s string) { m.crs = s }

// SetSourceCrsFromWKT stores a ready-made WKT definition.
func (m *Mesh) SetSourceCrsFromWKT(wkt string) { m.crs = wkt }

// SetSourceCrsFromEPSG stores the reference for a numeric EPSG code.
// Without a resolver the authority form "EPSG:<code>" is stored as-is.
func (m *Mesh) SetSourceCrsFromEPSG(code int) error {
	if m.resolver == nil {
		m.crs = fmt.Sprintf("EPSG:%d", code)
		return nil
	}
	wkt, err := m.resolver.FromEPSG(code)
	if err != nil {
		return fmt.Errorf("resolving EPSG:%d: %w", code, err)
	}
	m.crs = wkt
	return nil
}

// SetSourceCrsFromPrjFile stores the reference parsed from a projection
// definition file. Parsing is delegated entirely to the resolver.
func (m *Mesh) SetSourceCrsFromPrjFile(path string) error {
	if m.resolver == nil {
		return ErrNoCRSResolver
	}
	wkt, err := m.resolver.FromProjFile(path)
	if err != nil {
		return fmt.Errorf("resolving projection file %q: %w", path, err)
	}
	m.crs = wkt
	return nil
}

// AppendGroup attaches a dataset group to the mesh, preserving insertion
// order.
func (m *Mesh) AppendGroup(g *DatasetGroup) {
	m.groups = append(m.groups, g)
}

// Groups returns the attached dataset groups in insertion order.
func (m *Mesh) Groups() []*DatasetGroup { return m.groups }

// Group finds a dataset group by name. Name collisions resolve to the
// first-inserted group; a miss returns ok == false.
func (m *Mesh) Group(name string) (*DatasetGroup, bool) {
	for _, g := range m.groups {
		if g.Name() == name {
			return g, true
		}
	}
	return nil, false
}

// Empty iterators serve meshes constructed without a geometry source.
type emptyVertexIterator struct{}

func (emptyVertexIterator) Next([]float64) int { return 0 }

type emptyFaceIterator struct{}

func (emptyFaceIterator) Next(_, _ []int) int { return 0 }

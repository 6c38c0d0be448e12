package meshdata

import (
	"errors"
	"fmt"
	"testing"
)

func TestMeshAccessors(t *testing.T) {
	ext := NewBBox(-1, 2, 0, 5)
	m := NewMesh("test", 12, 7, 4, ext, "mem://basin", nil)

	if m.DriverName() != "test" {
		t.Errorf("driver: got %q", m.DriverName())
	}
	if m.VerticesCount() != 12 || m.FacesCount() != 7 {
		t.Errorf("counts: got %d/%d", m.VerticesCount(), m.FacesCount())
	}
	if m.FaceVerticesMaximumCount() != 4 {
		t.Errorf("max arity: got %d", m.FaceVerticesMaximumCount())
	}
	if m.Extent() != ext {
		t.Errorf("extent: got %+v", m.Extent())
	}
	if m.URI() != "mem://basin" {
		t.Errorf("uri: got %q", m.URI())
	}
}

func TestMeshWithoutSourceStreamsNothing(t *testing.T) {
	m := NewMesh("test", 0, 0, 0, EmptyBBox(), "mem://empty", nil)

	coords := make([]float64, 16)
	if n := m.ReadVertices().Next(coords); n != 0 {
		t.Errorf("expected exhausted vertex iterator, got %d", n)
	}
	offsets := make([]int, 5)
	indices := make([]int, 16)
	if n := m.ReadFaces().Next(offsets, indices); n != 0 {
		t.Errorf("expected exhausted face iterator, got %d", n)
	}
}

func TestGroupLookup(t *testing.T) {
	m := testMesh(4, 1)

	// A mesh with zero groups misses without faulting.
	if _, ok := m.Group("missing"); ok {
		t.Error("lookup on empty mesh should miss")
	}

	first := NewDatasetGroup("test", m, "mem://test", WithName("depth"))
	second := NewDatasetGroup("test", m, "mem://test", WithName("depth"))
	other := NewDatasetGroup("test", m, "mem://test", WithName("velocity"))
	m.AppendGroup(first)
	m.AppendGroup(second)
	m.AppendGroup(other)

	if len(m.Groups()) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(m.Groups()))
	}

	// Collisions resolve to the first-inserted group.
	g, ok := m.Group("depth")
	if !ok {
		t.Fatal("expected a match for depth")
	}
	if g != first {
		t.Error("expected the first-inserted group")
	}

	if g, _ := m.Group("velocity"); g != other {
		t.Error("expected the velocity group")
	}
	if _, ok := m.Group("salinity"); ok {
		t.Error("expected a miss for salinity")
	}
}

// fakeResolver resolves EPSG codes and projection files to canned WKT.
type fakeResolver struct {
	failEPSG bool
}

func (r fakeResolver) FromEPSG(code int) (string, error) {
	if r.failEPSG {
		return "", errors.New("unknown code")
	}
	return fmt.Sprintf("GEOGCS[\"epsg-%d\"]", code), nil
}

func (r fakeResolver) FromProjFile(path string) (string, error) {
	return "GEOGCS[\"from-" + path + "\"]", nil
}

func TestMeshCRS(t *testing.T) {
	m := testMesh(4, 1)

	if m.CRS() != "" {
		t.Errorf("expected empty initial CRS, got %q", m.CRS())
	}

	m.SetSourceCrs("+proj=longlat")
	if m.CRS() != "+proj=longlat" {
		t.Errorf("verbatim CRS: got %q", m.CRS())
	}

	m.SetSourceCrsFromWKT("GEOGCS[\"WGS 84\"]")
	if m.CRS() != "GEOGCS[\"WGS 84\"]" {
		t.Errorf("WKT CRS: got %q", m.CRS())
	}

	// Without a resolver the EPSG authority form is stored as-is, and
	// projection files cannot be resolved at all.
	if err := m.SetSourceCrsFromEPSG(4326); err != nil {
		t.Fatalf("EPSG without resolver: %v", err)
	}
	if m.CRS() != "EPSG:4326" {
		t.Errorf("expected EPSG:4326, got %q", m.CRS())
	}
	if err := m.SetSourceCrsFromPrjFile("mesh.prj"); !errors.Is(err, ErrNoCRSResolver) {
		t.Errorf("expected ErrNoCRSResolver, got %v", err)
	}

	m.SetCRSResolver(fakeResolver{})
	if err := m.SetSourceCrsFromEPSG(32633); err != nil {
		t.Fatalf("EPSG with resolver: %v", err)
	}
	if m.CRS() != "GEOGCS[\"epsg-32633\"]" {
		t.Errorf("resolved EPSG: got %q", m.CRS())
	}
	if err := m.SetSourceCrsFromPrjFile("mesh.prj"); err != nil {
		t.Fatalf("prj with resolver: %v", err)
	}
	if m.CRS() != "GEOGCS[\"from-mesh.prj\"]" {
		t.Errorf("resolved prj: got %q", m.CRS())
	}

	// A failed resolution leaves the stored CRS untouched.
	m.SetCRSResolver(fakeResolver{failEPSG: true})
	if err := m.SetSourceCrsFromEPSG(9999); err == nil {
		t.Error("expected resolver error")
	}
	if m.CRS() != "GEOGCS[\"from-mesh.prj\"]" {
		t.Errorf("failed resolution changed CRS to %q", m.CRS())
	}
}

func TestBBoxExtend(t *testing.T) {
	box := EmptyBBox()
	box = box.ExtendPoint(1, 2)
	box = box.ExtendPoint(-3, 5)
	box = box.ExtendPoint(0, -1)

	want := NewBBox(-3, 1, -1, 5)
	if box != want {
		t.Errorf("expected %+v, got %+v", want, box)
	}
	if box.MinX > box.MaxX || box.MinY > box.MaxY {
		t.Error("extent invariant violated")
	}
}

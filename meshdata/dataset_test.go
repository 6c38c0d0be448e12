package meshdata

import "testing"

// stubDataset2D is a minimal scalar 2D driver dataset.
type stubDataset2D struct {
	Dataset2D
	values []float64
}

var _ Dataset = (*stubDataset2D)(nil)

func newStubDataset2D(g *DatasetGroup, values []float64) *stubDataset2D {
	ds := &stubDataset2D{Dataset2D: NewDataset2D(g), values: values}
	stats := NewStatistics()
	for _, v := range values {
		stats.Observe(v)
	}
	ds.SetStatistics(stats)
	return ds
}

func (d *stubDataset2D) ScalarData(indexStart int, buf []float64) int {
	n := len(d.values) - indexStart
	if n > len(buf) {
		n = len(buf)
	}
	if n <= 0 {
		return 0
	}
	copy(buf, d.values[indexStart:indexStart+n])
	return n
}

func (d *stubDataset2D) VectorData(int, []float64) int { return 0 }

// stubDataset3D is a minimal 3D driver dataset exposing only its counts.
type stubDataset3D struct {
	Dataset3D
}

var _ Dataset = (*stubDataset3D)(nil)

func newStubDataset3D(g *DatasetGroup, volumes, maxLevels int) *stubDataset3D {
	return &stubDataset3D{Dataset3D: NewDataset3D(g, volumes, maxLevels)}
}

func (d *stubDataset3D) VerticalLevelCountData(int, []int) int { return 0 }
func (d *stubDataset3D) VerticalLevelData(int, []float64) int { return 0 }
func (d *stubDataset3D) FaceToVolumeData(int, []int) int { return 0 }
func (d *stubDataset3D) ScalarVolumesData(int, []float64) int { return 0 }
func (d *stubDataset3D) VectorVolumesData(int, []float64) int { return 0 }

func testMesh(verticesCount, facesCount int) *Mesh {
	return NewMesh("test", verticesCount, facesCount, 4, NewBBox(0, 1, 0, 1), "mem://test", nil)
}

func TestDataset2DHasNoVerticalStructure(t *testing.T) {
	g := NewDatasetGroup("test", testMesh(4, 1), "mem://test")
	ds := newStubDataset2D(g, []float64{1, 2, 3, 4})

	if n := ds.VolumesCount(); n != 0 {
		t.Errorf("2D dataset VolumesCount: expected 0, got %d", n)
	}
	if n := ds.MaximumVerticalLevelsCount(); n != 0 {
		t.Errorf("2D dataset MaximumVerticalLevelsCount: expected 0, got %d", n)
	}

	intBuf := make([]int, 8)
	floatBuf := make([]float64, 8)
	if n := ds.VerticalLevelCountData(0, intBuf); n != 0 {
		t.Errorf("VerticalLevelCountData: expected 0, got %d", n)
	}
	if n := ds.VerticalLevelData(0, floatBuf); n != 0 {
		t.Errorf("VerticalLevelData: expected 0, got %d", n)
	}
	if n := ds.FaceToVolumeData(0, intBuf); n != 0 {
		t.Errorf("FaceToVolumeData: expected 0, got %d", n)
	}
	if n := ds.ScalarVolumesData(0, floatBuf); n != 0 {
		t.Errorf("ScalarVolumesData: expected 0, got %d", n)
	}
	if n := ds.VectorVolumesData(0, floatBuf); n != 0 {
		t.Errorf("VectorVolumesData: expected 0, got %d", n)
	}
}

func TestDatasetValuesCountFollowsLocation(t *testing.T) {
	m := testMesh(10, 6)

	tests := []struct {
		name string
		loc  DataLocation
		want int
	}{
		{"on vertices", DataOnVertices2D, 10},
		{"on faces", DataOnFaces2D, 6},
		{"on volumes", DataOnVolumes3D, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewDatasetGroup("test", m, "mem://test", WithDataLocation(tt.loc))
			ds := newStubDataset2D(g, nil)
			if n := ds.ValuesCount(); n != tt.want {
				t.Errorf("expected %d, got %d", tt.want, n)
			}
		})
	}
}

func TestDataset3DCounts(t *testing.T) {
	g := NewDatasetGroup("test", testMesh(4, 2), "mem://test",
		WithDataLocation(DataOnVolumes3D))
	ds := newStubDataset3D(g, 7, 4)

	if n := ds.VolumesCount(); n != 7 {
		t.Errorf("expected 7 volumes, got %d", n)
	}
	if n := ds.MaximumVerticalLevelsCount(); n != 4 {
		t.Errorf("expected 4 levels, got %d", n)
	}
	if n := ds.ValuesCount(); n != 7 {
		t.Errorf("volume-located values count: expected 7, got %d", n)
	}

	// Flat accessors report zero extent on the 3D variant.
	buf := make([]float64, 8)
	if n := ds.ScalarData(0, buf); n != 0 {
		t.Errorf("3D ScalarData: expected 0, got %d", n)
	}
	if n := ds.VectorData(0, buf); n != 0 {
		t.Errorf("3D VectorData: expected 0, got %d", n)
	}
}

func TestDatasetActiveFlagDefault(t *testing.T) {
	g := NewDatasetGroup("test", testMesh(4, 1), "mem://test")
	ds := newStubDataset2D(g, []float64{1, 2, 3, 4})

	if ds.SupportsActiveFlag() {
		t.Error("active flag support should default to false")
	}
	buf := []int{-1, -1}
	if n := ds.ActiveData(0, buf); n != 0 {
		t.Errorf("default ActiveData: expected 0, got %d", n)
	}
	if buf[0] != -1 || buf[1] != -1 {
		t.Error("default ActiveData must leave the buffer untouched")
	}
}

func TestDatasetValidity(t *testing.T) {
	g := NewDatasetGroup("test", testMesh(4, 1), "mem://test")
	ds := newStubDataset2D(g, nil)

	if !ds.IsValid() {
		t.Error("datasets should start valid")
	}
	ds.Invalidate()
	if ds.IsValid() {
		t.Error("Invalidate should stick")
	}
}

func TestDatasetParentNavigation(t *testing.T) {
	m := testMesh(4, 1)
	g := NewDatasetGroup("test", m, "mem://test")
	ds := newStubDataset2D(g, nil)

	if ds.Group() != g {
		t.Error("dataset should navigate to its group")
	}
	if ds.Mesh() != m {
		t.Error("dataset should navigate to its mesh through the group")
	}

	detached := newStubDataset2D(nil, nil)
	if detached.Group() != nil || detached.Mesh() != nil {
		t.Error("detached dataset should navigate to nil")
	}
	if n := detached.ValuesCount(); n != 0 {
		t.Errorf("detached values count: expected 0, got %d", n)
	}
}

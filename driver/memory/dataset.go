package memory

import (
	"fmt"
	"math"

	"github.com/robert-malhotra/go-meshdata/meshdata"
)

// Dataset2D is a flat 2D dataset over an in-memory value array. Scalar
// values occupy one slot per entity, vector values two (x, y). The shape
// is taken from the owning group at construction.
type Dataset2D struct {
	meshdata.Dataset2D
	values []float64
	active []int
	vector bool
}

// NewDataset2D builds a 2D dataset holding values for every entity of the
// group's data location. The value array length must match the entity
// count times the group's component width.
func NewDataset2D(group *meshdata.DatasetGroup, ts meshdata.RelativeTimestamp, values []float64) (*Dataset2D, error) {
	ds := &Dataset2D{
		Dataset2D: meshdata.NewDataset2D(group),
		values:    values,
		vector:    !group.IsScalar(),
	}
	ds.SetTime(ts)
	comps := 1
	if ds.vector {
		comps = 2
	}
	if want := ds.ValuesCount() * comps; len(values) != want {
		return nil, fmt.Errorf("dataset on %s needs %d values, got %d", group.DataLocation(), want, len(values))
	}
	ds.SetStatistics(valueStatistics(values, ds.vector))
	return ds, nil
}

// SetActive attaches per-face 0/1 activity flags and declares active-flag
// support.
func (d *Dataset2D) SetActive(active []int) {
	d.active = active
	d.SetSupportsActiveFlag(true)
}

// ScalarData fills scalar values; zero extent for a vector-shaped group.
func (d *Dataset2D) ScalarData(indexStart int, buf []float64) int {
	if d.vector {
		return 0
	}
	return fillFloat64(d.values, 1, indexStart, buf)
}

// VectorData fills x,y value pairs; zero extent for a scalar group.
func (d *Dataset2D) VectorData(indexStart int, buf []float64) int {
	if !d.vector {
		return 0
	}
	return fillFloat64(d.values, 2, indexStart, buf)
}

// ActiveData fills activity flags when SetActive was called, else 0.
func (d *Dataset2D) ActiveData(indexStart int, buf []int) int {
	if d.active == nil {
		return 0
	}
	return fillInt(d.active, indexStart, buf)
}

// Dataset3D is a layered dataset over in-memory volume arrays. Each face
// carries a column of volume cells; per-column layer counts may vary.
type Dataset3D struct {
	meshdata.Dataset3D
	levelCounts  []int     // layers per face column
	levels       []float64 // level boundaries, flattened per column
	faceToVolume []int     // first volume index per face
	values       []float64 // per volume cell
	vector       bool
}

// NewDataset3D builds a 3D dataset from per-face layer counts, flattened
// level boundaries (count+1 per column), and per-volume values. The
// face-to-volume mapping and the volume/level maxima derive from the
// counts.
func NewDataset3D(group *meshdata.DatasetGroup, ts meshdata.RelativeTimestamp, levelCounts []int, levels []float64, values []float64) (*Dataset3D, error) {
	volumes := 0
	maxLevels := 0
	faceToVolume := make([]int, len(levelCounts))
	for i, c := range levelCounts {
		if c < 1 {
			return nil, fmt.Errorf("face column %d has %d layers", i, c)
		}
		faceToVolume[i] = volumes
		volumes += c
		if c > maxLevels {
			maxLevels = c
		}
	}
	// Each column of n layers has n+1 level boundaries.
	if want := volumes + len(levelCounts); len(levels) != want {
		return nil, fmt.Errorf("level array needs %d boundaries, got %d", want, len(levels))
	}
	vector := !group.IsScalar()
	comps := 1
	if vector {
		comps = 2
	}
	if want := volumes * comps; len(values) != want {
		return nil, fmt.Errorf("volume values need %d slots, got %d", want, len(values))
	}
	ds := &Dataset3D{
		Dataset3D:    meshdata.NewDataset3D(group, volumes, maxLevels),
		levelCounts:  levelCounts,
		levels:       levels,
		faceToVolume: faceToVolume,
		values:       values,
		vector:       vector,
	}
	ds.SetTime(ts)
	ds.SetStatistics(valueStatistics(values, vector))
	return ds, nil
}

// VerticalLevelCountData fills per-face layer counts.
func (d *Dataset3D) VerticalLevelCountData(indexStart int, buf []int) int {
	return fillInt(d.levelCounts, indexStart, buf)
}

// VerticalLevelData fills flattened level boundary coordinates.
func (d *Dataset3D) VerticalLevelData(indexStart int, buf []float64) int {
	return fillFloat64(d.levels, 1, indexStart, buf)
}

// FaceToVolumeData fills the first volume index of each face column.
func (d *Dataset3D) FaceToVolumeData(indexStart int, buf []int) int {
	return fillInt(d.faceToVolume, indexStart, buf)
}

// ScalarVolumesData fills per-volume scalar values; zero extent for a
// vector-shaped group.
func (d *Dataset3D) ScalarVolumesData(indexStart int, buf []float64) int {
	if d.vector {
		return 0
	}
	return fillFloat64(d.values, 1, indexStart, buf)
}

// VectorVolumesData fills per-volume x,y pairs; zero extent for a scalar
// group.
func (d *Dataset3D) VectorVolumesData(indexStart int, buf []float64) int {
	if !d.vector {
		return 0
	}
	return fillFloat64(d.values, 2, indexStart, buf)
}

// valueStatistics aggregates a value array; vector entities contribute
// their magnitude.
func valueStatistics(values []float64, vector bool) meshdata.Statistics {
	stats := meshdata.NewStatistics()
	if vector {
		for i := 0; i+1 < len(values); i += 2 {
			stats.Observe(math.Hypot(values[i], values[i+1]))
		}
		return stats
	}
	for _, v := range values {
		stats.Observe(v)
	}
	return stats
}

// fillFloat64 copies up to len(buf)/comps entities from src starting at
// entity indexStart, returning entities written.
func fillFloat64(src []float64, comps, indexStart int, buf []float64) int {
	total := len(src) / comps
	n := total - indexStart
	if maxCount := len(buf) / comps; n > maxCount {
		n = maxCount
	}
	if n <= 0 {
		return 0
	}
	copy(buf, src[indexStart*comps:(indexStart+n)*comps])
	return n
}

// fillInt is fillFloat64 for one-component int arrays.
func fillInt(src []int, indexStart int, buf []int) int {
	n := len(src) - indexStart
	if n > len(buf) {
		n = len(buf)
	}
	if n <= 0 {
		return 0
	}
	copy(buf, src[indexStart:indexStart+n])
	return n
}

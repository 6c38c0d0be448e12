package meshdata

// Dataset is one time-step's worth of values attached to a mesh's
// vertices, faces, or volumes. The parent group's DataLocation says which
// of the entity-indexed accessors carry meaning; the others report zero
// extent rather than failing.
//
// All buffer-fill accessors share one contract: read up to cap entities
// starting at indexStart into buf and return the entities actually
// written, where cap is len(buf) divided by the per-entity component
// width (2 for vector values, 1 otherwise). Reads past the end truncate;
// indexStart at or past the end returns 0. A driver may block on I/O
// inside an accessor, but the core never does.
//
// Drivers implement Dataset by embedding Dataset2D or Dataset3D and
// supplying the accessors left unimplemented by the embedded variant.
type Dataset interface {
	// Group returns the parent group. Navigation only, never lifetime.
	Group() *DatasetGroup
	// Time returns the offset from the group's reference time.
	Time() RelativeTimestamp
	// IsValid reports whether the driver decoded the dataset fully.
	// Once false, no data-pull result from this dataset is trustworthy.
	IsValid() bool
	// SupportsActiveFlag reports whether ActiveData carries meaning.
	SupportsActiveFlag() bool
	// Statistics returns the per-dataset aggregate.
	Statistics() Statistics
	// ValuesCount returns the entity count the values are indexed by:
	// vertex, face, or volume count per the group's DataLocation.
	ValuesCount() int

	// ScalarData and VectorData fill values attached to vertices or
	// faces. VectorData writes two components (x, y) per entity.
	ScalarData(indexStart int, buf []float64) int
	VectorData(indexStart int, buf []float64) int
	// ActiveData fills per-face 0/1 activity flags. Drivers without
	// active-flag support return 0 and leave buf untouched.
	ActiveData(indexStart int, buf []int) int

	// Volume-shaped accessors, meaningful for DataOnVolumes3D only.
	VerticalLevelCountData(indexStart int, buf []int) int
	VerticalLevelData(indexStart int, buf []float64) int
	FaceToVolumeData(indexStart int, buf []int) int
	ScalarVolumesData(indexStart int, buf []float64) int
	VectorVolumesData(indexStart int, buf []float64) int

	// VolumesCount returns the total volume cells across all face
	// columns, 0 for 2D datasets.
	VolumesCount() int
	// MaximumVerticalLevelsCount returns the tallest face column in
	// layers, 0 for 2D datasets.
	MaximumVerticalLevelsCount() int
}

// datasetBase carries the state shared by both dataset variants.
type datasetBase struct {
	group              *DatasetGroup
	time               RelativeTimestamp
	valid              bool
	supportsActiveFlag bool
	stats              Statistics
}

func newDatasetBase(group *DatasetGroup) datasetBase {
	return datasetBase{
		group: group,
		valid: true,
		stats: NewStatistics(),
	}
}

// Group returns the parent group. Navigation only, never lifetime.
func (d *datasetBase) Group() *DatasetGroup { return d.group }

// Mesh returns the parent group's mesh, or nil for a detached dataset.
func (d *datasetBase) Mesh() *Mesh {
	if d.group == nil {
		return nil
	}
	return d.group.Mesh()
}

// Time returns the offset from the group's reference time.
func (d *datasetBase) Time() RelativeTimestamp { return d.time }

// SetTime sets the dataset's relative timestamp.
func (d *datasetBase) SetTime(t RelativeTimestamp) { d.time = t }

// IsValid reports whether the driver decoded the dataset fully.
func (d *datasetBase) IsValid() bool { return d.valid }

// Invalidate marks the dataset unusable. The transition is terminal.
func (d *datasetBase) Invalidate() { d.valid = false }

// SupportsActiveFlag reports whether ActiveData carries meaning.
func (d *datasetBase) SupportsActiveFlag() bool { return d.supportsActiveFlag }

// SetSupportsActiveFlag declares active-flag support.
func (d *datasetBase) SetSupportsActiveFlag(v bool) { d.supportsActiveFlag = v }

// Statistics returns the per-dataset aggregate.
func (d *datasetBase) Statistics() Statistics { return d.stats }

// SetStatistics sets the per-dataset aggregate.
func (d *datasetBase) SetStatistics(s Statistics) { d.stats = s }

// ActiveData returns 0, the default for drivers without active-flag
// support. Drivers that support it shadow this method.
func (d *datasetBase) ActiveData(int, []int) int { return 0 }

// locationCount resolves an entity count through the parent chain.
func (d *datasetBase) locationCount() (DataLocation, int) {
	if d.group == nil {
		return DataOnVertices2D, 0
	}
	m := d.group.Mesh()
	if m == nil {
		return d.group.DataLocation(), 0
	}
	switch loc := d.group.DataLocation(); loc {
	case DataOnVertices2D:
		return loc, m.VerticesCount()
	case DataOnFaces2D:
		return loc, m.FacesCount()
	default:
		return loc, 0
	}
}

// Dataset2D is the embeddable base for flat 2D datasets: values on
// vertices or faces, no vertical structure. A driver embeds it and
// implements ScalarData and VectorData (and ActiveData when supported).
type Dataset2D struct {
	datasetBase
}

// NewDataset2D returns a 2D base attached to group.
func NewDataset2D(group *DatasetGroup) Dataset2D {
	return Dataset2D{datasetBase: newDatasetBase(group)}
}

// ValuesCount returns the parent mesh's vertex or face count per the
// group's data location, 0 for a volume-located group.
func (d *Dataset2D) ValuesCount() int {
	_, n := d.locationCount()
	return n
}

// VolumesCount is always 0 for 2D data.
func (d *Dataset2D) VolumesCount() int { return 0 }

// MaximumVerticalLevelsCount is always 0 for 2D data.
func (d *Dataset2D) MaximumVerticalLevelsCount() int { return 0 }

// The volume-shaped accessors report zero extent: 2D data has no
// vertical structure.

func (d *Dataset2D) VerticalLevelCountData(int, []int) int { return 0 }
func (d *Dataset2D) VerticalLevelData(int, []float64) int { return 0 }
func (d *Dataset2D) FaceToVolumeData(int, []int) int { return 0 }
func (d *Dataset2D) ScalarVolumesData(int, []float64) int { return 0 }
func (d *Dataset2D) VectorVolumesData(int, []float64) int { return 0 }

// Dataset3D is the embeddable base for layered 3D datasets: values on
// columns of volume cells stacked under each face. A driver embeds it and
// implements the five volume-shaped accessors. The volume and level
// counts are fixed at construction.
type Dataset3D struct {
	datasetBase
	volumesCount               int
	maximumVerticalLevelsCount int
}

// NewDataset3D returns a 3D base attached to group, declaring the total
// volume cell count and the tallest column height in layers.
func NewDataset3D(group *DatasetGroup, volumesCount, maximumVerticalLevelsCount int) Dataset3D {
	return Dataset3D{
		datasetBase:                newDatasetBase(group),
		volumesCount:               volumesCount,
		maximumVerticalLevelsCount: maximumVerticalLevelsCount,
	}
}

// ValuesCount returns the volume cell count for a volume-located group,
// or the mesh entity count for the (unusual) 3D dataset in a 2D-located
// group.
func (d *Dataset3D) ValuesCount() int {
	loc, n := d.locationCount()
	if loc == DataOnVolumes3D {
		return d.volumesCount
	}
	return n
}

// ScalarData reports zero extent: 3D values live in the volume accessors.
func (d *Dataset3D) ScalarData(int, []float64) int { return 0 }

// VectorData reports zero extent: 3D values live in the volume accessors.
func (d *Dataset3D) VectorData(int, []float64) int { return 0 }

// VolumesCount returns the total volume cells across all face columns.
func (d *Dataset3D) VolumesCount() int { return d.volumesCount }

// MaximumVerticalLevelsCount returns the tallest face column in layers.
func (d *Dataset3D) MaximumVerticalLevelsCount() int { return d.maximumVerticalLevelsCount }

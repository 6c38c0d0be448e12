package meshdata

import (
	"path"
	"strings"
	"time"
)

// DataLocation says which mesh entity a group's values are indexed by.
// It is fixed for the lifetime of a group and shared by all its datasets.
type DataLocation int

const (
	DataOnVertices2D DataLocation = iota
	DataOnFaces2D
	DataOnVolumes3D
)

// String returns the location name.
func (l DataLocation) String() string {
	switch l {
	case DataOnVertices2D:
		return "vertices"
	case DataOnFaces2D:
		return "faces"
	case DataOnVolumes3D:
		return "volumes"
	}
	return "unknown"
}

// DatasetGroup is a named, ordered collection of time-step datasets
// sharing one data location and one scalar/vector shape. The group keeps
// a non-owning back reference to its parent mesh; the reference is for
// navigation only and must not be used after the mesh is released.
type DatasetGroup struct {
	driverName    string
	mesh          *Mesh
	uri           string
	name          string
	isScalar      bool
	location      DataLocation
	stats         Statistics
	referenceTime time.Time
	metadata      Metadata
	datasets      []Dataset
	inEditMode    bool
}

// GroupOption configures dataset group construction.
type GroupOption func(*DatasetGroup)

// WithName sets the group name, overriding the uri-derived default.
func WithName(name string) GroupOption {
	return func(g *DatasetGroup) { g.name = name }
}

// WithDataLocation sets the entity the group's values are indexed by.
func WithDataLocation(loc DataLocation) GroupOption {
	return func(g *DatasetGroup) { g.location = loc }
}

// WithVectorValues marks the group as holding 2-component vector values.
func WithVectorValues() GroupOption {
	return func(g *DatasetGroup) { g.isScalar = false }
}

// WithReferenceTime sets the absolute origin for the group's relative
// dataset timestamps.
func WithReferenceTime(t time.Time) GroupOption {
	return func(g *DatasetGroup) { g.referenceTime = t }
}

// NewDatasetGroup constructs a group attached to mesh. Without WithName
// the name defaults to the base of uri with its extension stripped.
// Groups default to scalar values on vertices.
func NewDatasetGroup(driverName string, mesh *Mesh, uri string, opts ...GroupOption) *DatasetGroup {
	g := &DatasetGroup{
		driverName: driverName,
		mesh:       mesh,
		uri:        uri,
		isScalar:   true,
		location:   DataOnVertices2D,
		stats:      NewStatistics(),
	}
	base := path.Base(uri)
	g.name = strings.TrimSuffix(base, path.Ext(base))
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DriverName identifies the driver that created the group.
func (g *DatasetGroup) DriverName() string { return g.driverName }

// Mesh returns the parent mesh. Navigation only; never use the result to
// extend the mesh's lifetime.
func (g *DatasetGroup) Mesh() *Mesh { return g.mesh }

// URI returns the source the group was loaded from.
func (g *DatasetGroup) URI() string { return g.uri }

// Name returns the group name.
func (g *DatasetGroup) Name() string { return g.name }

// SetName renames the group.
func (g *DatasetGroup) SetName(name string) { g.name = name }

// IsScalar reports whether values are scalar (false means 2-component
// vectors).
func (g *DatasetGroup) IsScalar() bool { return g.isScalar }

// SetIsScalar sets the value shape.
func (g *DatasetGroup) SetIsScalar(isScalar bool) { g.isScalar = isScalar }

// DataLocation returns the entity the group's values are indexed by.
func (g *DatasetGroup) DataLocation() DataLocation { return g.location }

// SetDataLocation sets the data location. Drivers call this during
// construction; the location is fixed once datasets are attached.
func (g *DatasetGroup) SetDataLocation(loc DataLocation) { g.location = loc }

// Statistics returns the group-level aggregate. Only meaningful outside
// edit mode; StopEditing recomputes it from the contained datasets.
func (g *DatasetGroup) Statistics() Statistics { return g.stats }

// SetStatistics overrides the group-level aggregate.
func (g *DatasetGroup) SetStatistics(s Statistics) { g.stats = s }

// ReferenceTime returns the absolute origin for dataset timestamps; the
// zero time means no reference is known.
func (g *DatasetGroup) ReferenceTime() time.Time { return g.referenceTime }

// SetReferenceTime sets the absolute origin for dataset timestamps.
func (g *DatasetGroup) SetReferenceTime(t time.Time) { g.referenceTime = t }

// Metadata returns the group's ordered metadata pairs.
func (g *DatasetGroup) Metadata() Metadata { return g.metadata }

// GetMetadata returns the value of the first metadata pair with the key.
func (g *DatasetGroup) GetMetadata(key string) (string, bool) {
	return g.metadata.Get(key)
}

// SetMetadata updates the first metadata pair with the key, or appends.
func (g *DatasetGroup) SetMetadata(key, value string) {
	g.metadata.Set(key, value)
}

// Datasets returns the contained datasets in insertion order.
func (g *DatasetGroup) Datasets() []Dataset { return g.datasets }

// AppendDataset adds a dataset to the group, preserving insertion order.
func (g *DatasetGroup) AppendDataset(ds Dataset) {
	g.datasets = append(g.datasets, ds)
}

// DatasetTime resolves a dataset's relative timestamp against the group
// reference time. ok is false when no reference time is set.
func (g *DatasetGroup) DatasetTime(ds Dataset) (time.Time, bool) {
	if g.referenceTime.IsZero() {
		return time.Time{}, false
	}
	return g.referenceTime.Add(ds.Time().Duration()), true
}

// MaximumVerticalLevelsCount returns the tallest vertical column over the
// contained datasets, 0 for 2D groups. Only guaranteed consistent outside
// edit mode.
func (g *DatasetGroup) MaximumVerticalLevelsCount() int {
	max := 0
	for _, ds := range g.datasets {
		if n := ds.MaximumVerticalLevelsCount(); n > max {
			max = n
		}
	}
	return max
}

// IsInEditMode reports whether the group is between StartEditing and
// StopEditing. Statistics are not meaningful while editing.
func (g *DatasetGroup) IsInEditMode() bool { return g.inEditMode }

// StartEditing opens the edit bracket guarding bulk mutation. Calling it
// while already editing is a no-op.
func (g *DatasetGroup) StartEditing() { g.inEditMode = true }

// StopEditing closes the edit bracket and recomputes the group aggregate
// from the min/max of all contained datasets. A no-op outside edit mode.
func (g *DatasetGroup) StopEditing() {
	if !g.inEditMode {
		return
	}
	g.inEditMode = false
	stats := NewStatistics()
	for _, ds := range g.datasets {
		stats.Combine(ds.Statistics())
	}
	g.stats = stats
}

// Package meshjson loads meshes from a small JSON document format. It
// exists as the reference format driver: everything it produces goes
// through the public meshdata extension points, with geometry and values
// backed by the memory driver once decoded.
//
// Document layout:
//
//	{
//	  "mesh": {
//	    "crs": "EPSG:32633",
//	    "vertices": [[0,0], [1,0], [1,1]],
//	    "faces": [[0,1,2]]
//	  },
//	  "groups": [{
//	    "name": "depth",
//	    "location": "vertices",        // "vertices" | "faces" | "volumes"
//	    "vector": false,
//	    "referenceTime": "2020-01-01T00:00:00Z",
//	    "metadata": {"units": "m"},
//	    "datasets": [{
//	      "time": 0.5, "timeUnit": "hours",
//	      "values": [1.0, 2.0, 3.0],   // flat; x,y interleaved for vector
//	      "active": [1, 0, 1],         // optional, per face
//	      "levelCounts": [...],        // volume groups only
//	      "levels": [...]              // volume groups only
//	    }]
//	  }]
//	}
//
// A dataset whose arrays do not match the mesh is appended invalid rather
// than failing the load; sibling datasets are unaffected.
package meshjson

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/robert-malhotra/go-meshdata/driver/memory"
	"github.com/robert-malhotra/go-meshdata/meshdata"
)

// DriverName identifies meshes created by this driver.
const DriverName = "meshjson"

// Common errors
var (
	ErrNotMeshJSON     = errors.New("not a mesh JSON document")
	ErrBadDataLocation = errors.New("unknown data location")
)

// Open reads and parses a mesh JSON document from disk.
func Open(path string) (*meshdata.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	m, err := Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// Parse builds a mesh from a document held in memory. uri records the
// document's provenance on the mesh and its groups.
func Parse(data []byte, uri string) (*meshdata.Mesh, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrNotMeshJSON
	}
	doc := gjson.ParseBytes(data)
	meshNode := doc.Get("mesh")
	if !meshNode.Exists() || !meshNode.Get("vertices").Exists() {
		return nil, ErrNotMeshJSON
	}

	var vertices []float64
	for _, v := range meshNode.Get("vertices").Array() {
		pair := v.Array()
		if len(pair) != 2 {
			return nil, fmt.Errorf("vertex %q: want [x,y]", v.Raw)
		}
		vertices = append(vertices, pair[0].Float(), pair[1].Float())
	}

	var faces [][]int
	for _, f := range meshNode.Get("faces").Array() {
		var face []int
		for _, idx := range f.Array() {
			face = append(face, int(idx.Int()))
		}
		faces = append(faces, face)
	}

	m, err := memory.NewMeshForDriver(DriverName, uri, vertices, faces)
	if err != nil {
		return nil, err
	}
	if crs := meshNode.Get("crs"); crs.Exists() {
		m.SetSourceCrs(crs.String())
	}

	for _, groupNode := range doc.Get("groups").Array() {
		g, err := parseGroup(m, uri, groupNode)
		if err != nil {
			return nil, err
		}
		m.AppendGroup(g)
	}
	return m, nil
}

// parseGroup builds one dataset group, bracketing population with the
// group's edit mode so aggregate statistics land after the last append.
func parseGroup(m *meshdata.Mesh, uri string, node gjson.Result) (*meshdata.DatasetGroup, error) {
	loc, err := parseLocation(node.Get("location"))
	if err != nil {
		return nil, fmt.Errorf("group %q: %w", node.Get("name").String(), err)
	}

	opts := []meshdata.GroupOption{meshdata.WithDataLocation(loc)}
	if name := node.Get("name"); name.Exists() {
		opts = append(opts, meshdata.WithName(name.String()))
	}
	if node.Get("vector").Bool() {
		opts = append(opts, meshdata.WithVectorValues())
	}
	if ref := node.Get("referenceTime"); ref.Exists() {
		t, err := time.Parse(time.RFC3339, ref.String())
		if err != nil {
			return nil, fmt.Errorf("group %q: reference time: %w", node.Get("name").String(), err)
		}
		opts = append(opts, meshdata.WithReferenceTime(t))
	}

	g := meshdata.NewDatasetGroup(DriverName, m, uri, opts...)
	node.Get("metadata").ForEach(func(key, value gjson.Result) bool {
		g.SetMetadata(key.String(), value.String())
		return true
	})

	g.StartEditing()
	for _, dsNode := range node.Get("datasets").Array() {
		g.AppendDataset(parseDataset(g, dsNode))
	}
	g.StopEditing()
	return g, nil
}

// parseDataset builds one time step. Malformed arrays degrade to an
// invalid dataset instead of an error.
func parseDataset(g *meshdata.DatasetGroup, node gjson.Result) meshdata.Dataset {
	ts := meshdata.NewRelativeTimestamp(node.Get("time").Float(), parseTimeUnit(node.Get("timeUnit")))
	values := floatArray(node.Get("values"))

	if g.DataLocation() == meshdata.DataOnVolumes3D {
		levelCounts := intArray(node.Get("levelCounts"))
		levels := floatArray(node.Get("levels"))
		ds, err := memory.NewDataset3D(g, ts, levelCounts, levels, values)
		if err != nil {
			return newInvalidDataset(g, ts)
		}
		return ds
	}

	ds, err := memory.NewDataset2D(g, ts, values)
	if err != nil {
		return newInvalidDataset(g, ts)
	}
	if active := node.Get("active"); active.Exists() {
		ds.SetActive(intArray(active))
	}
	return ds
}

func parseLocation(node gjson.Result) (meshdata.DataLocation, error) {
	switch node.String() {
	case "", "vertices":
		return meshdata.DataOnVertices2D, nil
	case "faces":
		return meshdata.DataOnFaces2D, nil
	case "volumes":
		return meshdata.DataOnVolumes3D, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDataLocation, node.String())
}

func parseTimeUnit(node gjson.Result) meshdata.TimeUnit {
	switch node.String() {
	case "milliseconds":
		return meshdata.Milliseconds
	case "seconds":
		return meshdata.Seconds
	case "minutes":
		return meshdata.Minutes
	case "days":
		return meshdata.Days
	case "weeks":
		return meshdata.Weeks
	}
	return meshdata.Hours
}

func floatArray(node gjson.Result) []float64 {
	var out []float64
	for _, v := range node.Array() {
		out = append(out, v.Float())
	}
	return out
}

func intArray(node gjson.Result) []int {
	var out []int
	for _, v := range node.Array() {
		out = append(out, int(v.Int()))
	}
	return out
}

// invalidDataset stands in for a time step whose arrays did not match the
// mesh. Every accessor reports zero extent; IsValid is false from birth.
type invalidDataset struct {
	meshdata.Dataset2D
}

var _ meshdata.Dataset = (*invalidDataset)(nil)

func newInvalidDataset(g *meshdata.DatasetGroup, ts meshdata.RelativeTimestamp) *invalidDataset {
	ds := &invalidDataset{Dataset2D: meshdata.NewDataset2D(g)}
	ds.SetTime(ts)
	ds.Invalidate()
	return ds
}

func (d *invalidDataset) ScalarData(int, []float64) int { return 0 }
func (d *invalidDataset) VectorData(int, []float64) int { return 0 }

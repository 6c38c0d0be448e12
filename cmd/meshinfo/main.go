// Diagnostic tool for inspecting mesh JSON documents
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tidwall/sjson"

	"github.com/robert-malhotra/go-meshdata/driver/meshjson"
	"github.com/robert-malhotra/go-meshdata/meshdata"
)

func main() {
	jsonOut := flag.Bool("json", false, "emit a JSON summary instead of text")
	chunk := flag.Int("chunk", 1024, "iterator chunk size in entities")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: meshinfo [-json] [-chunk n] <mesh.json>")
		os.Exit(1)
	}
	filename := flag.Arg(0)

	m, err := meshjson.Open(filename)
	if err != nil {
		fmt.Printf("ERROR: failed to open mesh: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		printJSON(m)
		return
	}
	printText(m, *chunk)
}

func printText(m *meshdata.Mesh, chunk int) {
	fmt.Printf("=== %s ===\n\n", m.URI())
	fmt.Printf("Driver: %s\n", m.DriverName())
	if m.CRS() != "" {
		fmt.Printf("CRS: %s\n", m.CRS())
	}
	ext := m.Extent()
	fmt.Printf("Extent: x [%g, %g], y [%g, %g]\n", ext.MinX, ext.MaxX, ext.MinY, ext.MaxY)
	fmt.Printf("Vertices: %d  Faces: %d (up to %d vertices per face)\n",
		m.VerticesCount(), m.FacesCount(), m.FaceVerticesMaximumCount())

	// Stream the full geometry; a shortfall against the declared counts
	// means the driver hit a read failure mid-pass.
	streamed := streamVertices(m, chunk)
	if streamed != m.VerticesCount() {
		fmt.Printf("WARNING: incomplete vertex read: %d of %d\n", streamed, m.VerticesCount())
	}
	streamed = streamFaces(m, chunk)
	if streamed != m.FacesCount() {
		fmt.Printf("WARNING: incomplete face read: %d of %d\n", streamed, m.FacesCount())
	}

	fmt.Printf("\nDataset groups: %d\n", len(m.Groups()))
	meshdata.Walk(m, func(g *meshdata.DatasetGroup, ds meshdata.Dataset) error {
		if ds == nil {
			shape := "scalar"
			if !g.IsScalar() {
				shape = "vector"
			}
			fmt.Printf("\nGroup %q (%s on %s)\n", g.Name(), shape, g.DataLocation())
			if !g.ReferenceTime().IsZero() {
				fmt.Printf("  Reference time: %s\n", g.ReferenceTime())
			}
			for _, e := range g.Metadata() {
				fmt.Printf("  %s = %s\n", e.Key, e.Value)
			}
			if stats := g.Statistics(); stats.IsSet() {
				fmt.Printf("  Range: [%g, %g]\n", stats.Minimum, stats.Maximum)
			}
			return nil
		}
		valid := ""
		if !ds.IsValid() {
			valid = "  INVALID"
		}
		fmt.Printf("  t=%g h: %d values", ds.Time().Value(meshdata.Hours), ds.ValuesCount())
		if n := ds.VolumesCount(); n > 0 {
			fmt.Printf(", %d volumes, %d levels max", n, ds.MaximumVerticalLevelsCount())
		}
		fmt.Println(valid)
		return nil
	})
}

func streamVertices(m *meshdata.Mesh, chunk int) int {
	it := m.ReadVertices()
	buf := make([]float64, chunk*2)
	total := 0
	for {
		n := it.Next(buf)
		if n == 0 {
			return total
		}
		total += n
	}
}

func streamFaces(m *meshdata.Mesh, chunk int) int {
	it := m.ReadFaces()
	offsets := make([]int, chunk+1)
	indices := make([]int, chunk*m.FaceVerticesMaximumCount())
	total := 0
	for {
		n := it.Next(offsets, indices)
		if n == 0 {
			return total
		}
		total += n
	}
}

func printJSON(m *meshdata.Mesh) {
	out := "{}"
	out, _ = sjson.Set(out, "uri", m.URI())
	out, _ = sjson.Set(out, "driver", m.DriverName())
	out, _ = sjson.Set(out, "crs", m.CRS())
	out, _ = sjson.Set(out, "verticesCount", m.VerticesCount())
	out, _ = sjson.Set(out, "facesCount", m.FacesCount())
	ext := m.Extent()
	out, _ = sjson.Set(out, "extent", []float64{ext.MinX, ext.MaxX, ext.MinY, ext.MaxY})

	for i, g := range m.Groups() {
		base := fmt.Sprintf("groups.%d", i)
		out, _ = sjson.Set(out, base+".name", g.Name())
		out, _ = sjson.Set(out, base+".location", g.DataLocation().String())
		out, _ = sjson.Set(out, base+".scalar", g.IsScalar())
		if stats := g.Statistics(); stats.IsSet() {
			out, _ = sjson.Set(out, base+".minimum", stats.Minimum)
			out, _ = sjson.Set(out, base+".maximum", stats.Maximum)
		}
		for j, ds := range g.Datasets() {
			dsBase := fmt.Sprintf("%s.datasets.%d", base, j)
			out, _ = sjson.Set(out, dsBase+".time", ds.Time().Value(meshdata.Hours))
			out, _ = sjson.Set(out, dsBase+".valid", ds.IsValid())
			out, _ = sjson.Set(out, dsBase+".valuesCount", ds.ValuesCount())
		}
	}
	fmt.Println(out)
}

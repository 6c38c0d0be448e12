package meshdata

// WalkFunc is called during traversal, once per dataset group with ds ==
// nil, then once per dataset in that group. Return nil to continue, or an
// error to stop; ErrStopWalk stops without the error escaping Walk.
type WalkFunc func(group *DatasetGroup, ds Dataset) error

// Walk visits every dataset group of the mesh in insertion order, and
// every dataset within each group.
//
// Example:
//
//	meshdata.Walk(m, func(g *meshdata.DatasetGroup, ds meshdata.Dataset) error {
//	    if ds == nil {
//	        fmt.Println("group:", g.Name())
//	        return nil
//	    }
//	    fmt.Println("  dataset at", ds.Time().Value(meshdata.Hours), "h")
//	    return nil
//	})
func Walk(m *Mesh, fn WalkFunc) error {
	for _, g := range m.Groups() {
		if err := fn(g, nil); err != nil {
			return stopOrErr(err)
		}
		for _, ds := range g.Datasets() {
			if err := fn(g, ds); err != nil {
				return stopOrErr(err)
			}
		}
	}
	return nil
}

func stopOrErr(err error) error {
	if err == ErrStopWalk {
		return nil
	}
	return err
}

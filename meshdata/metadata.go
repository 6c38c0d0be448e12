package meshdata

// MetadataEntry is a single key/value pair.
type MetadataEntry struct {
	Key   string
	Value string
}

// Metadata is an ordered sequence of key/value pairs. Keys are not
// required to be unique; lookups resolve to the first match.
type Metadata []MetadataEntry

// Get returns the value of the first entry with the given key.
func (m Metadata) Get(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Set updates the first entry with the given key, or appends a new entry
// if the key is absent.
func (m *Metadata) Set(key, value string) {
	for i, e := range *m {
		if e.Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, MetadataEntry{Key: key, Value: value})
}

package pipeline

// SourceMap is a version 3 source map as attached to a File. The Mappings
// string is opaque to the pipeline stages; only the generator that produced it
// knows its internal encoding.
//
// SourcesContent parallels Sources when present: a nil entry means the content
// for that source is intentionally unresolvable (for example, the source is a
// remote URL). A nil SourcesContent slice means content inclusion is disabled
// or has not happened yet, which is distinct from an empty slice.
type SourceMap struct {
	Version        int       `json:"version"`
	File           string    `json:"file,omitempty"`
	SourceRoot     string    `json:"sourceRoot,omitempty"`
	Sources        []string  `json:"sources"`
	SourcesContent []*string `json:"sourcesContent,omitempty"`
	Names          []string  `json:"names"`
	Mappings       string    `json:"mappings"`
}

// Clone returns a deep copy of the map.
func (m *SourceMap) Clone() *SourceMap {
	if m == nil {
		return nil
	}
	c := *m
	c.Sources = append([]string(nil), m.Sources...)
	c.Names = append([]string(nil), m.Names...)
	if m.SourcesContent != nil {
		c.SourcesContent = make([]*string, len(m.SourcesContent))
		for i, sc := range m.SourcesContent {
			if sc != nil {
				s := *sc
				c.SourcesContent[i] = &s
			}
		}
	}
	return &c
}

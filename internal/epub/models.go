package epub

// OPF represents the parsed Open Package Format document
type OPF struct {
	Metadata Metadata
	Manifest map[string]ManifestItem // id -> item
	Spine    []SpineItem
}

// Metadata represents the metadata section of the OPF
type Metadata struct {
	Title    string
	Creators []string
	Language string
}

// ManifestItem represents an item in the manifest
type ManifestItem struct {
	ID        string
	Href      string
	MediaType string
}

// SpineItem represents an item reference in the spine
type SpineItem struct {
	IDRef  string
	Linear bool
}

// SpineEntry is one content document in reading order. Its position in
// the slice returned by ContentDocuments is its 0-based spine index.
type SpineEntry struct {
	ID   string
	Path string
}

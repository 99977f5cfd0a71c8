package epub

import "strings"

// ContentDocuments resolves the spine against the manifest and returns
// the book's content documents in reading order. Spine entries whose
// manifest media type is not HTML/XHTML are skipped, as are itemrefs
// whose idref has no manifest item; the skipped idrefs are returned
// separately so callers can report them. Returns ErrSpineEmpty when no
// content documents remain.
func (opf *OPF) ContentDocuments() ([]SpineEntry, []string, error) {
	var entries []SpineEntry
	var skipped []string

	for _, item := range opf.Spine {
		manifestItem, ok := opf.Manifest[item.IDRef]
		if !ok {
			skipped = append(skipped, item.IDRef)
			continue
		}
		if !isContentDocument(manifestItem.MediaType) {
			continue
		}
		entries = append(entries, SpineEntry{
			ID:   manifestItem.ID,
			Path: manifestItem.Href,
		})
	}

	if len(entries) == 0 {
		return nil, skipped, ErrSpineEmpty
	}
	return entries, skipped, nil
}

// isContentDocument checks if a media type indicates an HTML/XHTML
// content file that belongs to the reading order.
func isContentDocument(mediaType string) bool {
	return strings.Contains(mediaType, "html") || strings.Contains(mediaType, "xhtml")
}

package epub

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
)

// opfPackage represents the OPF XML structure
type opfPackage struct {
	XMLName  xml.Name    `xml:"package"`
	Version  string      `xml:"version,attr"`
	Metadata opfMetadata `xml:"metadata"`
	Manifest opfManifest `xml:"manifest"`
	Spine    opfSpine    `xml:"spine"`
}

// opfMetadata represents the metadata section
type opfMetadata struct {
	Title    []string `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creator  []string `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Language []string `xml:"http://purl.org/dc/elements/1.1/ language"`
}

// opfManifest represents the manifest section
type opfManifest struct {
	Items []opfManifestItem `xml:"item"`
}

// opfManifestItem represents an item in the manifest
type opfManifestItem struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
}

// opfSpine represents the spine section
type opfSpine struct {
	ItemRefs []opfItemRef `xml:"itemref"`
}

// opfItemRef represents an itemref in the spine
type opfItemRef struct {
	IDRef  string `xml:"idref,attr"`
	Linear string `xml:"linear,attr"`
}

// ParseOPF parses an OPF file content and returns the OPF structure.
// opfDir is the directory containing the OPF file (e.g., "OEBPS");
// manifest hrefs are resolved relative to it. Manifest items missing
// a mandatory id or href attribute fail the parse.
func ParseOPF(content []byte, opfDir string) (*OPF, error) {
	var pkg opfPackage
	if err := xml.Unmarshal(content, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse OPF XML: %w", err)
	}

	opf := &OPF{
		Manifest: make(map[string]ManifestItem),
	}

	// Metadata is best-effort; a missing title is not an error.
	if len(pkg.Metadata.Title) > 0 {
		opf.Metadata.Title = pkg.Metadata.Title[0]
	}
	if len(pkg.Metadata.Language) > 0 {
		opf.Metadata.Language = pkg.Metadata.Language[0]
	}
	opf.Metadata.Creators = append(opf.Metadata.Creators, pkg.Metadata.Creator...)

	for _, item := range pkg.Manifest.Items {
		if item.ID == "" || item.Href == "" {
			return nil, fmt.Errorf("manifest item missing mandatory attribute (id=%q, href=%q)", item.ID, item.Href)
		}
		opf.Manifest[item.ID] = ManifestItem{
			ID:        item.ID,
			Href:      joinPath(opfDir, item.Href),
			MediaType: item.MediaType,
		}
	}

	for _, itemRef := range pkg.Spine.ItemRefs {
		if itemRef.IDRef == "" {
			return nil, fmt.Errorf("spine itemref missing mandatory idref attribute")
		}
		opf.Spine = append(opf.Spine, SpineItem{
			IDRef:  itemRef.IDRef,
			Linear: itemRef.Linear != "no",
		})
	}

	return opf, nil
}

// Title returns the book title, or a placeholder if the metadata
// carries none.
func (opf *OPF) Title() string {
	if opf.Metadata.Title == "" {
		return "Untitled"
	}
	return opf.Metadata.Title
}

// joinPath joins OPF directory with a relative path using forward
// slashes, which is how archive entries are named.
func joinPath(base, rel string) string {
	if base == "" || base == "." {
		return rel
	}
	return filepath.ToSlash(filepath.Join(base, rel))
}

package epub

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Reader provides access to EPUB file contents
type Reader struct {
	zipReader *zip.ReadCloser
	files     map[string]*zip.File
	names     []string // entry names in archive order
	opfPath   string
}

// container.xml structure
type container struct {
	Rootfiles struct {
		Rootfile []struct {
			FullPath  string `xml:"full-path,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"rootfile"`
	} `xml:"rootfiles"`
}

// Open opens an EPUB file and locates its package document
func Open(path string) (*Reader, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open EPUB: %w", err)
	}

	reader := &Reader{
		zipReader: zr,
		files:     make(map[string]*zip.File),
	}

	// Build file map with normalized paths
	for _, f := range zr.File {
		name := normalizePath(f.Name)
		reader.files[name] = f
		reader.names = append(reader.names, name)
	}

	// Parse container.xml to get the OPF path
	if err := reader.parseContainer(); err != nil {
		zr.Close()
		return nil, err
	}

	return reader, nil
}

// Close closes the EPUB reader
func (r *Reader) Close() error {
	return r.zipReader.Close()
}

// OPFPath returns the path to the OPF file
func (r *Reader) OPFPath() string {
	return r.opfPath
}

// Files returns the archive entry names in archive order
func (r *Reader) Files() []string {
	return r.names
}

// ReadFile reads the contents of a file from the EPUB
func (r *Reader) ReadFile(path string) ([]byte, error) {
	path = normalizePath(path)
	f, ok := r.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// parseContainer parses META-INF/container.xml to extract the OPF path.
// If the container descriptor is missing or unusable, it falls back to
// scanning the archive for an .opf entry before giving up.
func (r *Reader) parseContainer() error {
	content, err := r.ReadFile("META-INF/container.xml")
	if err != nil {
		return r.findOPFFallback()
	}

	var c container
	if err := xml.Unmarshal(content, &c); err != nil {
		return r.findOPFFallback()
	}

	for _, rf := range c.Rootfiles.Rootfile {
		if rf.FullPath != "" {
			r.opfPath = normalizePath(rf.FullPath)
			return nil
		}
	}

	return r.findOPFFallback()
}

// findOPFFallback scans the archive for a package document when the
// container descriptor does not declare one.
func (r *Reader) findOPFFallback() error {
	for _, name := range r.names {
		if strings.HasSuffix(strings.ToLower(name), ".opf") {
			r.opfPath = name
			return nil
		}
	}
	return ErrPackageNotFound
}

// normalizePath normalizes file paths (removes ./ prefix)
func normalizePath(path string) string {
	path = strings.TrimPrefix(path, "./")
	return path
}

package epub

import "errors"

var (
	// ErrPackageNotFound indicates that neither META-INF/container.xml
	// nor any .opf entry could be located in the archive.
	ErrPackageNotFound = errors.New("epub: package document not found")

	// ErrSpineEmpty indicates the package parsed but declared no
	// HTML/XHTML content documents in reading order.
	ErrSpineEmpty = errors.New("epub: spine contains no content documents")

	// ErrFileNotFound indicates the requested entry does not exist
	// in the archive.
	ErrFileNotFound = errors.New("epub: file not found in archive")
)

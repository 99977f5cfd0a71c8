package extract

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidRange indicates a malformed range expression, or one
	// whose start is greater than its end.
	ErrInvalidRange = errors.New("extract: invalid page range")

	// ErrEmptyRange indicates a well-formed range that selects no
	// files, such as a start beyond the last content file.
	ErrEmptyRange = errors.New("extract: page range selects no files")
)

// PageRange is a 1-based inclusive range over spine positions. A zero
// Start or End means unbounded on that side.
type PageRange struct {
	Start int
	End   int
}

// ParsePageRange parses a range expression of the form "N", "N-M",
// "N-" or "-N". The empty string means the whole book.
func ParsePageRange(s string) (PageRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PageRange{}, nil
	}

	if !strings.Contains(s, "-") {
		n, err := parsePage(s)
		if err != nil {
			return PageRange{}, err
		}
		return PageRange{Start: n, End: n}, nil
	}

	startStr, endStr, _ := strings.Cut(s, "-")
	startStr = strings.TrimSpace(startStr)
	endStr = strings.TrimSpace(endStr)
	if startStr == "" && endStr == "" {
		return PageRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	var r PageRange
	var err error
	if startStr != "" {
		if r.Start, err = parsePage(startStr); err != nil {
			return PageRange{}, err
		}
	}
	if endStr != "" {
		if r.End, err = parsePage(endStr); err != nil {
			return PageRange{}, err
		}
	}
	if r.Start != 0 && r.End != 0 && r.Start > r.End {
		return PageRange{}, fmt.Errorf("%w: start %d is greater than end %d", ErrInvalidRange, r.Start, r.End)
	}
	return r, nil
}

// Resolve maps the range onto a spine of total content files and
// returns 0-based half-open slice bounds. An end beyond the last file
// clamps to the last file; a start beyond the last file is an error
// rather than a silent empty selection.
func (r PageRange) Resolve(total int) (lo, hi int, err error) {
	start := r.Start
	if start < 1 {
		start = 1
	}
	end := r.End
	if end == 0 || end > total {
		end = total
	}

	if start > total {
		return 0, 0, fmt.Errorf("%w: start %d exceeds the %d content files", ErrEmptyRange, start, total)
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: resolved to %d-%d", ErrEmptyRange, start, end)
	}
	return start - 1, end, nil
}

func parsePage(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a positive page number", ErrInvalidRange, s)
	}
	return n, nil
}

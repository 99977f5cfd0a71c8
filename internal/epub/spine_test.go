package epub

import (
	"errors"
	"testing"
)

func TestContentDocuments(t *testing.T) {
	opf := &OPF{
		Manifest: map[string]ManifestItem{
			"ncx":   {ID: "ncx", Href: "toc.ncx", MediaType: "application/x-dtbncx+xml"},
			"cover": {ID: "cover", Href: "cover.jpg", MediaType: "image/jpeg"},
			"c1":    {ID: "c1", Href: "text/c1.xhtml", MediaType: "application/xhtml+xml"},
			"c2":    {ID: "c2", Href: "text/c2.html", MediaType: "text/html"},
			"css":   {ID: "css", Href: "style.css", MediaType: "text/css"},
		},
		Spine: []SpineItem{
			{IDRef: "c1", Linear: true},
			{IDRef: "cover", Linear: true},
			{IDRef: "c2", Linear: true},
			{IDRef: "ghost", Linear: true},
		},
	}

	entries, skipped, err := opf.ContentDocuments()
	if err != nil {
		t.Fatalf("ContentDocuments failed: %v", err)
	}

	// Only HTML/XHTML documents, in spine order
	want := []SpineEntry{
		{ID: "c1", Path: "text/c1.xhtml"},
		{ID: "c2", Path: "text/c2.html"},
	}
	if len(entries) != len(want) {
		t.Fatalf("entries count = %d, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}

	if len(skipped) != 1 || skipped[0] != "ghost" {
		t.Errorf("skipped = %v, want [ghost]", skipped)
	}
}

func TestContentDocuments_Empty(t *testing.T) {
	opf := &OPF{
		Manifest: map[string]ManifestItem{
			"cover": {ID: "cover", Href: "cover.jpg", MediaType: "image/jpeg"},
		},
		Spine: []SpineItem{
			{IDRef: "cover", Linear: true},
		},
	}

	_, _, err := opf.ContentDocuments()
	if !errors.Is(err, ErrSpineEmpty) {
		t.Fatalf("ContentDocuments error = %v, want ErrSpineEmpty", err)
	}
}

func TestContentDocuments_NoSpine(t *testing.T) {
	opf := &OPF{Manifest: map[string]ManifestItem{}}

	_, _, err := opf.ContentDocuments()
	if !errors.Is(err, ErrSpineEmpty) {
		t.Fatalf("ContentDocuments error = %v, want ErrSpineEmpty", err)
	}
}

func TestIsContentDocument(t *testing.T) {
	tests := []struct {
		mediaType string
		want      bool
	}{
		{"application/xhtml+xml", true},
		{"text/html", true},
		{"text/css", false},
		{"image/jpeg", false},
		{"application/x-dtbncx+xml", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isContentDocument(tt.mediaType); got != tt.want {
			t.Errorf("isContentDocument(%q) = %v, want %v", tt.mediaType, got, tt.want)
		}
	}
}

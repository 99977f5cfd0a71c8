package epub

import (
	"strings"
	"testing"
)

func TestParseOPF(t *testing.T) {
	opfContent := `<?xml version="1.0" encoding="UTF-8"?>
<package version="2.0" xmlns="http://www.idpf.org/2007/opf" unique-identifier="bookid">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>Sample Book Title</dc:title>
    <dc:creator>John Doe</dc:creator>
    <dc:creator>Jane Editor</dc:creator>
    <dc:language>en</dc:language>
  </metadata>
  <manifest>
    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>
    <item id="chapter1" href="text/chapter1.xhtml" media-type="application/xhtml+xml"/>
    <item id="chapter2" href="text/chapter2.xhtml" media-type="application/xhtml+xml"/>
    <item id="stylesheet" href="css/style.css" media-type="text/css"/>
  </manifest>
  <spine toc="ncx">
    <itemref idref="chapter1"/>
    <itemref idref="chapter2" linear="no"/>
  </spine>
</package>`

	opf, err := ParseOPF([]byte(opfContent), "OEBPS")
	if err != nil {
		t.Fatalf("ParseOPF failed: %v", err)
	}

	if opf.Metadata.Title != "Sample Book Title" {
		t.Errorf("Title = %q, want %q", opf.Metadata.Title, "Sample Book Title")
	}
	if opf.Metadata.Language != "en" {
		t.Errorf("Language = %q, want %q", opf.Metadata.Language, "en")
	}
	if len(opf.Metadata.Creators) != 2 || opf.Metadata.Creators[0] != "John Doe" {
		t.Errorf("Creators = %v, want [John Doe Jane Editor]", opf.Metadata.Creators)
	}

	if len(opf.Manifest) != 4 {
		t.Fatalf("Manifest count = %d, want 4", len(opf.Manifest))
	}

	// Hrefs resolve relative to the OPF directory
	if got := opf.Manifest["chapter1"].Href; got != "OEBPS/text/chapter1.xhtml" {
		t.Errorf("chapter1 Href = %q, want %q", got, "OEBPS/text/chapter1.xhtml")
	}
	if got := opf.Manifest["chapter1"].MediaType; got != "application/xhtml+xml" {
		t.Errorf("chapter1 MediaType = %q, want %q", got, "application/xhtml+xml")
	}

	if len(opf.Spine) != 2 {
		t.Fatalf("Spine count = %d, want 2", len(opf.Spine))
	}
	if opf.Spine[0].IDRef != "chapter1" || !opf.Spine[0].Linear {
		t.Errorf("Spine[0] = %+v, want chapter1 linear", opf.Spine[0])
	}
	if opf.Spine[1].IDRef != "chapter2" || opf.Spine[1].Linear {
		t.Errorf("Spine[1] = %+v, want chapter2 non-linear", opf.Spine[1])
	}
}

func TestParseOPF_EmptyOPFDir(t *testing.T) {
	opfContent := `<package xmlns="http://www.idpf.org/2007/opf">
  <manifest><item id="c1" href="c1.xhtml" media-type="application/xhtml+xml"/></manifest>
  <spine><itemref idref="c1"/></spine>
</package>`

	opf, err := ParseOPF([]byte(opfContent), "")
	if err != nil {
		t.Fatalf("ParseOPF failed: %v", err)
	}

	if got := opf.Manifest["c1"].Href; got != "c1.xhtml" {
		t.Errorf("Href = %q, want %q", got, "c1.xhtml")
	}
}

func TestParseOPF_InvalidXML(t *testing.T) {
	_, err := ParseOPF([]byte(`<package><manifest`), "")
	if err == nil {
		t.Fatal("ParseOPF succeeded for invalid XML, want error")
	}
}

func TestParseOPF_ManifestItemMissingID(t *testing.T) {
	opfContent := `<package xmlns="http://www.idpf.org/2007/opf">
  <manifest><item href="c1.xhtml" media-type="application/xhtml+xml"/></manifest>
  <spine><itemref idref="c1"/></spine>
</package>`

	_, err := ParseOPF([]byte(opfContent), "")
	if err == nil || !strings.Contains(err.Error(), "mandatory attribute") {
		t.Fatalf("ParseOPF error = %v, want mandatory attribute error", err)
	}
}

func TestParseOPF_ManifestItemMissingHref(t *testing.T) {
	opfContent := `<package xmlns="http://www.idpf.org/2007/opf">
  <manifest><item id="c1" media-type="application/xhtml+xml"/></manifest>
  <spine><itemref idref="c1"/></spine>
</package>`

	_, err := ParseOPF([]byte(opfContent), "")
	if err == nil || !strings.Contains(err.Error(), "mandatory attribute") {
		t.Fatalf("ParseOPF error = %v, want mandatory attribute error", err)
	}
}

func TestParseOPF_ItemRefMissingIDRef(t *testing.T) {
	opfContent := `<package xmlns="http://www.idpf.org/2007/opf">
  <manifest><item id="c1" href="c1.xhtml" media-type="application/xhtml+xml"/></manifest>
  <spine><itemref/></spine>
</package>`

	_, err := ParseOPF([]byte(opfContent), "")
	if err == nil || !strings.Contains(err.Error(), "idref") {
		t.Fatalf("ParseOPF error = %v, want idref error", err)
	}
}

func TestTitle_Placeholder(t *testing.T) {
	opf := &OPF{}
	if got := opf.Title(); got != "Untitled" {
		t.Errorf("Title() = %q, want %q", got, "Untitled")
	}

	opf.Metadata.Title = "A Book"
	if got := opf.Title(); got != "A Book" {
		t.Errorf("Title() = %q, want %q", got, "A Book")
	}
}

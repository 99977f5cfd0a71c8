package extract

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"epubwords/internal/epub"
)

// Options holds options for an extraction run.
type Options struct {
	InputPath  string
	OutputPath string // empty: derived from InputPath and Pages
	Pages      string // raw range expression; empty means whole book
	Words      WordOptions
	Logger     *slog.Logger
}

// Pipeline orchestrates spine-ordered word extraction from an EPUB.
type Pipeline struct {
	opts   Options
	logger *slog.Logger
}

// Result summarizes a completed extraction run.
type Result struct {
	Title      string
	Files      int // content files processed
	Warnings   int // files skipped due to read/parse failures
	Words      int
	OutputPath string
}

// NewPipeline creates a new extraction pipeline.
func NewPipeline(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{opts: opts, logger: logger}
}

// Run executes the extraction pipeline: open the archive, recover the
// spine, resolve the page range, extract the selected documents' text
// and write the sorted unique word list. The output file is written
// only after extraction has succeeded, so a fatal error never leaves a
// partial word list behind.
func (p *Pipeline) Run() (*Result, error) {
	pages, err := ParsePageRange(p.opts.Pages)
	if err != nil {
		return nil, err
	}

	reader, opf, err := p.openBook()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	entries, err := p.spineEntries(opf)
	if err != nil {
		return nil, err
	}
	p.logger.Info("book opened", "title", opf.Title(), "files", len(entries))

	lo, hi, err := pages.Resolve(len(entries))
	if err != nil {
		return nil, err
	}
	selected := entries[lo:hi]
	p.logger.Info("extracting files", "from", lo+1, "to", hi, "count", len(selected))

	text, warnings := p.extractText(reader, selected, lo, len(entries))
	words := ExtractWords(text, p.opts.Words)

	outputPath := p.opts.OutputPath
	if outputPath == "" {
		outputPath = defaultOutputPath(p.opts.InputPath, p.opts.Pages)
	}
	if err := writeWords(outputPath, words); err != nil {
		return nil, err
	}

	return &Result{
		Title:      opf.Title(),
		Files:      len(selected) - warnings,
		Warnings:   warnings,
		Words:      len(words),
		OutputPath: outputPath,
	}, nil
}

// ListFiles prints the ordered spine file list without extracting.
func (p *Pipeline) ListFiles(w io.Writer) error {
	reader, opf, err := p.openBook()
	if err != nil {
		return err
	}
	defer reader.Close()

	entries, err := p.spineEntries(opf)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %d content files\n", opf.Title(), len(entries))
	for i, entry := range entries {
		fmt.Fprintf(w, "  %3d. %s\n", i+1, filepath.Base(entry.Path))
	}
	return nil
}

// openBook opens the EPUB archive and parses its package document.
func (p *Pipeline) openBook() (*epub.Reader, *epub.OPF, error) {
	reader, err := epub.Open(p.opts.InputPath)
	if err != nil {
		return nil, nil, err
	}

	opfData, err := reader.ReadFile(reader.OPFPath())
	if err != nil {
		reader.Close()
		return nil, nil, fmt.Errorf("failed to read OPF: %w", err)
	}

	opfDir := filepath.Dir(reader.OPFPath())
	if opfDir == "." {
		opfDir = ""
	}
	opf, err := epub.ParseOPF(opfData, opfDir)
	if err != nil {
		reader.Close()
		return nil, nil, fmt.Errorf("failed to parse OPF: %w", err)
	}

	return reader, opf, nil
}

// spineEntries resolves the reading order, logging spine items the
// manifest does not know about.
func (p *Pipeline) spineEntries(opf *epub.OPF) ([]epub.SpineEntry, error) {
	entries, skipped, err := opf.ContentDocuments()
	for _, idref := range skipped {
		p.logger.Warn("spine item not found in manifest, skipping", "idref", idref)
	}
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// extractText reads and extracts the selected documents strictly in
// spine order. A read or parse failure on one file is non-fatal: it is
// logged, counted and the remaining files are still processed.
func (p *Pipeline) extractText(reader *epub.Reader, selected []epub.SpineEntry, offset, total int) (string, int) {
	var parts []string
	warnings := 0

	for i, entry := range selected {
		p.logger.Info("processing file",
			"index", offset+i+1, "total", total, "file", filepath.Base(entry.Path))

		data, err := reader.ReadFile(entry.Path)
		if err != nil {
			p.logger.Warn("failed to read content file, skipping", "file", entry.Path, "error", err)
			warnings++
			continue
		}

		text, err := epub.ExtractText(data)
		if err != nil {
			p.logger.Warn("failed to parse content file, skipping", "file", entry.Path, "error", err)
			warnings++
			continue
		}

		parts = append(parts, text)
	}

	return strings.Join(parts, "\n"), warnings
}

// defaultOutputPath derives the word-list filename from the input
// filename and range, e.g. book.epub with pages "5-10" becomes
// book_words_p5_10.txt.
func defaultOutputPath(inputPath, pages string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	if pages == "" {
		return stem + "_words.txt"
	}
	return fmt.Sprintf("%s_words_p%s.txt", stem, strings.ReplaceAll(pages, "-", "_"))
}

// writeWords writes one word per line, each line newline-terminated.
// An empty word list still produces a valid empty file.
func writeWords(path string, words []string) error {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}

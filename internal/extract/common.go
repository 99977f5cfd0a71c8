package extract

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// CommonWords reads two word-list files (one word per line, blank
// lines ignored) and writes the words present in both to outPath,
// deduplicated, preserving the first file's order. Returns the number
// of words written.
func CommonWords(firstPath, secondPath, outPath string) (int, error) {
	first, err := readWordList(firstPath)
	if err != nil {
		return 0, err
	}
	second, err := readWordList(secondPath)
	if err != nil {
		return 0, err
	}

	inSecond := make(map[string]struct{}, len(second))
	for _, w := range second {
		inSecond[w] = struct{}{}
	}

	var common []string
	seen := make(map[string]struct{})
	for _, w := range first {
		if _, ok := inSecond[w]; !ok {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		common = append(common, w)
	}

	if err := writeWords(outPath, common); err != nil {
		return 0, err
	}
	return len(common), nil
}

// readWordList reads a one-word-per-line file, skipping blank lines.
func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return words, nil
}

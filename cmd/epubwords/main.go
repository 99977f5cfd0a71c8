package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"epubwords/internal/extract"
)

const defaultMinLength = 1

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "epubwords <book.epub>",
		Short: "Extract unique English words from an EPUB's reading order",
		Long: `epubwords extracts the unique English words from a range of an EPUB's
content files, selected by position in the book's spine (its internal
reading order), and writes them one per line to a text file.

Range expressions:
  5      only the 5th content file
  5-10   files 5 through 10
  5-     from the 5th file to the end
  -10    from the start through the 10th file`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := readCLIOptions(cmd, args)
			if err != nil {
				return err
			}
			return runExtract(cmd, opts)
		},
	}

	cmd.Flags().StringP("pages", "p", "", "Range of content files to extract (e.g. 5-10, 5-, -10, 5; default: whole book)")
	cmd.Flags().StringP("output", "o", "", "Output word-list file path (default: derived from input name and range)")
	cmd.Flags().Bool("list-files", false, "List the book's content files in reading order and exit")
	cmd.Flags().Int("min-length", defaultMinLength, "Drop words shorter than this many letters")
	cmd.Flags().Bool("fold-case", false, "Lowercase words before deduplication")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn or error")
	cmd.Flags().String("log-format", "text", "Log format: text or json")
	cmd.Flags().BoolP("verbose", "v", false, "Shorthand for --log-level debug")

	cmd.AddCommand(newCommonCmd())

	return cmd
}

// cliOptions are the fully validated options for one invocation.
type cliOptions struct {
	extract.Options
	ListFiles bool
}

// readCLIOptions reads and validates flags into pipeline options.
func readCLIOptions(cmd *cobra.Command, args []string) (cliOptions, error) {
	var opts cliOptions
	opts.InputPath = args[0]
	opts.OutputPath, _ = cmd.Flags().GetString("output")
	opts.Pages, _ = cmd.Flags().GetString("pages")
	opts.ListFiles, _ = cmd.Flags().GetBool("list-files")
	opts.Words.FoldCase, _ = cmd.Flags().GetBool("fold-case")

	minLength, _ := cmd.Flags().GetInt("min-length")
	if minLength < 1 {
		return cliOptions{}, fmt.Errorf("--min-length must be at least 1, got %d", minLength)
	}
	opts.Words.MinLength = minLength

	level, _ := cmd.Flags().GetString("log-level")
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
	default:
		return cliOptions{}, fmt.Errorf("--log-level must be one of debug, info, warn, error; got %q", level)
	}

	format, _ := cmd.Flags().GetString("log-format")
	switch strings.ToLower(format) {
	case "text", "json":
	default:
		return cliOptions{}, fmt.Errorf("--log-format must be text or json, got %q", format)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}

	opts.Logger = buildLogger(cmd.ErrOrStderr(), level, format)
	return opts, nil
}

// buildLogger constructs the slog logger used across the run.
func buildLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func runExtract(cmd *cobra.Command, opts cliOptions) error {
	p := extract.NewPipeline(opts.Options)

	if opts.ListFiles {
		return p.ListFiles(cmd.OutOrStdout())
	}

	result, err := p.Run()
	if err != nil {
		return err
	}

	opts.Logger.Info("done",
		"title", result.Title,
		"files", result.Files,
		"warnings", result.Warnings,
		"words", result.Words,
		"output", result.OutputPath)
	return nil
}

func newCommonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "common <first.txt> <second.txt>",
		Short: "Write the words two word-list files have in common",
		Long: `common reads two word-list files (one word per line) and writes the
words present in both, in the first file's order, to the output file.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath, _ := cmd.Flags().GetString("output")
			n, err := extract.CommonWords(args[0], args[1], outputPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d common words written to %s\n", n, outputPath)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "common_words.txt", "Output file path")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

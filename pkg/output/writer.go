// Package output provides output writing functionality
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/loglnx/ProxyIP/pkg/core"
)

// Writer handles output to console and file
type Writer struct {
	file      *os.File
	formatter *Formatter
	quiet     bool
}

// NewWriter creates a new output writer
func NewWriter(outputFile string, formatter *Formatter, quiet bool) (*Writer, error) {
	w := &Writer{
		formatter: formatter,
		quiet:     quiet,
	}

	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		w.file = file

		if formatter.format == core.FormatCSV {
			fmt.Fprint(file, formatter.FormatCSVHeader())
		}
	}

	return w, nil
}

// WriteResult writes a single probe result
func (w *Writer) WriteResult(result core.ProbeResult) {
	formatted := w.formatter.FormatResult(result)

	// Skip empty formatted results (e.g., unmatched when showAll is false)
	if formatted == "" {
		return
	}

	if !w.quiet {
		fmt.Println(formatted)
	}

	if w.file != nil && w.formatter.format != core.FormatJSON {
		fmt.Fprintln(w.file, stripColors(formatted))
	}
}

// WriteSummary writes the final summary to the console
func (w *Writer) WriteSummary(summary core.ScanSummary) {
	if w.quiet {
		return
	}

	fmt.Print(w.formatter.FormatSummary(summary))
}

// WriteMatched writes the matched-domain list as a JSON array.
// This is the primary output artifact of a scan run.
func (w *Writer) WriteMatched(domains []string) error {
	data, err := json.MarshalIndent(domains, "", "  ")
	if err != nil {
		return err
	}

	if w.file != nil {
		_, err = w.file.Write(data)
		return err
	}

	fmt.Println(string(data))
	return nil
}

// WriteCSV writes all probe results as CSV
func (w *Writer) WriteCSV(result *core.ScanResult) error {
	if w.file == nil {
		return fmt.Errorf("no output file specified for CSV")
	}

	writer := csv.NewWriter(w.file)
	defer writer.Flush()

	return w.formatter.WriteCSVResults(result.Results, writer)
}

// Close closes the output file
func (w *Writer) Close() error {
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

// stripColors removes ANSI color codes from a string
func stripColors(s string) string {
	codes := []string{
		"\033[31m", "\033[32m", "\033[33m", "\033[34m",
		"\033[35m", "\033[36m", "\033[1m", "\033[0m",
	}

	for _, code := range codes {
		s = strings.ReplaceAll(s, code, "")
	}
	return s
}

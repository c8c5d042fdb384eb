package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
)

// Header is the single column header of every output file.
const Header = "segment content"

// Supported output formats.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// illegalChars matches control characters that spreadsheet consumers reject.
// Tab, newline and carriage return are kept.
var illegalChars = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")

// Sanitize strips illegal control characters from a text block.
func Sanitize(s string) string {
	return illegalChars.ReplaceAllString(s, "")
}

// Write serializes the text blocks to <stem>.csv or <stem>.xlsx depending on
// format, and returns the path written.
func Write(format, stem string, blocks []string) (string, error) {
	switch format {
	case FormatCSV:
		path := stem + ".csv"
		return path, WriteCSV(path, blocks)
	case FormatExcel:
		path := stem + ".xlsx"
		return path, WriteExcel(path, blocks)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// WriteCSV writes the blocks as single-column UTF-8 CSV rows under the
// standard header.
func WriteCSV(path string, blocks []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{Header}); err != nil {
		return err
	}
	for _, block := range blocks {
		if err := w.Write([]string{Sanitize(block)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

package output

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ConvertDir converts every .xlsx file in dir to a CSV file of the same base
// name under dir/csv. A missing dir is reported and skipped; a failure on
// one file is reported and the remaining files are still attempted.
func ConvertDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		slog.Warn("directory does not exist", "dir", dir)
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	csvDir := filepath.Join(dir, "csv")
	if err := os.MkdirAll(csvDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", csvDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
			continue
		}
		src := filepath.Join(dir, entry.Name())
		dst := filepath.Join(csvDir, strings.TrimSuffix(entry.Name(), ".xlsx")+".csv")
		if err := convertFile(src, dst); err != nil {
			slog.Warn("conversion failed", "file", src, "error", err)
			continue
		}
		slog.Info("converted", "from", src, "to", dst)
	}
	return nil
}

// convertFile copies all rows of the workbook's first sheet into a CSV file.
func convertFile(src, dst string) error {
	wb, err := excelize.OpenFile(src)
	if err != nil {
		return err
	}
	defer wb.Close()

	rows, err := wb.GetRows(wb.GetSheetName(0))
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	for _, row := range rows {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

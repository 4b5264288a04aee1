package storage

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"

	"stakedrop/internal/model"
)

var reportHeader = []string{"address", "amount"}

// CSVStorage writes the drop report as a two-column CSV file.
type CSVStorage struct {
	path string
}

func NewCSVStorage(path string) *CSVStorage {
	return &CSVStorage{path: path}
}

// PutAllocations writes the header and rows to a temp file and renames it into place,
// so a failed run never leaves a truncated report at the destination.
func (s *CSVStorage) PutAllocations(rows []model.Allocation) (err error) {
	if s.path == "" {
		return &model.IOError{Op: "create report", Path: s.path, Err: errors.New("report path is empty")}
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &model.IOError{Op: "create report dir", Path: dir, Err: err}
		}
	}

	tmpPath := s.path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return &model.IOError{Op: "create report", Path: tmpPath, Err: err}
	}
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(reportHeader); err != nil {
		return &model.IOError{Op: "write report", Path: tmpPath, Err: err}
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.Address, row.Amount.Dec()}); err != nil {
			return &model.IOError{Op: "write report", Path: tmpPath, Err: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return &model.IOError{Op: "flush report", Path: tmpPath, Err: err}
	}
	if err := file.Sync(); err != nil {
		return &model.IOError{Op: "sync report", Path: tmpPath, Err: err}
	}
	if err := file.Close(); err != nil {
		return &model.IOError{Op: "close report", Path: tmpPath, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return &model.IOError{Op: "rename report", Path: s.path, Err: err}
	}

	return nil
}

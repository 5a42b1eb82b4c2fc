// Package store reads and writes the comma-separated data files and the
// checkout journal.
package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// File is one flat data file: a '#' header comment followed by one record per line.
type File struct {
	Path   string
	Header string
}

func NewFile(path, header string) *File {
	return &File{Path: path, Header: header}
}

// Exists reports whether the file is present on disk.
func (f *File) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

// ReadAll returns every record in the file. Blank lines and '#' comments are
// skipped. When parsing fails part way, the records read so far are returned
// together with the error.
func (f *File) ReadAll() ([][]string, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("read %s: %w", f.Path, err)
		}
		records = append(records, rec)
	}
}

// WriteAll replaces the file contents with the header and the given records.
// The new contents are written to a temporary file and renamed over the old
// one, so a reader never sees a truncated file.
func (f *File) WriteAll(records [][]string) error {
	var buf bytes.Buffer
	if f.Header != "" {
		buf.WriteString("# " + f.Header + "\n")
	}

	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("encode %s: %w", f.Path, err)
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := renameio.WriteFile(f.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}

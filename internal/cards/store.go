package cards

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFilename is the deck file used when no path is configured.
const DefaultFilename = "flashcards.csv"

// Store reads and appends cards in a two-column CSV file. It keeps no file
// handle open between calls.
type Store struct {
	path string
}

// NewStore returns a Store backed by the CSV file at path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFilename
	}
	return &Store{path: path}
}

// Path returns the deck file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the deck file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// BootstrapIfAbsent writes the header and the sample deck when the file does
// not exist yet. It reports whether the file was created.
func (s *Store) BootstrapIfAbsent() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, &StorageError{Op: "bootstrap", Path: s.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return false, &StorageError{Op: "bootstrap", Path: s.path, Err: err}
	}

	rows := [][]string{Header}
	for _, c := range DefaultCards {
		rows = append(rows, []string{c.Question, c.Answer})
	}
	data, err := encodeRows(rows)
	if err != nil {
		return false, &StorageError{Op: "bootstrap", Path: s.path, Err: err}
	}

	// O_EXCL so a file created concurrently is never clobbered.
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return false, &StorageError{Op: "bootstrap", Path: s.path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, &StorageError{Op: "bootstrap", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return false, &StorageError{Op: "bootstrap", Path: s.path, Err: err}
	}
	return true, nil
}

// Load reads every usable row from the deck. Rows with an empty question or
// answer are skipped, and a stray quote inside an unquoted field is kept as
// text.
func (s *Store) Load() ([]Card, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	qCol, aCol := 0, 1
	first := true
	var out []Card
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &StorageError{Op: "load", Path: s.path, Err: err}
		}

		if first {
			first = false
			if q, a, ok := headerColumns(rec); ok {
				qCol, aCol = q, a
				continue
			}
		}

		c := Card{
			Question: strings.TrimSpace(field(rec, qCol)),
			Answer:   strings.TrimSpace(field(rec, aCol)),
		}
		if !c.Valid() {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Append adds one card to the end of the deck. Both sides are trimmed and
// must be non-empty.
func (s *Store) Append(question, answer string) error {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" {
		return &ValidationError{Field: "question"}
	}
	if answer == "" {
		return &ValidationError{Field: "answer"}
	}

	row, err := encodeRows([][]string{{question, answer}})
	if err != nil {
		return &StorageError{Op: "append", Path: s.path, Err: err}
	}

	needsNewline, err := s.missingTrailingNewline()
	if err != nil {
		return &StorageError{Op: "append", Path: s.path, Err: err}
	}
	if needsNewline {
		row = append([]byte("\n"), row...)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return &StorageError{Op: "append", Path: s.path, Err: err}
	}
	// Single write so readers never observe half a row.
	if _, err := f.Write(row); err != nil {
		f.Close()
		return &StorageError{Op: "append", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StorageError{Op: "append", Path: s.path, Err: err}
	}
	return nil
}

// missingTrailingNewline reports whether the file is non-empty and does not
// end in a newline, which would glue an appended row onto the last one.
func (s *Store) missingTrailingNewline() (bool, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, fmt.Errorf("read last byte: %w", err)
	}
	return last[0] != '\n', nil
}

// headerColumns locates the Question and Answer columns in a header row.
func headerColumns(rec []string) (q, a int, ok bool) {
	q, a = -1, -1
	for i, name := range rec {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "question":
			q = i
		case "answer":
			a = i
		}
	}
	if q < 0 || a < 0 {
		return 0, 1, false
	}
	return q, a, true
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func encodeRows(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

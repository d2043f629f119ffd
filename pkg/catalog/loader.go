package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Decode reads a JSON array of model records and validates their
// identity fields. Optional fields may be absent; a record missing its
// id or model name is a data-quality error surfaced to the caller.
func Decode(r io.Reader) ([]ModelRecord, error) {
	var records []ModelRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog JSON: %w", err)
	}

	for i, rec := range records {
		if err := validateRecord(rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return records, nil
}

// LoadFile loads one catalog JSON file.
func LoadFile(path string) ([]ModelRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return records, nil
}

// LoadDir loads every *.json file in a directory, in lexical filename
// order so the combined catalog order is deterministic.
func LoadDir(dir string) ([]ModelRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var records []ModelRecord
	for _, name := range names {
		batch, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}

	return records, nil
}

// LoadPath loads either a single JSON file or a directory of them.
func LoadPath(path string) ([]ModelRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog path: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// LoadFS loads every *.json file matching pattern from an fs.FS. Used
// for the embedded default catalog.
func LoadFS(fsys fs.FS, pattern string) ([]ModelRecord, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(names)

	var records []ModelRecord
	for _, name := range names {
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open embedded %s: %w", name, err)
		}
		batch, err := Decode(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("load embedded %s: %w", name, err)
		}
		records = append(records, batch...)
	}

	return records, nil
}

func validateRecord(r ModelRecord) error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if r.ModelName == "" {
		return fmt.Errorf("%w: missing model_name (id=%s)", ErrInvalidRecord, r.ID)
	}
	return nil
}

package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Source says where a loaded document came from.
type Source int

const (
	// SourceFile means the document was read from disk.
	SourceFile Source = iota
	// SourceDefaults means the store fell back to a fresh default
	// document; Reason in the LoadResult says why.
	SourceDefaults
)

// LoadResult describes the outcome of a Load. Corruption is always
// recoverable by falling back to defaults, so Load never fails; callers
// that want to log can inspect the result.
type LoadResult struct {
	Source Source
	Reason string // set when Source == SourceDefaults
}

// UsedDefaults reports whether the load fell back to defaults.
func (r LoadResult) UsedDefaults() bool {
	return r.Source == SourceDefaults
}

// Store reads and writes the save document at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given file path, expanding a leading ~
// to the home directory.
func NewStore(path string) *Store {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &Store{path: path}
}

// Path returns the resolved save file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the save document. A missing file, unreadable content, JSON
// parse failure or missing version tag all fall back to the default
// document; loaded documents get missing fields backfilled from defaults.
func (s *Store) Load() (Document, LoadResult) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultDocument(), LoadResult{Source: SourceDefaults, Reason: "no save file"}
		}
		return DefaultDocument(), LoadResult{Source: SourceDefaults, Reason: "unreadable save file: " + err.Error()}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return DefaultDocument(), LoadResult{Source: SourceDefaults, Reason: "corrupt save file: " + err.Error()}
	}
	if doc.Version == "" {
		return DefaultDocument(), LoadResult{Source: SourceDefaults, Reason: "save file missing version tag"}
	}

	Normalize(&doc)
	return doc, LoadResult{Source: SourceFile}
}

// Save writes the document atomically (write temp, then rename) so a
// crash mid-write can never leave a half-written file observable as
// valid. Returns false on any I/O failure instead of raising.
func (s *Store) Save(doc Document) bool {
	doc.LastSaveTime = time.Now()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return false
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return false
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return false
	}
	return true
}

// Delete removes the save file. An already-absent file counts as success.
func (s *Store) Delete() bool {
	err := os.Remove(s.path)
	return err == nil || os.IsNotExist(err)
}

package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jeanhaley32/labctl/internal/constants"
)

// Store maps slugs to files in a workspaces directory. It performs no
// locking; concurrent writers to the same slug race and the last one wins.
type Store struct {
	dir string
	ext string
}

// Entry describes one stored workspace file.
type Entry struct {
	Slug    string    `json:"slug"`
	ID      string    `json:"id,omitempty"`
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modified"`
}

// NewStore returns a store for dir whose files end in ext.
func NewStore(dir, ext string) *Store {
	return &Store{dir: dir, ext: ext}
}

// Dir returns the workspaces directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for slug.
func (s *Store) Path(slug string) string {
	return filepath.Join(s.dir, slug+s.ext)
}

// Exists reports whether a file for slug exists.
func (s *Store) Exists(slug string) bool {
	info, err := os.Stat(s.Path(slug))
	return err == nil && !info.IsDir()
}

// Read returns the stored bytes for slug, or ErrNotFound.
func (s *Store) Read(slug string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(slug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("failed to read workspace %s: %w", slug, err)
	}
	return data, nil
}

// EnsureDir creates the workspaces directory and its parents if missing.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, constants.DirPermissions)
}

// Write stores data under slug, replacing any existing file, and returns the
// path written. The file is written to a temporary sibling, synced and then
// renamed into place so readers never observe a partial document.
func (s *Store) Write(slug string, data []byte) (string, error) {
	target := s.Path(slug)
	if err := s.EnsureDir(); err != nil {
		return "", &StoreWriteError{Path: target, Err: err}
	}

	tmp, err := os.CreateTemp(s.dir, "."+slug+"-*.tmp")
	if err != nil {
		return "", &StoreWriteError{Path: target, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", &StoreWriteError{Path: target, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", &StoreWriteError{Path: target, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", &StoreWriteError{Path: target, Err: err}
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		os.Remove(tmpPath)
		return "", &StoreWriteError{Path: target, Err: err}
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return "", &StoreWriteError{Path: target, Err: err}
	}

	return target, nil
}

// List returns the stored workspaces sorted by slug. A missing directory
// yields an empty list. ID is filled in when the file parses.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read workspaces directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, s.ext) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue // Removed between ReadDir and Info
		}
		slug := strings.TrimSuffix(name, s.ext)
		entry := Entry{
			Slug:    slug,
			Path:    filepath.Join(s.dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if data, err := os.ReadFile(entry.Path); err == nil {
			entry.ID = documentID(data)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Slug < entries[j].Slug })
	return entries, nil
}

// documentID extracts metadata.id without validating the rest.
func documentID(data []byte) string {
	var doc struct {
		Metadata struct {
			ID string `json:"id"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return ""
	}
	return doc.Metadata.ID
}

package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jeanhaley32/labctl/internal/logging"
	"github.com/jeanhaley32/labctl/internal/slug"
	"github.com/jeanhaley32/labctl/internal/urlpath"
)

// URLs are the host application values that scope workspace identities.
type URLs struct {
	// BaseURL is the path the application is mounted under.
	BaseURL string
	// PageURL is the id of the default workspace.
	PageURL string
	// WorkspacesURL prefixes the ids of named workspaces.
	WorkspacesURL string
}

// Service implements workspace export, import and listing on a Store.
type Service struct {
	urls  URLs
	store *Store
}

// NewService creates a service over store.
func NewService(urls URLs, store *Store) *Service {
	return &Service{urls: urls, store: store}
}

// Store returns the underlying store.
func (s *Service) Store() *Store {
	return s.store
}

// TargetID resolves an export argument to a logical workspace id. An empty
// name selects the default workspace.
func (s *Service) TargetID(name string) string {
	if name == "" {
		return s.urls.PageURL
	}
	return urlpath.Join(s.urls.WorkspacesURL, name)
}

// Export returns the stored document for the workspace named by args, which
// holds at most one name. A workspace that is missing, unreadable or not
// valid JSON is exported as an empty document carrying the resolved id.
func (s *Service) Export(ctx context.Context, args []string) ([]byte, error) {
	if len(args) > 1 {
		return nil, &UsageError{Message: "too many arguments were provided for workspace export"}
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	}
	id := s.TargetID(name)
	key := slug.Derive(id, s.urls.BaseURL)

	logger := logging.FromContext(ctx).With("id", id, "slug", key)

	data, err := s.store.Read(key)
	switch {
	case err == nil && json.Valid(data):
		logger.DebugContext(ctx, "exporting stored workspace", "path", s.store.Path(key))
		return data, nil
	case err == nil:
		logger.WarnContext(ctx, "stored workspace is not valid JSON, exporting empty workspace", "path", s.store.Path(key))
	case errors.Is(err, ErrNotFound):
		logger.DebugContext(ctx, "no stored workspace, exporting empty workspace")
	default:
		logger.WarnContext(ctx, "stored workspace is unreadable, exporting empty workspace", "err", err)
	}

	return Empty(id)
}

// Empty returns the document exported for a workspace with no stored state.
func Empty(id string) ([]byte, error) {
	return json.Marshal(Document{
		Data:     map[string]any{},
		Metadata: Metadata{ID: id},
	})
}

// Import validates the single file named by args and stores it under the
// slug of its metadata.id, replacing any previous version. It returns the
// absolute path written. Nothing is written unless validation succeeds.
func (s *Service) Import(ctx context.Context, args []string) (string, error) {
	if len(args) != 1 {
		return "", &UsageError{Message: "one argument is required for workspace import"}
	}

	fileName := args[0]
	filePath, err := filepath.Abs(fileName)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", fileName, err)
	}
	logger := logging.FromContext(ctx).With("file", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &FileNotFoundError{Path: fileName}
		}
		return "", fmt.Errorf("failed to read %s: %w", fileName, err)
	}

	ws, err := Validate(content, s.urls.PageURL, s.urls.WorkspacesURL)
	if err != nil {
		logger.DebugContext(ctx, "workspace rejected", "err", err)
		return "", fmt.Errorf("%s is not a valid workspace: %w", fileName, err)
	}

	if err := s.store.EnsureDir(); err != nil {
		return "", fmt.Errorf("workspaces directory could not be created: %w", err)
	}

	key := slug.Derive(ws.ID, s.urls.BaseURL)
	data, err := ws.Compact()
	if err != nil {
		// Validate already parsed the document.
		return "", fmt.Errorf("failed to serialize workspace: %w", err)
	}

	path, err := s.store.Write(key, data)
	if err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	logger.InfoContext(ctx, "workspace imported", "id", ws.ID, "slug", key, "path", absPath)
	return absPath, nil
}

// List returns the stored workspaces sorted by slug.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.store.List()
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).DebugContext(ctx, "listed workspaces", "dir", s.store.Dir(), "count", len(entries))
	return entries, nil
}

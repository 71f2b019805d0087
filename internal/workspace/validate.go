package workspace

import (
	"bytes"
	"encoding/json"

	"github.com/jeanhaley32/labctl/internal/urlpath"
)

// Workspace is a workspace document that passed Validate.
type Workspace struct {
	// ID is metadata.id.
	ID string

	// Raw is the document exactly as supplied.
	Raw json.RawMessage
}

// Compact returns the document as compact JSON with key order preserved.
func (w *Workspace) Compact() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, w.Raw); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks document against the workspace rules, in order, and
// returns the first violation as a *ValidationError:
//
//  1. the document is a JSON object
//  2. it has a "data" key
//  3. it has a "metadata" key
//  4. metadata is an object with an "id" key
//  5. metadata.id equals pageURL or lies under workspacesURL
//
// The document is neither normalized nor modified.
func Validate(document []byte, pageURL, workspacesURL string) (*Workspace, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(document, &top); err != nil {
		return nil, malformed(err)
	}
	if top == nil {
		return nil, malformed(nil)
	}

	if _, ok := top["data"]; !ok {
		return nil, missingField("data")
	}

	rawMetadata, ok := top["metadata"]
	if !ok {
		return nil, missingField("metadata")
	}

	var metadata map[string]json.RawMessage
	if err := json.Unmarshal(rawMetadata, &metadata); err != nil || metadata == nil {
		return nil, missingField("metadata.id")
	}
	rawID, ok := metadata["id"]
	if !ok {
		return nil, missingField("metadata.id")
	}

	mismatch := &ValidationError{
		Kind:          KindIdentityMismatch,
		ID:            string(rawID),
		PageURL:       pageURL,
		WorkspacesURL: workspacesURL,
	}
	var id string
	if err := json.Unmarshal(rawID, &id); err != nil {
		return nil, mismatch
	}
	mismatch.ID = id
	if id != pageURL && !urlpath.HasPathPrefix(id, workspacesURL) {
		return nil, mismatch
	}

	return &Workspace{ID: id, Raw: json.RawMessage(document)}, nil
}

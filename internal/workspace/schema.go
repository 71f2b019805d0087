package workspace

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Document is the stored shape of a workspace. Only the fields checked by
// Validate are modelled; any other keys are carried through untouched.
type Document struct {
	Data     map[string]any `json:"data" jsonschema:"description=Opaque UI state keyed by widget or plugin id"`
	Metadata Metadata       `json:"metadata" jsonschema:"description=Workspace identity and bookkeeping"`
}

// Metadata holds the identity of a workspace.
type Metadata struct {
	ID string `json:"id" jsonschema:"description=Page URL of the default workspace or a path under the workspaces URL"`
}

// Schema returns the JSON Schema of Document, indented for display.
func Schema() ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	s := r.Reflect(&Document{})
	s.Title = "Lab workspace"
	return json.MarshalIndent(s, "", "  ")
}

package workspace

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match them with errors.Is.
var (
	ErrUsage             = errors.New("usage error")
	ErrFileNotFound      = errors.New("file not found")
	ErrMalformedDocument = errors.New("malformed workspace document")
	ErrMissingField      = errors.New("missing field")
	ErrIdentityMismatch  = errors.New("workspace id mismatch")
	ErrNotFound          = errors.New("workspace not found")
	ErrStoreWrite        = errors.New("workspace store write failed")
)

// ErrorKind tags a ValidationError with the rule that failed.
type ErrorKind int

const (
	KindMalformedDocument ErrorKind = iota + 1
	KindMissingField
	KindIdentityMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedDocument:
		return "MalformedDocument"
	case KindMissingField:
		return "MissingField"
	case KindIdentityMismatch:
		return "IdentityMismatch"
	default:
		return "Unknown"
	}
}

// ValidationError reports the first rule a workspace document violates.
type ValidationError struct {
	Kind ErrorKind

	// Field is the dotted path of the missing field (KindMissingField).
	Field string

	// ID, PageURL and WorkspacesURL are set for KindIdentityMismatch.
	ID            string
	PageURL       string
	WorkspacesURL string

	// Err is the underlying parse error (KindMalformedDocument).
	Err error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMalformedDocument:
		if e.Err != nil {
			return fmt.Sprintf("the document is not a valid JSON object: %v", e.Err)
		}
		return "the document is not a valid JSON object"
	case KindMissingField:
		if e.Field == "metadata.id" {
			return "the `id` field is missing in `metadata`"
		}
		return fmt.Sprintf("the `%s` field is missing", e.Field)
	case KindIdentityMismatch:
		return fmt.Sprintf("%s does not match page_url (%s) or start with workspaces_url (%s)", e.ID, e.PageURL, e.WorkspacesURL)
	default:
		return "invalid workspace"
	}
}

// Is maps the kind onto its sentinel.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrMalformedDocument:
		return e.Kind == KindMalformedDocument
	case ErrMissingField:
		return e.Kind == KindMissingField
	case ErrIdentityMismatch:
		return e.Kind == KindIdentityMismatch
	}
	return false
}

func (e *ValidationError) Unwrap() error { return e.Err }

func malformed(err error) *ValidationError {
	return &ValidationError{Kind: KindMalformedDocument, Err: err}
}

func missingField(field string) *ValidationError {
	return &ValidationError{Kind: KindMissingField, Field: field}
}

// UsageError reports a wrong number of command arguments.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// FileNotFoundError is returned when an import source does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

func (e *FileNotFoundError) Is(target error) bool { return target == ErrFileNotFound }

// StoreWriteError wraps an I/O failure while persisting a workspace.
type StoreWriteError struct {
	Path string
	Err  error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("failed to write workspace %s: %v", e.Path, e.Err)
}

func (e *StoreWriteError) Is(target error) bool { return target == ErrStoreWrite }

func (e *StoreWriteError) Unwrap() error { return e.Err }

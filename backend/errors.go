package backend

import "errors"

// Error taxonomy shared by all engines. Implementations wrap these
// sentinels so callers can classify failures with errors.Is without
// caring which engine is active.
var (
	// ErrNotConnected reports an operation attempted before Connect.
	ErrNotConnected = errors.New("backend: not connected")
	// ErrNoDocument reports an operation that needs an open document.
	ErrNoDocument = errors.New("backend: no document is open")
	// ErrNotFound reports a missing source path.
	ErrNotFound = errors.New("backend: file not found")
	// ErrFormat reports an invalid or unsupported container or format.
	ErrFormat = errors.New("backend: invalid or unsupported format")
	// ErrSave reports a failure during the save protocol.
	ErrSave = errors.New("backend: save failed")
	// ErrUnsupported reports a capability the active engine lacks.
	ErrUnsupported = errors.New("backend: capability not supported by this engine")
)

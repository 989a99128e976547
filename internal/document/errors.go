package document

import "errors"

// Error kinds reported at the collaborator boundary. Callers match them with
// errors.Is; the wrapped message carries the detail.
var (
	ErrInputUnreadable    = errors.New("input unreadable")
	ErrMalformedStructure = errors.New("malformed plan structure")
	ErrSerialization      = errors.New("document does not match the QPML format")
)

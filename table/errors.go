package table

import "errors"

// Shared failure modes of table operations. Callers match with errors.Is;
// the wrapped message carries the operation and column involved.
var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrEmptyDomain   = errors.New("empty domain")
)

package capability

import "errors"

// Registry errors. All of them signal a misconfigured provider set rather
// than a transient failure, so none are worth retrying.
var (
	ErrInvalidIdentifier   = errors.New("identifier must not be empty")
	ErrDuplicateIdentifier = errors.New("identifier already registered")
	ErrNotFound            = errors.New("identifier not found")
	ErrAlreadyDefaulted    = errors.New("a default has already been selected")
	ErrNoDefaultSelected   = errors.New("no default selected")
)

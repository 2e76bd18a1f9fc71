package narrative

import "errors"

// Assembly and generation failures. All are raised synchronously at the
// point of violation and represent caller errors, not transient
// conditions; nothing here is retried internally.
var (
	// ErrIncompatibleVariation means the context's compatibility flag
	// for the requested variation is false or absent.
	ErrIncompatibleVariation = errors.New("variation not compatible with context")

	// ErrMissingTemplate means no narrative template exists for a
	// required (context, level) or template type.
	ErrMissingTemplate = errors.New("no narrative template")

	// ErrInvalidParameter means a count or difficulty outside its valid
	// range was supplied.
	ErrInvalidParameter = errors.New("invalid parameter")
)

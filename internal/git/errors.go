package git

import (
	"errors"
	"fmt"
)

// ErrReferenceNotFound is returned when a reference does not resolve.
var ErrReferenceNotFound = errors.New("reference not found")

// NotARepositoryError reports that no repository metadata could be
// discovered at or above Path.
type NotARepositoryError struct {
	Path string
	Err  error
}

func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("not a git repository: %s", e.Path)
}

func (e *NotARepositoryError) Unwrap() error { return e.Err }

// DetachedHeadError reports that HEAD points directly at a commit instead
// of a named branch.
type DetachedHeadError struct {
	Sha string
}

func (e *DetachedHeadError) Error() string {
	if e.Sha == "" {
		return "HEAD is detached; no branch to evaluate"
	}
	return fmt.Sprintf("HEAD is detached at %s; no branch to evaluate", e.Sha)
}

package calculator

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/logging"
)

// ErrRangeUnrepresentable is returned by an enumeration path that cannot
// execute the given range. The Enumerator moves on to the next path.
var ErrRangeUnrepresentable = errors.New("commit range is not representable")

// EnumerationPath turns a CommitRange into commits ordered oldest to newest.
type EnumerationPath interface {
	Name() string
	Enumerate(r CommitRange) ([]git.Commit, error)
}

// RangeLogPath lists commits reachable from UpperBound but not LowerBound.
type RangeLogPath struct {
	store *git.RepositoryStore
}

// NewRangeLogPath creates a RangeLogPath.
func NewRangeLogPath(store *git.RepositoryStore) *RangeLogPath {
	return &RangeLogPath{store: store}
}

func (p *RangeLogPath) Name() string { return "RangeLog" }

func (p *RangeLogPath) Enumerate(r CommitRange) ([]git.Commit, error) {
	if r.Kind == RangeEmpty {
		return nil, nil
	}
	if r.IsUnrepresentable() {
		return nil, ErrRangeUnrepresentable
	}
	commits, err := p.store.GetCommitLog(r.LowerBound, r.UpperBound)
	if err != nil {
		return nil, err
	}
	slices.Reverse(commits)
	return commits, nil
}

// WindowLogPath lists the newest Window commits of HEAD, clamped to the
// history length. It only serves window ranges.
type WindowLogPath struct {
	store *git.RepositoryStore
}

// NewWindowLogPath creates a WindowLogPath.
func NewWindowLogPath(store *git.RepositoryStore) *WindowLogPath {
	return &WindowLogPath{store: store}
}

func (p *WindowLogPath) Name() string { return "WindowLog" }

func (p *WindowLogPath) Enumerate(r CommitRange) ([]git.Commit, error) {
	if r.Kind != RangeWindow {
		return nil, ErrRangeUnrepresentable
	}
	commits, err := p.store.GetRecentCommits(r.UpperBound, r.Window)
	if err != nil {
		return nil, err
	}
	slices.Reverse(commits)
	return commits, nil
}

// DefaultPaths returns the enumeration paths in the order they are tried.
func DefaultPaths(store *git.RepositoryStore) []EnumerationPath {
	return []EnumerationPath{
		NewRangeLogPath(store),
		NewWindowLogPath(store),
	}
}

// Enumerator tries enumeration paths in order until one can execute the range.
type Enumerator struct {
	paths []EnumerationPath
	log   *slog.Logger
}

// NewEnumerator creates an Enumerator over the given paths.
func NewEnumerator(paths []EnumerationPath, log *slog.Logger) *Enumerator {
	return &Enumerator{paths: paths, log: logging.OrDiscard(log)}
}

// Enumerate returns the commits of r, oldest first, and the name of the path
// that produced them.
func (e *Enumerator) Enumerate(r CommitRange) ([]git.Commit, string, error) {
	for _, p := range e.paths {
		commits, err := p.Enumerate(r)
		if errors.Is(err, ErrRangeUnrepresentable) {
			e.log.Debug("enumeration path skipped", "path", p.Name(), "range", r.String())
			continue
		}
		if err != nil {
			return nil, p.Name(), err
		}
		return commits, p.Name(), nil
	}
	return nil, "", ErrRangeUnrepresentable
}

package calculator

import (
	"fmt"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/strategy"
)

// RangeKind says how a CommitRange's lower bound was chosen.
type RangeKind string

const (
	// RangeEmpty: HEAD has no commits.
	RangeEmpty RangeKind = "empty"
	// RangePushPoint: bounded by the push point or its merge base with HEAD.
	RangePushPoint RangeKind = "push-point"
	// RangeWindow: no usable push point; the last N commits.
	RangeWindow RangeKind = "window"
)

// CommitRange is the concrete (LowerBound, UpperBound] query against history.
type CommitRange struct {
	Kind RangeKind

	// LowerBound is the exclusive lower bound. Empty for empty ranges and
	// for window ranges whose HEAD~N does not exist.
	LowerBound string

	// LowerExpr is the textual lower bound, a SHA or HEAD~N.
	LowerExpr string

	// UpperBound is the HEAD SHA.
	UpperBound string

	// Window is N for window ranges.
	Window int

	// Reason describes how the bound was chosen.
	Reason string
}

// String renders the range in git revision-range syntax, or "" when empty
// or unresolved.
func (r CommitRange) String() string {
	if r.Kind == RangeEmpty || r.Kind == "" || r.UpperBound == "" {
		return ""
	}
	return r.LowerExpr + "..HEAD"
}

// IsUnrepresentable reports whether the range has no resolvable lower bound.
func (r CommitRange) IsUnrepresentable() bool {
	return r.Kind == RangeWindow && r.LowerBound == ""
}

// ResolveRange converts a push point (or its absence) into a commit range
// ending at head. head is the zero Commit for an unborn branch.
func ResolveRange(store *git.RepositoryStore, head git.Commit, pp strategy.PushPoint, window int) (CommitRange, error) {
	if head.IsEmpty() {
		return CommitRange{Kind: RangeEmpty, Reason: "HEAD has no commits"}, nil
	}

	if !pp.IsPresent() {
		return windowRange(store, head, window, "no push point located")
	}

	if pp.Sha() == head.Sha {
		return CommitRange{
			Kind:       RangePushPoint,
			LowerBound: head.Sha,
			LowerExpr:  head.Sha,
			UpperBound: head.Sha,
			Reason:     "HEAD is the push point",
		}, nil
	}

	isAncestor, err := store.IsAncestor(pp.Sha(), head.Sha)
	if err != nil {
		return CommitRange{}, err
	}
	if isAncestor {
		return CommitRange{
			Kind:       RangePushPoint,
			LowerBound: pp.Sha(),
			LowerExpr:  pp.Sha(),
			UpperBound: head.Sha,
			Reason:     fmt.Sprintf("push point %s is an ancestor of HEAD", pp.Commit.ShortSha()),
		}, nil
	}

	base, err := store.FindMergeBase(pp.Sha(), head.Sha)
	if err != nil {
		return CommitRange{}, err
	}
	if base != "" {
		return CommitRange{
			Kind:       RangePushPoint,
			LowerBound: base,
			LowerExpr:  base,
			UpperBound: head.Sha,
			Reason: fmt.Sprintf("push point %s is not an ancestor of HEAD; using merge base %s",
				pp.Commit.ShortSha(), shortSha(base)),
		}, nil
	}

	return windowRange(store, head, window,
		fmt.Sprintf("push point %s shares no history with HEAD", pp.Commit.ShortSha()))
}

func windowRange(store *git.RepositoryStore, head git.Commit, window int, why string) (CommitRange, error) {
	r := CommitRange{
		Kind:       RangeWindow,
		LowerExpr:  fmt.Sprintf("HEAD~%d", window),
		UpperBound: head.Sha,
		Window:     window,
	}

	bound, ok, err := store.WindowLowerBound(head.Sha, window)
	if err != nil {
		return CommitRange{}, err
	}
	if ok {
		r.LowerBound = bound
		r.Reason = fmt.Sprintf("%s; last %d commits", why, window)
	} else {
		r.Reason = fmt.Sprintf("%s; HEAD~%d does not exist, whole history is within the window", why, window)
	}
	return r, nil
}

func shortSha(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

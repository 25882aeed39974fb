// Package strategy implements the push-point strategies that look for the
// most recent published commit in reflogs and remote-tracking refs.
package strategy

import (
	"fmt"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/context"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
)

// Confidence grades how directly a push point was observed.
type Confidence string

const (
	// ConfidenceHigh: an explicit push event was recorded.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium: the remote-tracking ref is an ancestor of HEAD.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow: a reflog message merely mentions a push keyword.
	ConfidenceLow Confidence = "low"
	// ConfidenceNone: no evidence of a publish was found.
	ConfidenceNone Confidence = "none"
)

// PushPoint is the best-known marker of the last published commit.
type PushPoint struct {
	// Commit is the published commit. Nil when no strategy found evidence.
	Commit *git.Commit

	// Strategy is the name of the strategy that produced this push point.
	Strategy string

	// Confidence grades the evidence Strategy relied on.
	Confidence Confidence

	// Source is a human-readable description of the evidence.
	Source string
}

// NoPushPoint returns the absent push point.
func NoPushPoint() PushPoint {
	return PushPoint{Confidence: ConfidenceNone}
}

// IsPresent reports whether a published commit was located.
func (p PushPoint) IsPresent() bool {
	return p.Commit != nil
}

// Sha returns the push point SHA, or an empty string when absent.
func (p PushPoint) Sha() string {
	if p.Commit == nil {
		return ""
	}
	return p.Commit.Sha
}

// String returns a human-readable representation of the push point.
func (p PushPoint) String() string {
	if p.Commit == nil {
		return "none"
	}
	return fmt.Sprintf("%s: %s (confidence: %s, source: %s)",
		p.Strategy, p.Commit.ShortSha(), p.Confidence, p.Source)
}

// Explanation records how a strategy reached its verdict.
type Explanation struct {
	// Strategy is the name of the strategy that was evaluated.
	Strategy string

	// Steps records the reasoning chain in order.
	Steps []string
}

// NewExplanation creates a new Explanation for the given strategy name.
func NewExplanation(strategy string) *Explanation {
	return &Explanation{Strategy: strategy}
}

// Add appends a reasoning step. Nil-safe.
func (e *Explanation) Add(step string) {
	if e != nil {
		e.Steps = append(e.Steps, step)
	}
}

// Addf appends a formatted reasoning step. Nil-safe.
func (e *Explanation) Addf(format string, args ...any) {
	if e != nil {
		e.Steps = append(e.Steps, fmt.Sprintf(format, args...))
	}
}

// PushPointStrategy is the interface implemented by all push-point strategies.
type PushPointStrategy interface {
	// Name returns the human-readable name of this strategy.
	Name() string

	// Locate looks for a published commit. A nil PushPoint with a nil error
	// is a miss. Reasoning steps are recorded on exp, which may be nil.
	Locate(ctx *context.RepositoryContext, exp *Explanation) (*PushPoint, error)
}

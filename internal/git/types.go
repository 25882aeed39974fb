// Package git provides the git abstraction layer for push-point detection.
// It defines concrete entity types (Commit, Branch, ReflogEntry), a narrow
// Repository interface over history queries, and higher-level domain queries
// via RepositoryStore.
package git

import (
	"strings"
	"time"
)

const (
	localBranchPrefix          = "refs/heads/"
	remoteTrackingBranchPrefix = "refs/remotes/"
	tagRefPrefix               = "refs/tags/"

	// HeadRef is the name of the symbolic HEAD reference.
	HeadRef = "HEAD"
)

// Commit represents a git commit.
type Commit struct {
	Sha     string
	Parents []string
	When    time.Time
	Message string
}

// ShortSha returns the first 7 characters of the SHA.
func (c Commit) ShortSha() string {
	if len(c.Sha) >= 7 {
		return c.Sha[:7]
	}
	return c.Sha
}

// Subject returns the first line of the commit message.
func (c Commit) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSpace(subject)
}

// IsEmpty returns true if the commit has no SHA (zero value).
func (c Commit) IsEmpty() bool {
	return c.Sha == ""
}

// ReferenceName represents a git reference with canonical and friendly forms.
type ReferenceName struct {
	Canonical string // e.g., "refs/heads/main"
	Friendly  string // e.g., "main"
}

// NewReferenceName creates a ReferenceName from a canonical ref path.
func NewReferenceName(canonical string) ReferenceName {
	friendly := canonical
	for _, prefix := range []string{localBranchPrefix, remoteTrackingBranchPrefix, tagRefPrefix} {
		if strings.HasPrefix(canonical, prefix) {
			friendly = canonical[len(prefix):]
			break
		}
	}
	return ReferenceName{Canonical: canonical, Friendly: friendly}
}

// NewBranchReferenceName creates a ReferenceName for a local branch.
func NewBranchReferenceName(name string) ReferenceName {
	return NewReferenceName(localBranchPrefix + name)
}

// NewRemoteTrackingReferenceName creates a ReferenceName for the
// remote-tracking branch <remote>/<branch>.
func NewRemoteTrackingReferenceName(remote, branch string) ReferenceName {
	return NewReferenceName(remoteTrackingBranchPrefix + remote + "/" + branch)
}

// Branch represents a git branch.
type Branch struct {
	Name           ReferenceName
	Tip            *Commit // nil for an unborn branch
	IsDetachedHead bool
}

// FriendlyName returns the friendly name of the branch.
func (b Branch) FriendlyName() string {
	return b.Name.Friendly
}

// IsUnborn returns true if the branch has no commits yet.
func (b Branch) IsUnborn() bool {
	return b.Tip == nil
}

// ReflogEntry is a single line of a reference's operation history.
type ReflogEntry struct {
	// Ref is the canonical reference the entry belongs to (e.g. "HEAD").
	Ref string

	// OldSha and NewSha are the reference values before and after the update.
	OldSha string
	NewSha string

	// Committer is the identity recorded for the update.
	Committer string

	// When is the time of the update.
	When time.Time

	// Message is the free-text description, e.g. "update by push".
	Message string
}

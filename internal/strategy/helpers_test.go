package strategy

import (
	"errors"
	"time"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/config"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/context"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
)

const (
	shaHead   = "aaaa000000000000000000000000000000000000"
	shaPushed = "bbbb000000000000000000000000000000000000"
	shaOld    = "cccc000000000000000000000000000000000000"
	shaGone   = "dddd000000000000000000000000000000000000"
)

var baseTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestCommit(sha, msg string) git.Commit {
	return git.Commit{Sha: sha, When: baseTime, Message: msg}
}

func newTestContext(branch, remote string, head *git.Commit) *context.RepositoryContext {
	var h git.Commit
	if head != nil {
		h = *head
	}
	return &context.RepositoryContext{
		Branch:        git.Branch{Name: git.NewBranchReferenceName(branch), Tip: head},
		Head:          h,
		Remote:        remote,
		Configuration: config.NewEffectiveConfiguration(config.CreateDefaultConfiguration(), nil, ""),
	}
}

// commitsExcept resolves every SHA except the listed dangling ones.
func commitsExcept(dangling ...string) func(string) (git.Commit, error) {
	return func(sha string) (git.Commit, error) {
		for _, d := range dangling {
			if sha == d {
				return git.Commit{}, errors.New("object not found")
			}
		}
		return newTestCommit(sha, "commit "+sha[:4]), nil
	}
}

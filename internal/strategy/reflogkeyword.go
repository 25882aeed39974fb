package strategy

import (
	"fmt"
	"strings"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/config"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/context"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
)

// ReflogKeywordStrategy is the broadest heuristic: the most recent entry in
// the HEAD, branch or remote-tracking reflog whose message mentions a push
// keyword. Ancestry is not checked.
type ReflogKeywordStrategy struct {
	store *git.RepositoryStore
}

// NewReflogKeywordStrategy creates a new ReflogKeywordStrategy.
func NewReflogKeywordStrategy(store *git.RepositoryStore) *ReflogKeywordStrategy {
	return &ReflogKeywordStrategy{store: store}
}

func (s *ReflogKeywordStrategy) Name() string { return config.StrategyReflogKeyword }

func (s *ReflogKeywordStrategy) Locate(ctx *context.RepositoryContext, exp *Explanation) (*PushPoint, error) {
	keywords := make([]string, 0, len(ctx.Configuration.PushKeywords))
	for _, kw := range ctx.Configuration.PushKeywords {
		keywords = append(keywords, strings.ToLower(kw))
	}
	if len(keywords) == 0 {
		exp.Add("no push keywords configured")
		return nil, nil
	}

	refs := []string{
		git.HeadRef,
		ctx.Branch.Name.Canonical,
		ctx.TrackingRef().Canonical,
	}

	entry, err := s.store.FindLatestReflogEntry(refs, func(e git.ReflogEntry) bool {
		msg := strings.ToLower(e.Message)
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		exp.Addf("no reflog entry mentions %s", strings.Join(keywords, ", "))
		return nil, nil
	}

	commit, ok := s.store.LookupCommit(entry.NewSha)
	if !ok {
		exp.Addf("%s entry %q points at %s, which no longer exists", entry.Ref, entry.Message, shortSha(entry.NewSha))
		return nil, nil
	}

	exp.Addf("%s entry %q -> %s", entry.Ref, entry.Message, commit.ShortSha())
	return &PushPoint{
		Commit:     &commit,
		Strategy:   s.Name(),
		Confidence: ConfidenceLow,
		Source:     fmt.Sprintf("reflog %s: %s", entry.Ref, entry.Message),
	}, nil
}

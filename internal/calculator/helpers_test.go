package calculator

import (
	"testing"
	"time"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/config"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/context"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/strategy"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/testutil"

	"github.com/stretchr/testify/require"
)

const (
	shaHead   = "aaaa000000000000000000000000000000000000"
	shaPushed = "bbbb000000000000000000000000000000000000"
	shaBase   = "cccc000000000000000000000000000000000000"
)

func newTestCommit(sha string) git.Commit {
	return git.Commit{Sha: sha, When: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Message: "commit " + sha[:4]}
}

func pushPointAt(sha string) strategy.PushPoint {
	c := newTestCommit(sha)
	return strategy.PushPoint{Commit: &c, Strategy: "Test", Confidence: strategy.ConfidenceHigh}
}

func mockContext(branch, remote string, head *git.Commit) *context.RepositoryContext {
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

// repoPipeline opens a test repository and resolves its context with the
// default configuration.
func repoPipeline(t *testing.T, tr *testutil.TestRepo, overrides ...*config.Config) (*git.RepositoryStore, *context.RepositoryContext) {
	t.Helper()
	repo, err := git.Open(tr.Path())
	require.NoError(t, err)
	store := git.NewRepositoryStore(repo)

	b := config.NewBuilder()
	for _, o := range overrides {
		b.Add(o)
	}
	cfg, err := b.Build()
	require.NoError(t, err)

	ctx, err := context.NewContext(store, cfg, context.Options{}, nil)
	require.NoError(t, err)
	return store, ctx
}

func calculate(t *testing.T, tr *testutil.TestRepo, overrides ...*config.Config) DeltaResult {
	t.Helper()
	store, ctx := repoPipeline(t, tr, overrides...)
	strategies, err := strategy.StrategiesByName(store, ctx.Configuration.Strategies)
	require.NoError(t, err)

	result, err := NewDeltaCalculator(store, strategies, nil).Calculate(ctx, true)
	require.NoError(t, err)
	require.Equal(t, len(result.Commits), result.Count())
	return result
}

// Package e2e contains end-to-end tests for the pkg/sdk library API.
//
// These tests exercise the public Detect() function through the full
// pipeline, verifying that the library produces correct results against
// real git repos.
package e2e

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/output"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/testutil"
	"github.com/MyCarrier-DevOps/go-pushdelta/pkg/sdk"

	"github.com/stretchr/testify/require"
)

func detectJSON(t *testing.T, path string) []byte {
	t.Helper()
	result, err := sdk.Detect(sdk.Options{Path: path})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, output.WriteJSON(&buf, result.Delta))
	return buf.Bytes()
}

func TestLibrary_Detect_Idempotent(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("A")
	publish(repo)
	repo.AddCommits("work", 3)

	first := detectJSON(t, repo.Path())
	second := detectJSON(t, repo.Path())
	require.Equal(t, string(first), string(second))
}

func TestLibrary_Detect_ReflectsNewCommits(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("A")
	publish(repo)
	repo.AddCommit("B")

	var before output.Report
	require.NoError(t, json.Unmarshal(detectJSON(t, repo.Path()), &before))
	require.Equal(t, 1, before.CommitCount)

	c := repo.AddCommit("C")

	var after output.Report
	require.NoError(t, json.Unmarshal(detectJSON(t, repo.Path()), &after))
	require.Equal(t, 2, after.CommitCount)
	require.True(t, strings.HasSuffix(after.CommitList, c))
}

func TestLibrary_Detect_JSONContract(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommits("c", 2)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(detectJSON(t, repo.Path()), &doc))

	for _, key := range []string{
		"success", "branch", "remote", "commit_range", "commit_count", "commit_list",
		"last_push_sha", "is_first_push", "is_force_push",
		"push_point_strategy", "push_point_confidence", "remote_defaulted",
	} {
		require.Contains(t, doc, key)
	}
	require.Equal(t, true, doc["success"])
	require.Equal(t, "HEAD~10..HEAD", doc["commit_range"])
	require.EqualValues(t, 2, doc["commit_count"])
	require.Equal(t, "", doc["last_push_sha"])
	require.Equal(t, true, doc["is_first_push"])
	require.Equal(t, "none", doc["push_point_confidence"])
	require.Equal(t, true, doc["remote_defaulted"])
}

func TestLibrary_Detect_DetachedHeadRejected(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	sha := repo.AddCommit("A")
	repo.DetachHead(sha)

	_, err := sdk.Detect(sdk.Options{Path: repo.Path()})
	var detached *git.DetachedHeadError
	require.True(t, errors.As(err, &detached))
}

func TestLibrary_Detect_NotARepository(t *testing.T) {
	_, err := sdk.Detect(sdk.Options{Path: t.TempDir()})
	var notRepo *git.NotARepositoryError
	require.True(t, errors.As(err, &notRepo))

	var buf bytes.Buffer
	require.NoError(t, output.WriteError(&buf, err))
	require.Contains(t, buf.String(), `"success": false`)
	require.Contains(t, buf.String(), "not a git repository")
}

func TestLibrary_Detect_Environ(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommit("A")
	publish(repo)
	b := repo.AddCommit("B")

	result, err := sdk.Detect(sdk.Options{Path: repo.Path()})
	require.NoError(t, err)

	env := result.Environ()
	require.Contains(t, env, "COMMIT_LIST="+b)
	require.Contains(t, env, "COMMIT_COUNT=1")
	require.Contains(t, env, "IS_FORCE_PUSH=false")
	require.Contains(t, env, "PUSH_POINT_STRATEGY=ReflogPushEvent")
}

func TestLibrary_Detect_Explain(t *testing.T) {
	repo := testutil.NewTestRepo(t)
	repo.AddCommits("c", 2)

	result, err := sdk.Detect(sdk.Options{Path: repo.Path(), Explain: true})
	require.NoError(t, err)
	require.NotNil(t, result.ExplainResult)
	require.Equal(t, "WindowLog", result.ExplainResult.EnumeratedBy)
	require.Contains(t, result.ExplainResult.FormattedOutput, "Selected: none (first publish)")
}

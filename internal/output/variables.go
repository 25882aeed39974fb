package output

import (
	"strconv"
	"strings"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/calculator"
)

// Output variable names.
const (
	VarBranch              = "BRANCH"
	VarRemote              = "REMOTE"
	VarCommitRange         = "COMMIT_RANGE"
	VarCommitCount         = "COMMIT_COUNT"
	VarCommitList          = "COMMIT_LIST"
	VarLastPushSha         = "LAST_PUSH_SHA"
	VarIsFirstPush         = "IS_FIRST_PUSH"
	VarIsForcePush         = "IS_FORCE_PUSH"
	VarPushPointStrategy   = "PUSH_POINT_STRATEGY"
	VarPushPointConfidence = "PUSH_POINT_CONFIDENCE"
	VarRemoteDefaulted     = "REMOTE_DEFAULTED"
)

// GetVariables flattens a delta result into named string variables.
// COMMIT_LIST is space-joined, oldest first.
func GetVariables(result calculator.DeltaResult) map[string]string {
	vars := map[string]string{
		VarCommitRange:         result.Range.String(),
		VarCommitCount:         strconv.Itoa(result.Count()),
		VarCommitList:          strings.Join(result.CommitShas(), " "),
		VarLastPushSha:         result.PushPoint.Sha(),
		VarIsFirstPush:         strconv.FormatBool(result.IsFirstPublish),
		VarIsForcePush:         strconv.FormatBool(result.IsForcedHistory),
		VarPushPointStrategy:   result.PushPoint.Strategy,
		VarPushPointConfidence: string(result.PushPoint.Confidence),
		VarBranch:              "",
		VarRemote:              "",
		VarRemoteDefaulted:     "false",
	}
	if ctx := result.Context; ctx != nil {
		vars[VarBranch] = ctx.BranchName()
		vars[VarRemote] = ctx.Remote
		vars[VarRemoteDefaulted] = strconv.FormatBool(ctx.RemoteDefaulted)
	}
	return vars
}

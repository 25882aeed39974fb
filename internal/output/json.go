package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/calculator"
)

// Report is the JSON document printed for a successful detection.
// Field order is the output order.
type Report struct {
	Success             bool   `json:"success"`
	Branch              string `json:"branch"`
	Remote              string `json:"remote"`
	CommitRange         string `json:"commit_range"`
	CommitCount         int    `json:"commit_count"`
	CommitList          string `json:"commit_list"`
	LastPushSha         string `json:"last_push_sha"`
	IsFirstPush         bool   `json:"is_first_push"`
	IsForcePush         bool   `json:"is_force_push"`
	PushPointStrategy   string `json:"push_point_strategy"`
	PushPointConfidence string `json:"push_point_confidence"`
	RemoteDefaulted     bool   `json:"remote_defaulted"`
}

// ErrorReport is the JSON document printed when detection fails.
type ErrorReport struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// NewReport builds the JSON report for a delta result.
func NewReport(result calculator.DeltaResult) Report {
	r := Report{
		Success:             true,
		CommitRange:         result.Range.String(),
		CommitCount:         result.Count(),
		CommitList:          strings.Join(result.CommitShas(), " "),
		LastPushSha:         result.PushPoint.Sha(),
		IsFirstPush:         result.IsFirstPublish,
		IsForcePush:         result.IsForcedHistory,
		PushPointStrategy:   result.PushPoint.Strategy,
		PushPointConfidence: string(result.PushPoint.Confidence),
	}
	if ctx := result.Context; ctx != nil {
		r.Branch = ctx.BranchName()
		r.Remote = ctx.Remote
		r.RemoteDefaulted = ctx.RemoteDefaulted
	}
	return r
}

// WriteJSON writes the result report as pretty-printed JSON to the writer.
func WriteJSON(w io.Writer, result calculator.DeltaResult) error {
	return writeIndented(w, NewReport(result))
}

// WriteError writes the failure report for err as JSON to the writer.
func WriteError(w io.Writer, err error) error {
	return writeIndented(w, ErrorReport{Error: err.Error()})
}

func writeIndented(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON output: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// WriteVariable writes a single variable value to the writer.
func WriteVariable(w io.Writer, variables map[string]string, name string) error {
	val, ok := variables[name]
	if !ok {
		return fmt.Errorf("unknown variable %q", name)
	}
	_, err := fmt.Fprintln(w, val)
	return err
}

// WriteAll writes all variables as KEY=value pairs to the writer, sorted by key.
func WriteAll(w io.Writer, variables map[string]string) error {
	for _, line := range Environ(variables) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Environ renders variables as sorted KEY=value pairs.
func Environ(variables map[string]string) []string {
	keys := make([]string, 0, len(variables))
	for k := range variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+variables[k])
	}
	return env
}

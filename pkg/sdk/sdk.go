// Package sdk provides a public Go API for detecting the commits of the
// current branch that have not been published to its remote yet.
//
// Basic usage:
//
//	result, err := sdk.Detect(sdk.Options{
//	    Path: "/path/to/repo",
//	})
//	fmt.Println(result.Variables["COMMIT_COUNT"]) // "2"
//	for _, c := range result.Delta.Commits {
//	    fmt.Println(c.Sha)
//	}
//
// Result.Environ renders the same data as KEY=value pairs for callers that
// hand it to a shell step.
package sdk

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/calculator"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/config"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/logging"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/output"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/strategy"

	configctx "github.com/MyCarrier-DevOps/go-pushdelta/internal/context"
)

// Options configures push-delta detection for a local git repository.
type Options struct {
	// Path to the git repository or any directory inside its work tree.
	// Defaults to "." if empty.
	Path string

	// ConfigPath is the path to a go-pushdelta YAML config file.
	// If empty, auto-detects one in the work tree.
	ConfigPath string

	// WindowSize overrides the configured first-publish window when > 0.
	WindowSize int

	// Remote overrides remote resolution when non-empty.
	Remote string

	// Explain enables explain mode, populating ExplainResult on the returned Result.
	Explain bool

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Result holds the detected delta and its flattened variables.
type Result struct {
	// Delta is the typed result: push point, range and commits oldest first.
	Delta calculator.DeltaResult

	// Variables contains the named output variables: BRANCH, REMOTE,
	// COMMIT_RANGE, COMMIT_COUNT, COMMIT_LIST, LAST_PUSH_SHA, IS_FIRST_PUSH,
	// IS_FORCE_PUSH, PUSH_POINT_STRATEGY, PUSH_POINT_CONFIDENCE and
	// REMOTE_DEFAULTED.
	Variables map[string]string

	// ExplainResult contains the full explain output. Nil when Explain is false.
	ExplainResult *ExplainResult
}

// Environ returns Variables as KEY=value pairs sorted by key.
func (r *Result) Environ() []string {
	return output.Environ(r.Variables)
}

// ExplainResult holds structured explain data for programmatic consumption.
type ExplainResult struct {
	// Attempts lists the strategies that ran, in order.
	Attempts []ExplainAttempt

	// SelectedStrategy names the strategy that located the push point;
	// empty on first publish.
	SelectedStrategy string

	// Confidence is high, medium, low or none.
	Confidence string

	// RangeReason describes how the range's lower bound was chosen.
	RangeReason string

	// EnumeratedBy names the enumeration path that listed the commits.
	EnumeratedBy string

	// FormattedOutput is the human-readable explain text (same as CLI --explain).
	FormattedOutput string
}

// ExplainAttempt describes one push-point strategy run.
type ExplainAttempt struct {
	Strategy string
	Found    bool

	// Error is the message of the error that made the strategy miss, if any.
	Error string

	// Steps records the reasoning chain of the strategy.
	Steps []string
}

// configFileNames lists the files searched for configuration in order.
// Checks .github/ first, then the work tree root.
var configFileNames = []string{
	".github/go-pushdelta.yml",
	"go-pushdelta.yml",
	".go-pushdelta.yml",
}

// Detect computes the unpublished commits of the branch checked out in the
// repository at opts.Path.
func Detect(opts Options) (*Result, error) {
	log := logging.OrDiscard(opts.Logger)

	// 1. Open repository.
	repo, err := open(opts.Path)
	if err != nil {
		return nil, err
	}

	// 2. Load configuration.
	cfg, err := loadConfig(opts, repo.WorkingDirectory(), log)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	// 3. Run the detection pipeline.
	return detect(repo, cfg, opts, log)
}

// LoadConfiguration returns the merged configuration Detect would use for
// opts, without evaluating history.
func LoadConfiguration(opts Options) (*config.Config, error) {
	repo, err := open(opts.Path)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(opts, repo.WorkingDirectory(), logging.OrDiscard(opts.Logger))
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

func open(path string) (*git.GoGitRepository, error) {
	if path == "" {
		path = "."
	}
	repo, err := git.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}
	return repo, nil
}

// detect runs the shared detection pipeline.
func detect(repo git.Repository, cfg *config.Config, opts Options, log *slog.Logger) (*Result, error) {
	store := git.NewRepositoryStore(repo)

	ctx, err := configctx.NewContext(store, cfg, configctx.Options{Remote: opts.Remote}, log)
	if err != nil {
		return nil, fmt.Errorf("building context: %w", err)
	}
	// An explicit window beats branch overrides too.
	if opts.WindowSize > 0 {
		ctx.Configuration.WindowSize = opts.WindowSize
	}

	strategies, err := strategy.StrategiesByName(store, ctx.Configuration.Strategies)
	if err != nil {
		return nil, fmt.Errorf("selecting strategies: %w", err)
	}

	calc := calculator.NewDeltaCalculator(store, strategies, log)
	delta, err := calc.Calculate(ctx, opts.Explain)
	if err != nil {
		return nil, fmt.Errorf("calculating delta: %w", err)
	}

	r := &Result{
		Delta:     delta,
		Variables: output.GetVariables(delta),
	}

	if opts.Explain {
		r.ExplainResult = buildExplainResult(delta)
	}

	return r, nil
}

// buildExplainResult maps the internal calculator.DeltaResult to the public ExplainResult.
func buildExplainResult(delta calculator.DeltaResult) *ExplainResult {
	er := &ExplainResult{
		SelectedStrategy: delta.PushPoint.Strategy,
		Confidence:       string(delta.PushPoint.Confidence),
		RangeReason:      delta.Range.Reason,
		EnumeratedBy:     delta.EnumeratedBy,
		FormattedOutput:  output.FormatExplanation(delta),
	}

	for _, a := range delta.Attempts {
		ea := ExplainAttempt{Strategy: a.Strategy, Found: a.Found}
		if a.Err != nil {
			ea.Error = a.Err.Error()
		}
		if a.Explanation != nil {
			ea.Steps = a.Explanation.Steps
		}
		er.Attempts = append(er.Attempts, ea)
	}

	return er
}

// loadConfig loads configuration from a file path or auto-detects it, then
// layers the option overrides on top.
func loadConfig(opts Options, workDir string, log *slog.Logger) (*config.Config, error) {
	builder := config.NewBuilder()

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = findConfigFile(workDir)
	}

	if configPath != "" {
		userCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		log.Debug("configuration file loaded", "path", configPath)
		builder.Add(userCfg)
	}

	if opts.WindowSize != 0 {
		builder.Add(&config.Config{WindowSize: config.IntPtr(opts.WindowSize)})
	}

	return builder.Build()
}

// findConfigFile searches for a config file in the given directory.
func findConfigFile(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

package config

const (
	// DefaultRemote is used when a branch has no configured remote.
	DefaultRemote = "origin"

	// DefaultWindowSize bounds the commit list of a never-published branch.
	DefaultWindowSize = 10

	// DefaultPushEventPattern matches the reflog message git writes to a
	// remote-tracking ref after a successful push.
	DefaultPushEventPattern = `^update by push`
)

// DefaultPushKeywords are matched case-insensitively by the keyword scan.
var DefaultPushKeywords = []string{"push"}

// CreateDefaultConfiguration returns a Config with all default values
// populated. No branch overrides are defined by default.
func CreateDefaultConfiguration() *Config {
	return &Config{
		DefaultRemote:    stringPtr(DefaultRemote),
		WindowSize:       intPtr(DefaultWindowSize),
		PushEventPattern: stringPtr(DefaultPushEventPattern),
		PushKeywords:     strSlicePtr(append([]string(nil), DefaultPushKeywords...)),
		Strategies:       strSlicePtr(append([]string(nil), KnownStrategies...)),
		Branches:         map[string]*BranchConfig{},
	}
}

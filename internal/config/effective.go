package config

// EffectiveConfiguration is a fully resolved configuration with all fields
// guaranteed to have values. Created from a Config and the BranchConfig
// matching the current branch, if any.
type EffectiveConfiguration struct {
	DefaultRemote    string
	WindowSize       int
	PushEventPattern string
	PushKeywords     []string
	Strategies       []string

	// BranchRemote is the remote forced by a branch override; empty when
	// the repository's own branch.<name>.remote setting applies.
	BranchRemote string

	// BranchConfigName is the key of the matched branch override, if any.
	BranchConfigName string
}

// NewEffectiveConfiguration creates an EffectiveConfiguration by resolving
// all pointer fields from the given Config and BranchConfig to concrete values.
func NewEffectiveConfiguration(cfg *Config, branch *BranchConfig, branchName string) EffectiveConfiguration {
	ec := EffectiveConfiguration{
		DefaultRemote:    derefString(cfg.DefaultRemote, DefaultRemote),
		WindowSize:       derefInt(cfg.WindowSize, DefaultWindowSize),
		PushEventPattern: derefString(cfg.PushEventPattern, DefaultPushEventPattern),
		PushKeywords:     derefStrings(cfg.PushKeywords, DefaultPushKeywords),
		Strategies:       derefStrings(cfg.Strategies, KnownStrategies),
	}

	if branch != nil {
		ec.BranchConfigName = branchName
		ec.BranchRemote = derefString(branch.Remote, "")
		ec.WindowSize = derefInt(branch.WindowSize, ec.WindowSize)
		ec.Strategies = derefStrings(branch.Strategies, ec.Strategies)
	}

	return ec
}

func derefString(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func derefInt(p *int, fallback int) int {
	if p != nil {
		return *p
	}
	return fallback
}

func derefStrings(p *[]string, fallback []string) []string {
	if p != nil {
		return append([]string(nil), (*p)...)
	}
	return append([]string(nil), fallback...)
}

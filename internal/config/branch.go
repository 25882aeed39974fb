package config

// BranchConfig holds overrides applied to branches whose name matches Regex.
// All fields are pointers to support merge semantics: nil means "not set,
// inherit from the global configuration".
type BranchConfig struct {
	Regex      *string   `yaml:"regex" json:"regex,omitempty"`
	Remote     *string   `yaml:"remote" json:"remote,omitempty"`
	WindowSize *int      `yaml:"window-size" json:"window-size,omitempty"`
	Strategies *[]string `yaml:"strategies" json:"strategies,omitempty"`
	Priority   *int      `yaml:"priority" json:"priority,omitempty"`
}

// MergeTo copies non-nil fields from bc into target. Used for overlay
// semantics: a later layer overrides an earlier one where specified.
func (bc *BranchConfig) MergeTo(target *BranchConfig) {
	if bc == nil || target == nil {
		return
	}
	if bc.Regex != nil {
		target.Regex = bc.Regex
	}
	if bc.Remote != nil {
		target.Remote = bc.Remote
	}
	if bc.WindowSize != nil {
		target.WindowSize = bc.WindowSize
	}
	if bc.Strategies != nil {
		target.Strategies = bc.Strategies
	}
	if bc.Priority != nil {
		target.Priority = bc.Priority
	}
}

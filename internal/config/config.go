// Package config provides YAML configuration loading, defaults, config
// merging, and effective configuration resolution for go-pushdelta.
package config

// Strategy names accepted in the strategies list, in their default order.
const (
	StrategyReflogPushEvent   = "ReflogPushEvent"
	StrategyRemoteTrackingRef = "RemoteTrackingRef"
	StrategyReflogKeyword     = "ReflogKeyword"
)

// KnownStrategies lists every push-point strategy name in default order.
var KnownStrategies = []string{
	StrategyReflogPushEvent,
	StrategyRemoteTrackingRef,
	StrategyReflogKeyword,
}

// Config is the root configuration for go-pushdelta. All optional fields are
// pointers to support merge semantics during configuration building.
type Config struct {
	DefaultRemote    *string                  `yaml:"default-remote" json:"default-remote,omitempty"`
	WindowSize       *int                     `yaml:"window-size" json:"window-size,omitempty"`
	PushEventPattern *string                  `yaml:"push-event-pattern" json:"push-event-pattern,omitempty"`
	PushKeywords     *[]string                `yaml:"push-keywords" json:"push-keywords,omitempty"`
	Strategies       *[]string                `yaml:"strategies" json:"strategies,omitempty"`
	Branches         map[string]*BranchConfig `yaml:"branches" json:"branches,omitempty"`
}

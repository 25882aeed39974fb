package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Builder constructs a Config by layering overrides on top of defaults.
type Builder struct {
	overrides []*Config
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds a configuration override. Overrides are applied in order:
// later overrides take precedence over earlier ones.
func (b *Builder) Add(override *Config) *Builder {
	if override != nil {
		b.overrides = append(b.overrides, override)
	}
	return b
}

// Build constructs the final configuration by starting with defaults,
// applying all overrides, and validating.
func (b *Builder) Build() (*Config, error) {
	cfg := CreateDefaultConfiguration()

	for _, override := range b.overrides {
		mergeConfig(cfg, override)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig applies non-nil fields from src to dst.
func mergeConfig(dst, src *Config) {
	if src.DefaultRemote != nil {
		dst.DefaultRemote = src.DefaultRemote
	}
	if src.WindowSize != nil {
		dst.WindowSize = src.WindowSize
	}
	if src.PushEventPattern != nil {
		dst.PushEventPattern = src.PushEventPattern
	}
	if src.PushKeywords != nil {
		dst.PushKeywords = src.PushKeywords
	}
	if src.Strategies != nil {
		dst.Strategies = src.Strategies
	}

	// Branch configs: merge per-key
	if src.Branches != nil {
		if dst.Branches == nil {
			dst.Branches = make(map[string]*BranchConfig)
		}
		for name, srcBranch := range src.Branches {
			if srcBranch == nil {
				continue
			}
			if dstBranch, ok := dst.Branches[name]; ok {
				srcBranch.MergeTo(dstBranch)
			} else {
				copied := *srcBranch
				dst.Branches[name] = &copied
			}
		}
	}
}

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if cfg.DefaultRemote != nil && strings.TrimSpace(*cfg.DefaultRemote) == "" {
		return fmt.Errorf("default-remote must not be empty")
	}

	if cfg.WindowSize != nil && *cfg.WindowSize < 1 {
		return fmt.Errorf("window-size must be at least 1, got %d", *cfg.WindowSize)
	}

	if cfg.PushEventPattern != nil {
		if _, err := regexp.Compile(*cfg.PushEventPattern); err != nil {
			return fmt.Errorf("invalid push-event-pattern regex %q: %w", *cfg.PushEventPattern, err)
		}
	}

	if cfg.PushKeywords != nil {
		for _, kw := range *cfg.PushKeywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("push-keywords must not contain empty keywords")
			}
		}
	}

	if cfg.Strategies != nil {
		if err := validateStrategies(*cfg.Strategies); err != nil {
			return err
		}
	}

	for name, branch := range cfg.Branches {
		if branch.Regex == nil {
			return fmt.Errorf("branch %q missing regex", name)
		}
		if _, err := regexp.Compile(*branch.Regex); err != nil {
			return fmt.Errorf("branch %q has invalid regex %q: %w", name, *branch.Regex, err)
		}
		if branch.Remote != nil && strings.TrimSpace(*branch.Remote) == "" {
			return fmt.Errorf("branch %q has an empty remote", name)
		}
		if branch.WindowSize != nil && *branch.WindowSize < 1 {
			return fmt.Errorf("branch %q window-size must be at least 1, got %d", name, *branch.WindowSize)
		}
		if branch.Strategies != nil {
			if err := validateStrategies(*branch.Strategies); err != nil {
				return fmt.Errorf("branch %q: %w", name, err)
			}
		}
	}

	return nil
}

func validateStrategies(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("strategies must name at least one strategy")
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if !slices.Contains(KnownStrategies, name) {
			return fmt.Errorf("unknown strategy %q (known: %s)", name, strings.Join(KnownStrategies, ", "))
		}
		if seen[name] {
			return fmt.Errorf("strategy %q listed more than once", name)
		}
		seen[name] = true
	}
	return nil
}

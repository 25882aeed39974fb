package config

import (
	"fmt"
	"regexp"
	"sort"
)

type branchMatch struct {
	name     string
	branch   *BranchConfig
	priority int
}

// GetBranchConfiguration returns the best-matching BranchConfig for the given
// branch name, using priority-ordered regex matching. Returns the matched
// BranchConfig and its key name, or nil and "" when no override matches.
func (cfg *Config) GetBranchConfiguration(branchName string) (*BranchConfig, string, error) {
	var matches []branchMatch

	for name, branch := range cfg.Branches {
		if branch == nil || branch.Regex == nil {
			continue
		}
		re, err := regexp.Compile(*branch.Regex)
		if err != nil {
			return nil, "", fmt.Errorf("invalid regex for branch %q: %w", name, err)
		}
		if re.MatchString(branchName) {
			p := 0
			if branch.Priority != nil {
				p = *branch.Priority
			}
			matches = append(matches, branchMatch{
				name:     name,
				branch:   branch,
				priority: p,
			})
		}
	}

	if len(matches) == 0 {
		return nil, "", nil
	}

	// Sort by priority descending, then by name ascending for determinism
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].priority != matches[j].priority {
			return matches[i].priority > matches[j].priority
		}
		return matches[i].name < matches[j].name
	})

	return matches[0].branch, matches[0].name, nil
}

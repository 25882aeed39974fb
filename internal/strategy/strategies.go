package strategy

import (
	"fmt"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
)

// AllStrategies returns all push-point strategies in priority order:
//  1. ReflogPushEvent: explicit push events on the remote-tracking ref
//  2. RemoteTrackingRef: the remote-tracking ref, if HEAD contains it
//  3. ReflogKeyword: any reflog entry mentioning a push keyword
func AllStrategies(store *git.RepositoryStore) []PushPointStrategy {
	return []PushPointStrategy{
		NewReflogPushEventStrategy(store),
		NewRemoteTrackingRefStrategy(store),
		NewReflogKeywordStrategy(store),
	}
}

// StrategiesByName returns the named strategies in the given order.
func StrategiesByName(store *git.RepositoryStore, names []string) ([]PushPointStrategy, error) {
	byName := make(map[string]PushPointStrategy)
	for _, s := range AllStrategies(store) {
		byName[s.Name()] = s
	}

	out := make([]PushPointStrategy, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q", name)
		}
		out = append(out, s)
	}
	return out, nil
}

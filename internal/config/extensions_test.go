package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBranchConfiguration_NoOverrides(t *testing.T) {
	cfg := CreateDefaultConfiguration()

	bc, name, err := cfg.GetBranchConfiguration("main")
	require.NoError(t, err)
	require.Nil(t, bc)
	require.Empty(t, name)
}

func TestGetBranchConfiguration_Match(t *testing.T) {
	cfg := CreateDefaultConfiguration()
	cfg.Branches["release"] = &BranchConfig{Regex: stringPtr(`^release/`), WindowSize: intPtr(40)}

	bc, name, err := cfg.GetBranchConfiguration("release/1.2")
	require.NoError(t, err)
	require.Equal(t, "release", name)
	require.Equal(t, 40, *bc.WindowSize)

	bc, _, err = cfg.GetBranchConfiguration("feature/x")
	require.NoError(t, err)
	require.Nil(t, bc)
}

func TestGetBranchConfiguration_PriorityThenName(t *testing.T) {
	cfg := CreateDefaultConfiguration()
	cfg.Branches["b-any"] = &BranchConfig{Regex: stringPtr(`.*`)}
	cfg.Branches["a-any"] = &BranchConfig{Regex: stringPtr(`.*`)}
	cfg.Branches["main"] = &BranchConfig{Regex: stringPtr(`^main$`), Priority: intPtr(5)}

	_, name, err := cfg.GetBranchConfiguration("main")
	require.NoError(t, err)
	require.Equal(t, "main", name)

	_, name, err = cfg.GetBranchConfiguration("topic")
	require.NoError(t, err)
	require.Equal(t, "a-any", name)
}

func TestGetBranchConfiguration_InvalidRegex(t *testing.T) {
	cfg := CreateDefaultConfiguration()
	cfg.Branches["broken"] = &BranchConfig{Regex: stringPtr("(")}

	_, _, err := cfg.GetBranchConfiguration("main")
	require.Error(t, err)
}

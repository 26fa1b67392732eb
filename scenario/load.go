// SPDX-License-Identifier: MIT
// Package: scenario
//
// load.go - reading scenario documents through viper: explicit files,
// name+path search, and STEADYPLAN_ environment overrides.
package scenario

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix scopes environment overrides: STEADYPLAN_MAX_PLAYERS=2
// overrides the max_players field of any loaded scenario.
const envPrefix = "STEADYPLAN"

// Load reads the scenario file at path (format inferred from the
// extension: .yaml, .toml, .json, ...), applies environment overrides and
// validates the result.
//
// Errors: ErrBadScenario for unreadable, unparsable or invalid documents.
func Load(path string) (*Scenario, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBadScenario)
	}
	v := newViper()
	v.SetConfigFile(path)
	return readScenario(v)
}

// Search looks for a scenario named name (no extension) in paths, first
// match wins. Same overrides and validation as Load.
//
// Errors: ErrBadScenario, including when no file is found.
func Search(name string, paths ...string) (*Scenario, error) {
	v := newViper()
	v.SetConfigName(name)
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	return readScenario(v)
}

// newViper builds a viper instance with the scenario defaults and the
// environment override channel wired up.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Absent max_players means unlimited, not a zero-player cap.
	v.SetDefault("max_players", float64(Unlimited))
	return v
}

// readScenario runs the configured viper instance to completion.
func readScenario(v *viper.Viper) (*Scenario, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	var s Scenario
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/HardMax71/ResuMariner-sub001/internal/client"
	"github.com/HardMax71/ResuMariner-sub001/internal/config"
)

// loadConfig resolves the effective configuration: file, then environment,
// then flags, each overriding the last.
func loadConfig() (config.Config, error) {
	cfg := config.Defaults()

	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	cfg.ApplyEnv()

	if flagBackend != "" {
		cfg.BackendURL = flagBackend
	}
	if flagSessionDB != "" {
		cfg.SessionDB = flagSessionDB
	}
	if flagSessionID != "" {
		cfg.SessionID = flagSessionID
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newBackend builds the backend client from the effective config.
func newBackend(cfg config.Config) *client.Client {
	return client.New(&client.Options{
		BaseURL: cfg.BackendURL,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
}

// parseFacetFlag splits a "Key:Sub1,Sub2" flag value. Without a colon the
// whole value is the key and the sub-selection is empty, meaning "any".
func parseFacetFlag(raw string) (key string, subs []string, err error) {
	key, rest, found := strings.Cut(raw, ":")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", nil, fmt.Errorf("empty facet key in %q", raw)
	}
	if !found {
		return key, nil, nil
	}
	for _, s := range strings.Split(rest, ",") {
		if s = strings.TrimSpace(s); s != "" {
			subs = append(subs, s)
		}
	}
	return key, subs, nil
}

package jsonfile

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	AgentPathKey   = "state.agent_path"
	UsersPathKey   = "state.users_path"
	HistoryPathKey = "state.history_path"

	defaultAgentFile   = "agentConfig.json"
	defaultUsersFile   = "users.json"
	defaultHistoryFile = "tweet-history.json"
)

type Paths struct {
	Agent   string
	Users   string
	History string
}

// ResolvePaths reads the three state file locations from cfg. Relative paths
// are resolved against baseDir.
func ResolvePaths(cfg *viper.Viper, baseDir string) (Paths, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetDefault(AgentPathKey, defaultAgentFile)
	cfg.SetDefault(UsersPathKey, defaultUsersFile)
	cfg.SetDefault(HistoryPathKey, defaultHistoryFile)

	var paths Paths
	for _, entry := range []struct {
		key    string
		target *string
	}{
		{key: AgentPathKey, target: &paths.Agent},
		{key: UsersPathKey, target: &paths.Users},
		{key: HistoryPathKey, target: &paths.History},
	} {
		raw := cfg.GetString(entry.key)
		if raw == "" {
			return Paths{}, errors.New(entry.key + " is empty")
		}

		normalized, err := normalizePath(baseDir, raw)
		if err != nil {
			return Paths{}, fmt.Errorf("resolve %s: %w", entry.key, err)
		}
		*entry.target = normalized
	}

	return paths, nil
}

func normalizePath(baseDir string, path string) (string, error) {
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.Clean(absPath), nil
}

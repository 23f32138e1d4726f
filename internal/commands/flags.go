package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/curator/internal/core/config"
	"github.com/colonyops/curator/internal/data/api"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	ServerURL  string
	CampaignID string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Client is the review service client, built in the Before hook
	Client *api.Client
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "curator", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "curator")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/curator/curator.log
// On Linux: $XDG_STATE_HOME/curator/curator.log (defaults to ~/.local/state/curator/curator.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "curator", "curator.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "curator", "curator.log")
	}

	return filepath.Join(home, ".local", "state", "curator", "curator.log")
}

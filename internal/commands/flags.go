package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/scout/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	TodoFile   string

	// Config is loaded in the Before hook and available to all commands.
	Config *config.Config
}

// ResolvedConfig returns the loaded config, or defaults when the
// Before hook hasn't populated it.
func (f *Flags) ResolvedConfig() *config.Config {
	if f.Config != nil {
		return f.Config
	}
	cfg := config.DefaultConfig()
	return &cfg
}

// ResolvedTodoFile returns the active-task file path, preferring the
// --todo-file flag (SCOUT_TODO_FILE) over the config file value.
func (f *Flags) ResolvedTodoFile() string {
	return f.ResolvedConfig().ResolveTodoFile(f.TodoFile)
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "scout", "config.yaml")
}

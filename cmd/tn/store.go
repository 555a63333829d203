package main

import (
	"github.com/tasknest/tasknest/internal/config"
	"github.com/tasknest/tasknest/internal/paths"
	"github.com/tasknest/tasknest/internal/taskenv"
	"github.com/tasknest/tasknest/task"
)

// dbPathFlag is the --db value shared by every command that opens the store.
var dbPathFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Task database path")
}

func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	return config.Load(cwd)
}

// resolveDBPath picks the task database location: the --db flag wins, then
// TASKNEST_DB, then config, then the default state dir.
func resolveDBPath() (string, error) {
	if dbPathFlag != "" {
		return dbPathFlag, nil
	}

	if path, ok := taskenv.DBPath(); ok {
		return path, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if cfg.Store.Path != "" {
		return cfg.Store.Path, nil
	}

	return paths.DefaultDBPath()
}

func openTaskStore() (*task.Store, error) {
	return openTaskStoreWithOptions(task.OpenOptions{})
}

func openTaskStoreWithOptions(opts task.OpenOptions) (*task.Store, error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, err
	}

	return task.Open(path, opts)
}

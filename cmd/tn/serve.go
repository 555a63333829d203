package main

import (
	"github.com/spf13/cobra"

	"github.com/tasknest/tasknest/internal/taskenv"
	"github.com/tasknest/tasknest/server"
	"github.com/tasknest/tasknest/view"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the task server and web UI",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	// serve flags
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address")
}

const defaultServeAddr = ":8337"

// resolveServeAddr picks the listen address: the --addr flag wins, then
// TASKNEST_ADDR, then config, then the default.
func resolveServeAddr() (string, error) {
	if serveAddr != "" {
		return serveAddr, nil
	}

	if addr, ok := taskenv.Addr(); ok {
		return addr, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if cfg.Server.Addr != "" {
		return cfg.Server.Addr, nil
	}

	return defaultServeAddr, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, err := resolveServeAddr()
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}
	defer store.Close()

	srv, err := server.NewServer(server.Options{
		Store: store,
		Cache: view.New(store),
	})
	if err != nil {
		return err
	}

	return srv.Serve(addr)
}

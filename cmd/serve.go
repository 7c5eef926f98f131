package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kidwise/kidwise/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for the web front-end",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = ":8080"
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	svc := newContentService(context.Background(), log)
	router := server.NewRouter(server.NewHandler(svc), log)

	log.Info("listening", "addr", addr)
	return router.Run(addr)
}

func init() {
	rootCmd.PersistentFlags().String("addr", ":8080", "Listen address")
}

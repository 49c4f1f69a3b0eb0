package main

import (
	"context"
	"net"

	"github.com/paddison/lesolver/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Accepts storage notifications on POST /events and exposes /healthz and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTP.Addr = addr
		}

		ctx, cancel := cli.NewSignalContext(context.Background())
		defer cancel()

		rt, err := cli.NewRuntime(ctx, cfg, logger, nil)
		if err != nil {
			return err
		}
		defer rt.Close()

		ln, err := net.Listen("tcp", cfg.HTTP.Addr)
		if err != nil {
			return err
		}
		if err := cli.Serve(ctx, rt, ln); err != nil {
			return err
		}
		if sig := cli.ReceivedSignal(ctx); sig != nil {
			logger.Info("server stopped", "signal", sig.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (default from config, :8080)")
}

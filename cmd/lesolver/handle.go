package main

import (
	"os"

	"github.com/paddison/lesolver/internal/cli"
	"github.com/paddison/lesolver/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var handleCmd = &cobra.Command{
	Use:   "handle <key>",
	Short: "Process one uploaded object",
	Long:  `Runs a single invocation for the object <key> in the read bucket, as a notification would.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := cli.NewSignalContext(cmd.Context())
		defer cancel()

		rt, err := cli.NewRuntime(ctx, cfg, logger, nil)
		if err != nil {
			return err
		}
		defer rt.Close()

		_, err = cli.Handle(ctx, rt, args[0], tui.NewRenderer(os.Stdout))
		return err
	},
}

func init() {
	rootCmd.AddCommand(handleCmd)
}

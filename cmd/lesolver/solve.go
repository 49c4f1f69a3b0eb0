package main

import (
	"io"
	"os"

	"github.com/paddison/lesolver/internal/cli"
	"github.com/paddison/lesolver/internal/presentation/tui"
	"github.com/paddison/lesolver/pkg/parser"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a linear system locally",
	Long:  `Parses and solves the system in [file], or on stdin when no file is given. Nothing is stored.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		permissive, _ := cmd.Flags().GetBool("permissive")
		strictness := parser.Strict
		if permissive {
			strictness = parser.Permissive
		}

		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		} else if cli.IsInteractive(os.Stdin) {
			return cli.ErrInteractiveInput
		}

		_, err := cli.Solve(cmd.Context(), in, strictness, tui.NewRenderer(os.Stdout))
		return err
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().Bool("permissive", false, "Accept a right-hand side longer than the matrix dimension")
}

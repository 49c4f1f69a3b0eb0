package main

import (
	"os"
	"strings"

	"github.com/paddison/lesolver"
	"github.com/paddison/lesolver/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lesolver",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(os.Stdout, strings.TrimSpace(lesolver.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

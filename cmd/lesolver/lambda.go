package main

import (
	"context"

	"github.com/paddison/lesolver/internal/cli"
	"github.com/spf13/cobra"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Run as an AWS Lambda function",
	Long:  `Starts the Lambda runtime loop. Each invocation receives one S3 notification.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		rt, err := cli.NewRuntime(context.Background(), cfg, logger, nil)
		if err != nil {
			return err
		}
		cli.RunLambda(rt)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lambdaCmd)
}

package main

import (
	"fmt"
	"os"

	"resume-builder/internal/model"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <export.json>",
	Short: "Replace the stored submissions with the contents of an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		list, err := model.ValidateSubmissions(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		rt, err := openRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.Editor.RestoreSubmissions(ctx, list); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "restored %d submissions\n", len(list))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

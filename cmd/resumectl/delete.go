package main

import (
	"errors"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const (
	promptYes = "Yes"
	promptNo  = "No"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one submission",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	var name string
	for _, s := range rt.Editor.Submissions() {
		if s.ID == id {
			name = s.FullName
		}
	}
	if name == "" {
		name = id
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		prompt := promptui.Select{
			Label: fmt.Sprintf("Delete the submission of %s?", name),
			Items: []string{promptNo, promptYes},
		}
		_, answer, err := prompt.Run()
		if err != nil {
			return err
		}
		if answer != promptYes {
			return domain.ErrConfirmationRequired
		}
	}

	if err := rt.Editor.DeleteSubmission(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no submission with id %s", id)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
	return nil
}

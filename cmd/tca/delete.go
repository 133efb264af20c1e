package main

import (
	"fmt"

	"tca/internal/errors"

	"github.com/spf13/cobra"
)

var (
	deleteYes bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete <protocol-id>",
	Short: "Delete a stored protocol",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	p := store.GetByID(args[0])
	if p == nil {
		return errors.New(errors.ProtocolNotFound, fmt.Sprintf("no protocol with id %s", args[0]), nil).
			WithDetails(errors.SuggestedAction(errors.ProtocolNotFound))
	}

	if !deleteYes {
		fmt.Printf("Delete protocol %s (%s)? [y/N] ", p.ProtocolNumber, p.ID)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if !store.DeleteByID(p.ID) {
		return errors.New(errors.StorageWriteFailed, "Failed to delete the protocol", nil)
	}

	fmt.Printf("Deleted %s\n", p.ProtocolNumber)
	return nil
}

package main

import (
	"fmt"

	"tca/internal/errors"

	"github.com/spf13/cobra"
)

var numberCmd = &cobra.Command{
	Use:   "number <depot>",
	Short: "Preview the next protocol number for a depot",
	Long:  "Prints the number the next protocol in this depot's sequence would receive, in the form DEP/NNN/YYYY. Nothing is reserved until a protocol is saved.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNumber,
}

func init() {
	rootCmd.AddCommand(numberCmd)
}

func runNumber(cmd *cobra.Command, args []string) error {
	if args[0] == "" {
		return errors.New(errors.ValidationFailed, "depot must not be empty", nil)
	}

	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	fmt.Println(store.NextProtocolNumber(args[0]))
	return nil
}

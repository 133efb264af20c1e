package main

import (
	"fmt"

	"tca/internal/errors"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <protocol-id>",
	Short: "Show a stored protocol",
	Long:  "Prints the full protocol record. Use --format json or --format yaml for the raw record.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	p := store.GetByID(args[0])
	if p == nil {
		return errors.New(errors.ProtocolNotFound, fmt.Sprintf("no protocol with id %s", args[0]), nil).
			WithDetails(errors.SuggestedAction(errors.ProtocolNotFound))
	}

	out, err := FormatResponse(p, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

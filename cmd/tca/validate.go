package main

import (
	"fmt"

	"tca/internal/errors"
	"tca/internal/validation"

	"github.com/spf13/cobra"
)

var (
	validateStrict bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <protocol-id>",
	Short: "Validate a protocol against the assessment rules",
	Long: `Runs the full rule set over a stored protocol: protocol number format,
vehicle numbering, commission composition, the technical state table,
dates, and accompanying documentation. Prints the verdict with every
error, warning, and missing field.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Exit with an error when the protocol is invalid")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	p := store.GetByID(args[0])
	if p == nil {
		return errors.New(errors.ProtocolNotFound, fmt.Sprintf("no protocol with id %s", args[0]), nil).
			WithDetails(errors.SuggestedAction(errors.ProtocolNotFound))
	}

	verdict := validation.CheckProtocol(p)

	resp := &ValidateResponseCLI{
		ProtocolID:           p.ID,
		ProtocolNumber:       p.ProtocolNumber,
		IsValid:              verdict.IsValid,
		CompletionPercentage: verdict.CompletionPercentage,
		Errors:               verdict.Errors,
		Warnings:             verdict.Warnings,
		MissingFields:        verdict.MissingFields,
	}

	out, err := FormatResponse(resp, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)

	if validateStrict && !verdict.IsValid {
		return errors.New(errors.ValidationFailed,
			fmt.Sprintf("protocol %s failed validation with %d errors", p.ProtocolNumber, len(verdict.Errors)), nil)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"tca/internal/errors"
	"tca/internal/render"

	"github.com/spf13/cobra"
)

var (
	renderOutput   string
	renderValidate bool
)

var renderCmd = &cobra.Command{
	Use:   "render <protocol-id>",
	Short: "Render the protocol document",
	Long: `Produces the paginated plain-text protocol document with all seventeen
sections, ready for printing or archiving. With --validate the document
ends with the rule engine's verdict.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write the document to a file instead of stdout")
	renderCmd.Flags().BoolVar(&renderValidate, "validate", false, "Append the validation verdict to the document")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	p := store.GetByID(args[0])
	if p == nil {
		return errors.New(errors.ProtocolNotFound, fmt.Sprintf("no protocol with id %s", args[0]), nil).
			WithDetails(errors.SuggestedAction(errors.ProtocolNotFound))
	}

	doc := render.Document(p, render.Options{IncludeValidation: renderValidate})

	if renderOutput == "" {
		fmt.Print(doc)
		return nil
	}

	if dir := filepath.Dir(renderOutput); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.New(errors.StorageWriteFailed, fmt.Sprintf("Failed to create %s", dir), err)
		}
	}
	if err := os.WriteFile(renderOutput, []byte(doc), 0644); err != nil {
		return errors.New(errors.StorageWriteFailed, fmt.Sprintf("Failed to write %s", renderOutput), err)
	}

	fmt.Printf("Rendered %s to %s\n", p.ProtocolNumber, renderOutput)
	return nil
}

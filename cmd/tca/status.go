package main

import (
	"fmt"
	"time"

	"tca/internal/errors"
	"tca/internal/types"
	"tca/internal/validation"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <protocol-id> [new-status]",
	Short: "Show or advance a protocol's lifecycle status",
	Long: `With one argument, prints the protocol's current status. With a second
argument, advances the protocol along the lifecycle
draft -> completed -> approved -> archived. Only single forward steps are
allowed, and moving to completed requires the protocol to pass validation.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	p := store.GetByID(args[0])
	if p == nil {
		return errors.New(errors.ProtocolNotFound, fmt.Sprintf("no protocol with id %s", args[0]), nil).
			WithDetails(errors.SuggestedAction(errors.ProtocolNotFound))
	}

	if len(args) == 1 {
		fmt.Printf("%s: %s\n", p.ProtocolNumber, p.Status)
		return nil
	}

	next := types.ProtocolStatus(args[1])
	if !next.Valid() {
		return errors.New(errors.ValidationFailed, fmt.Sprintf("unknown status %q", args[1]), nil)
	}
	if !p.Status.CanTransition(next) {
		return errors.New(errors.ValidationFailed,
			fmt.Sprintf("cannot move from %s to %s, the lifecycle only advances one step forward", p.Status, next), nil)
	}

	if next == types.StatusCompleted {
		verdict := validation.CheckProtocol(p)
		if !verdict.IsValid {
			return errors.New(errors.ValidationFailed,
				fmt.Sprintf("protocol has %d validation errors, run 'tca validate %s' for details", len(verdict.Errors), p.ID), nil)
		}
	}

	p.Status = next
	if next == types.StatusApproved {
		now := time.Now().UTC()
		p.ApprovalDate = &now
	}

	if !store.Save(p) {
		return errors.New(errors.StorageWriteFailed, "Failed to save the status change", nil)
	}

	fmt.Printf("%s is now %s\n", p.ProtocolNumber, p.Status)
	return nil
}

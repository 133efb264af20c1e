package main

import (
	"fmt"

	"tca/internal/errors"
	"tca/internal/signing"
	"tca/internal/types"

	"github.com/spf13/cobra"
)

var (
	signMember   string
	signLocation string
	signAccept   bool
)

var signCmd = &cobra.Command{
	Use:   "sign <protocol-id>",
	Short: "Sign a protocol as a commission member",
	Long: `Adds an electronic signature for one commission member. The member must
be on the protocol's commission and must accept all four declarations
(accuracy, responsibility, confidentiality, data processing). The
signature embeds a digest of the protocol content at signing time.`,
	Args: cobra.ExactArgs(1),
	RunE: runSign,
}

var verifyCmd = &cobra.Command{
	Use:   "verify <protocol-id>",
	Short: "Verify the digital signatures on a protocol",
	Long:  "Recomputes the content digest and checks it against every electronic signature. A mismatch means the protocol changed after signing.",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	signCmd.Flags().StringVarP(&signMember, "member", "m", "", "ID of the signing commission member (required)")
	signCmd.Flags().StringVarP(&signLocation, "location", "l", "", "Signing location")
	signCmd.Flags().BoolVar(&signAccept, "accept-declarations", false, "Accept all four signer declarations")
	signCmd.MarkFlagRequired("member")
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	p := store.GetByID(args[0])
	if p == nil {
		return errors.New(errors.ProtocolNotFound, fmt.Sprintf("no protocol with id %s", args[0]), nil).
			WithDetails(errors.SuggestedAction(errors.ProtocolNotFound))
	}

	declarations := types.Declarations{
		AccuracyConfirmed:      signAccept,
		ResponsibilityAccepted: signAccept,
		ConfidentialityAgreed:  signAccept,
		DataProcessingConsent:  signAccept,
	}

	location := signLocation
	if location == "" {
		location = p.Location
	}

	sig, err := signing.Sign(p, signMember, location, declarations)
	if err != nil {
		return errors.New(errors.ValidationFailed, "Cannot sign the protocol", err)
	}

	p.Signatures = append(p.Signatures, *sig)
	if !store.Save(p) {
		return errors.New(errors.StorageWriteFailed, "Failed to save the signature", nil)
	}

	fmt.Printf("Signed %s as member %s\n", p.ProtocolNumber, signMember)
	fmt.Printf("Digest: %s (%s)\n", sig.Digital.Hash, sig.Digital.Algorithm)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	p := store.GetByID(args[0])
	if p == nil {
		return errors.New(errors.ProtocolNotFound, fmt.Sprintf("no protocol with id %s", args[0]), nil).
			WithDetails(errors.SuggestedAction(errors.ProtocolNotFound))
	}

	if len(p.Signatures) == 0 {
		fmt.Println("No signatures to verify.")
		return nil
	}

	allValid := true
	for i := range p.Signatures {
		sig := &p.Signatures[i]
		ok, err := signing.Verify(p, sig)
		if err != nil {
			return errors.New(errors.InternalError, "Verification failed", err)
		}
		state := "valid"
		if !ok {
			state = "INVALID"
			allValid = false
		}
		fmt.Printf("  %s (member %s): %s\n", sig.ID, sig.MemberID, state)
	}

	if !allValid {
		return errors.New(errors.ValidationFailed, "one or more signatures do not match the protocol content", nil)
	}
	fmt.Println("All signatures match the protocol content.")
	return nil
}

package main

import (
	"fmt"

	adapters "github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain-adapters/gateways"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
	"github.com/spf13/cobra"
)

var (
	verifyKeyring   string
	verifySignature string
)

// verifyLicenseCmd checks the detached OpenPGP signature of the license file
var verifyLicenseCmd = &cobra.Command{
	Use:   "verify-license",
	Short: "Verify the OpenPGP signature of the license file",
	Long: `Checks the detached OpenPGP signature of the license file against a public keyring.
The signature defaults to "<license>.asc".

Example:
  scandump verify-license --license develocity.license --keyring issuer.gpg`,
	Args: cobra.NoArgs,
	RunE: runVerifyLicense,
}

func init() {
	verifyLicenseCmd.Flags().StringVar(&verifyKeyring, "keyring", "", "public keyring of the license issuer (armored or binary)")
	verifyLicenseCmd.Flags().StringVar(&verifySignature, "signature", "", "detached signature of the license file")
}

func runVerifyLicense(cmd *cobra.Command, _ []string) error {
	if cfg.License == "" {
		return fmt.Errorf("a license file is required (--license or license in the config file)")
	}

	config := cfg.LicenseVerification
	if verifyKeyring != "" {
		config = entities.LicenseVerificationConfig{Keyring: verifyKeyring, Signature: verifySignature}
	}
	if !config.Enabled() {
		return fmt.Errorf("a keyring is required (--keyring or license_verification.keyring in the config file)")
	}

	verifier, err := adapters.NewLicenseVerifier(config, domainLogger())
	if err != nil {
		return err
	}
	if err := verifier.VerifyLicense(cmd.Context(), cfg.License); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "License signature verified: %s\n", cfg.License)
	return nil
}

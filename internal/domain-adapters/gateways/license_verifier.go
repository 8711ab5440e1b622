package gateways

import (
	"context"
	"fmt"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/entities"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces"
	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/external-adapters/gpg"
)

// licenseVerifier wraps the external GPG adapter to implement the LicenseVerifier gateway
type licenseVerifier struct {
	verifier  *gpg.Verifier
	signature string
	logger    interfaces.Logger
}

// NewLicenseVerifier loads the configured keyring.
// The signature defaults to "<license>.asc" when not configured.
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewLicenseVerifier(config entities.LicenseVerificationConfig, logger interfaces.Logger) (*licenseVerifier, error) {
	verifier := gpg.NewVerifier()
	if err := verifier.ImportKeyFromFile(config.Keyring); err != nil {
		return nil, fmt.Errorf("failed to import license keyring: %w", err)
	}

	return &licenseVerifier{
		verifier:  verifier,
		signature: config.Signature,
		logger:    interfaces.OrNoOp(logger),
	}, nil
}

// VerifyLicense checks the detached signature of the license file
func (v *licenseVerifier) VerifyLicense(_ context.Context, licensePath string) error {
	sigPath := v.signature
	if sigPath == "" {
		sigPath = licensePath + ".asc"
	}

	signer, err := v.verifier.VerifySignatureFromFile(licensePath, sigPath)
	if err != nil {
		return fmt.Errorf("license signature verification failed: %w", err)
	}

	v.logger.Debug("Verified license signature", interfaces.F("license", licensePath), interfaces.F("signer", signer))
	return nil
}

// KeyringSize returns the number of keys loaded
func (v *licenseVerifier) KeyringSize() int {
	return v.verifier.GetKeyringSize()
}

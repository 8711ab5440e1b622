// Package gpg provides OpenPGP signature verification of license credentials.
package gpg

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

const armoredSignaturePrefix = "-----BEGIN PGP SIGNATURE---"

// maxSignatureSize bounds detached signatures (they are typically < 1KB)
const maxSignatureSize = 64 * 1024

// Verifier checks detached OpenPGP signatures using ProtonMail's go-crypto
// This is in external-adapters to isolate the external dependency
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a new verifier with an empty keyring
func NewVerifier() *Verifier {
	return &Verifier{
		keyring: make(openpgp.EntityList, 0),
	}
}

// ImportKeyFromFile imports public keys from an armored or binary keyring file
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is the configured license keyring
	f, err := os.Open(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	entities, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		// Try reading as binary
		if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
			return fmt.Errorf("failed to reset file: %w", seekErr)
		}
		entities, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(entities) == 0 {
		return fmt.Errorf("no keys found in file")
	}

	v.keyring = append(v.keyring, entities...)
	return nil
}

// VerifySignatureFromFile verifies the detached signature sigPath of filePath and
// returns the name of the signing identity
func (v *Verifier) VerifySignatureFromFile(filePath, sigPath string) (string, error) {
	if len(v.keyring) == 0 {
		return "", fmt.Errorf("no GPG keys imported, call ImportKeyFromFile first")
	}

	//nolint:gosec // G304: sigPath is the configured license signature
	sigFile, err := os.Open(sigPath)
	if err != nil {
		return "", fmt.Errorf("failed to open signature file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer sigFile.Close()

	//nolint:gosec // G304: filePath is the configured license file
	dataFile, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open data file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer dataFile.Close()

	return v.VerifySignature(dataFile, sigFile)
}

// VerifySignature verifies a detached signature, armored or binary, over the signed data
func (v *Verifier) VerifySignature(signed, signature io.Reader) (string, error) {
	if len(v.keyring) == 0 {
		return "", fmt.Errorf("no GPG keys imported, call ImportKeyFromFile first")
	}

	sig := bufio.NewReader(io.LimitReader(signature, maxSignatureSize))
	peek, _ := sig.Peek(len(armoredSignaturePrefix))

	var (
		signer *openpgp.Entity
		err    error
	)
	if string(peek) == armoredSignaturePrefix {
		signer, err = openpgp.CheckArmoredDetachedSignature(v.keyring, signed, sig, nil)
	} else {
		signer, err = openpgp.CheckDetachedSignature(v.keyring, signed, sig, nil)
	}
	if err != nil {
		return "", fmt.Errorf("signature verification failed: %w", err)
	}

	return identityName(signer), nil
}

// GetKeyringSize returns the number of keys in the keyring
func (v *Verifier) GetKeyringSize() int {
	return len(v.keyring)
}

// ClearKeyring clears all imported keys
func (v *Verifier) ClearKeyring() {
	v.keyring = make(openpgp.EntityList, 0)
}

func identityName(entity *openpgp.Entity) string {
	if entity == nil {
		return ""
	}
	for name := range entity.Identities {
		return name
	}
	return fmt.Sprintf("%X", entity.PrimaryKey.Fingerprint)
}

package gpg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// newSigningEntity generates a throwaway key pair and writes its armored public key
func newSigningEntity(t *testing.T, dir string) (*openpgp.Entity, string) {
	t.Helper()

	entity, err := openpgp.NewEntity("License Issuer", "test", "licensing@example.com", nil)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		t.Fatalf("Failed to create armor encoder: %v", err)
	}
	if err := entity.Serialize(w); err != nil {
		t.Fatalf("Failed to serialize public key: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close armor encoder: %v", err)
	}

	keyPath := filepath.Join(dir, "issuer.asc")
	if err := os.WriteFile(keyPath, buf.Bytes(), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}
	return entity, keyPath
}

func writeSignedLicense(t *testing.T, dir string, entity *openpgp.Entity, content string, armored bool) (string, string) {
	t.Helper()

	licensePath := filepath.Join(dir, "develocity.license")
	if err := os.WriteFile(licensePath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	var sig bytes.Buffer
	var err error
	if armored {
		err = openpgp.ArmoredDetachSign(&sig, entity, strings.NewReader(content), nil)
	} else {
		err = openpgp.DetachSign(&sig, entity, strings.NewReader(content), nil)
	}
	if err != nil {
		t.Fatalf("Failed to sign license: %v", err)
	}

	sigPath := licensePath + ".asc"
	if err := os.WriteFile(sigPath, sig.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}
	return licensePath, sigPath
}

func TestVerifier_VerifySignatureFromFile(t *testing.T) {
	for _, armored := range []bool{true, false} {
		name := "binary"
		if armored {
			name = "armored"
		}
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			entity, keyPath := newSigningEntity(t, tmpDir)
			licensePath, sigPath := writeSignedLicense(t, tmpDir, entity, "license-key: 1234\n", armored)

			v := NewVerifier()
			if err := v.ImportKeyFromFile(keyPath); err != nil {
				t.Fatalf("ImportKeyFromFile() error = %v", err)
			}

			signer, err := v.VerifySignatureFromFile(licensePath, sigPath)
			if err != nil {
				t.Fatalf("VerifySignatureFromFile() error = %v", err)
			}
			if !strings.Contains(signer, "License Issuer") {
				t.Errorf("signer = %q, want identity of License Issuer", signer)
			}
		})
	}
}

func TestVerifier_VerifySignatureFromFile_TamperedLicense(t *testing.T) {
	tmpDir := t.TempDir()
	entity, keyPath := newSigningEntity(t, tmpDir)
	licensePath, sigPath := writeSignedLicense(t, tmpDir, entity, "license-key: 1234\n", true)

	if err := os.WriteFile(licensePath, []byte("license-key: 9999\n"), 0600); err != nil {
		t.Fatal(err)
	}

	v := NewVerifier()
	if err := v.ImportKeyFromFile(keyPath); err != nil {
		t.Fatalf("ImportKeyFromFile() error = %v", err)
	}

	_, err := v.VerifySignatureFromFile(licensePath, sigPath)
	if err == nil {
		t.Fatal("Expected error for tampered license, got nil")
	}
	if !strings.Contains(err.Error(), "signature verification failed") {
		t.Errorf("Expected 'signature verification failed' error, got: %v", err)
	}
}

func TestVerifier_VerifySignatureFromFile_UnknownSigner(t *testing.T) {
	tmpDir := t.TempDir()
	_, keyPath := newSigningEntity(t, tmpDir)
	other, err := openpgp.NewEntity("Someone Else", "", "other@example.com", nil)
	if err != nil {
		t.Fatal(err)
	}
	licensePath, sigPath := writeSignedLicense(t, tmpDir, other, "license-key: 1234\n", true)

	v := NewVerifier()
	if err := v.ImportKeyFromFile(keyPath); err != nil {
		t.Fatalf("ImportKeyFromFile() error = %v", err)
	}

	if _, err := v.VerifySignatureFromFile(licensePath, sigPath); err == nil {
		t.Fatal("Expected error for signature by unknown key, got nil")
	}
}

// Test importing key from nonexistent file
func TestVerifier_ImportKeyFromFile_NonexistentFile(t *testing.T) {
	v := NewVerifier()

	err := v.ImportKeyFromFile("/nonexistent/key.asc")

	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}

	if !strings.Contains(err.Error(), "failed to open key file") {
		t.Errorf("Expected 'failed to open key file' error, got: %v", err)
	}
}

// Test importing key from file with no keys
func TestVerifier_ImportKeyFromFile_InvalidFile(t *testing.T) {
	v := NewVerifier()
	tmpDir := t.TempDir()

	keyPath := filepath.Join(tmpDir, "empty.asc")
	if err := os.WriteFile(keyPath, []byte("not a gpg key"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := v.ImportKeyFromFile(keyPath); err == nil {
		t.Fatal("Expected error for invalid key file, got nil")
	}
}

// Test VerifySignatureFromFile without keys imported
func TestVerifier_VerifySignatureFromFile_NoKeysImported(t *testing.T) {
	v := NewVerifier()
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "develocity.license")
	sigFile := filepath.Join(tmpDir, "develocity.license.asc")

	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sigFile, []byte("fake sig"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := v.VerifySignatureFromFile(testFile, sigFile)

	if err == nil {
		t.Fatal("Expected error when no keys are imported, got nil")
	}

	if !strings.Contains(err.Error(), "no GPG keys imported") {
		t.Errorf("Expected 'no GPG keys imported' error, got: %v", err)
	}
}

// Test keyring size and clear operations
func TestVerifier_KeyringOperations(t *testing.T) {
	tmpDir := t.TempDir()
	_, keyPath := newSigningEntity(t, tmpDir)

	v := NewVerifier()
	if size := v.GetKeyringSize(); size != 0 {
		t.Errorf("Initial keyring size = %d, want 0", size)
	}

	if err := v.ImportKeyFromFile(keyPath); err != nil {
		t.Fatalf("ImportKeyFromFile() error = %v", err)
	}
	if size := v.GetKeyringSize(); size != 1 {
		t.Errorf("Keyring size after import = %d, want 1", size)
	}

	v.ClearKeyring()

	if size := v.GetKeyringSize(); size != 0 {
		t.Errorf("After clear, keyring size = %d, want 0", size)
	}
}

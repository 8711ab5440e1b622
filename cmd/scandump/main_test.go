package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/goccy/go-json"
	"github.com/spf13/pflag"
)

const (
	testGradleDump = `{"buildToolType":"GRADLE",
"attributes":{"gradleVersion":"8.5","rootProjectName":"demo","requestedTasks":["assemble"]},
"buildCachePerformance":{"buildTime":900,"taskExecution":[{"taskPath":":jar","avoidanceOutcome":"avoided_up_to_date"}]}}`
	testMavenDump = `{"buildToolType":"MAVEN",
"attributes":{"mavenVersion":"3.9.6","topLevelProjectName":"lib"},
"buildCachePerformance":{"goalExecution":[]}}`
	testLicense = "license-key: 0123456789\n"
)

// executeCommand runs the root command with fresh flag state and returns its output
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, sub := range rootCmd.Commands() {
		reset(sub.Flags())
	}
	cfg, logger = nil, nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestTypeCommand(t *testing.T) {
	tmpDir := t.TempDir()
	license := writeFile(t, tmpDir, "develocity.license", testLicense)
	gradleDump := writeFile(t, tmpDir, "gradle.scan", testGradleDump)
	mavenDump := writeFile(t, tmpDir, "maven.scan", testMavenDump)

	out, err := executeCommand(t, "type", "--license", license, gradleDump, mavenDump)
	if err != nil {
		t.Fatalf("type returned error: %v", err)
	}

	want := gradleDump + ": GRADLE\n" + mavenDump + ": MAVEN\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestReadCommand_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	license := writeFile(t, tmpDir, "develocity.license", testLicense)
	gradleDump := writeFile(t, tmpDir, "gradle.scan", testGradleDump)
	mavenDump := writeFile(t, tmpDir, "maven.scan", testMavenDump)

	out, err := executeCommand(t, "read", "--license", license, "--concurrency", "2", gradleDump, mavenDump)
	if err != nil {
		t.Fatalf("read returned error: %v", err)
	}

	var results []struct {
		Path          string `json:"path"`
		BuildToolType string `json:"buildToolType"`
		Gradle        *struct {
			ID         *string `json:"id"`
			Attributes struct {
				GradleVersion string `json:"gradleVersion"`
			} `json:"attributes"`
		} `json:"gradle"`
		Maven *struct {
			Attributes struct {
				MavenVersion string `json:"mavenVersion"`
			} `json:"attributes"`
		} `json:"maven"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, out)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Path != gradleDump || results[0].Gradle == nil || results[0].Gradle.Attributes.GradleVersion != "8.5" {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if results[0].Gradle != nil && results[0].Gradle.ID != nil {
		t.Errorf("id = %q, want absent", *results[0].Gradle.ID)
	}
	if results[1].BuildToolType != "MAVEN" || results[1].Maven == nil || results[1].Maven.Attributes.MavenVersion != "3.9.6" {
		t.Errorf("unexpected second result: %+v", results[1])
	}
}

func TestReadCommand_SummaryFromConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	license := writeFile(t, tmpDir, "develocity.license", testLicense)
	gradleDump := writeFile(t, tmpDir, "gradle.scan", testGradleDump)
	config := writeFile(t, tmpDir, "scandump.yaml", "license: "+license+"\nlog_level: error\nconcurrency: 2\n")

	out, err := executeCommand(t, "read", "--config", config, "--summary", gradleDump)
	if err != nil {
		t.Fatalf("read returned error: %v", err)
	}

	for _, want := range []string{"Gradle 8.5 build of demo", "Tasks: 1 total, 1 avoided, 0 executed", "Build time: 900ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestReadCommand_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	license := writeFile(t, tmpDir, "develocity.license", testLicense)
	gradleDump := writeFile(t, tmpDir, "gradle.scan", testGradleDump)

	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{
			name:        "missing license",
			args:        []string{"read", gradleDump},
			errContains: "license file is required",
		},
		{
			name:        "unknown backend",
			args:        []string{"read", "--license", license, "--backend", "grpc", gradleDump},
			errContains: "invalid configuration",
		},
		{
			name:        "exec backend without command",
			args:        []string{"read", "--license", license, "--backend", "exec", gradleDump},
			errContains: "requires a command",
		},
		{
			name:        "missing config file",
			args:        []string{"read", "--config", filepath.Join(tmpDir, "missing.yaml"), gradleDump},
			errContains: "failed to load config",
		},
		{
			name:        "missing dump",
			args:        []string{"read", "--license", license, filepath.Join(tmpDir, "missing.scan")},
			errContains: "read error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Expected error containing %q, got: %v", tt.errContains, err)
			}
		})
	}
}

func TestVerifyLicenseCommand(t *testing.T) {
	tmpDir := t.TempDir()
	license := writeFile(t, tmpDir, "develocity.license", testLicense)

	entity, err := openpgp.NewEntity("License Issuer", "", "licensing@example.com", nil)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	var keyring bytes.Buffer
	w, err := armor.Encode(&keyring, openpgp.PublicKeyType, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := entity.Serialize(w); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	keyringPath := writeFile(t, tmpDir, "issuer.asc", keyring.String())

	var sig bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&sig, entity, strings.NewReader(testLicense), nil); err != nil {
		t.Fatal(err)
	}
	writeFile(t, tmpDir, "develocity.license.asc", sig.String())

	out, err := executeCommand(t, "verify-license", "--license", license, "--keyring", keyringPath)
	if err != nil {
		t.Fatalf("verify-license returned error: %v", err)
	}
	if !strings.Contains(out, "License signature verified") {
		t.Errorf("unexpected output: %s", out)
	}

	writeFile(t, tmpDir, "develocity.license", "license-key: forged\n")
	if _, err := executeCommand(t, "verify-license", "--license", license, "--keyring", keyringPath); err == nil {
		t.Fatal("Expected error for tampered license, got nil")
	}
}

func TestVerifyLicenseCommand_RequiresKeyring(t *testing.T) {
	license := writeFile(t, t.TempDir(), "develocity.license", testLicense)

	_, err := executeCommand(t, "verify-license", "--license", license)
	if err == nil || !strings.Contains(err.Error(), "keyring is required") {
		t.Fatalf("Expected keyring error, got: %v", err)
	}
}

func TestDomainLoggerNeverTypedNil(t *testing.T) {
	logger = nil
	if domainLogger() == nil {
		t.Fatal("domainLogger returned nil")
	}
}

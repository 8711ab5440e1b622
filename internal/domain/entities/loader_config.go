package entities

// Dump reader backends
const (
	BackendFile = "file"
	BackendExec = "exec"
)

// Default exec backend operation names
const (
	DefaultBuildToolTypeOperation = "read-build-tool-type"
	DefaultGradleOperation        = "read-gradle-build-scan-dump"
	DefaultMavenOperation         = "read-maven-build-scan-dump"
)

// LoaderConfig represents the configuration of the build scan dump loader
type LoaderConfig struct {
	License             string
	LogLevel            string
	Concurrency         int
	Reader              ReaderConfig
	LicenseVerification LicenseVerificationConfig
}

// ReaderConfig selects and configures the dump reading backend
type ReaderConfig struct {
	Backend        string
	Command        string
	Args           []string
	TimeoutSeconds int
	Operations     ReaderOperations
}

// ReaderOperations names the exec backend sub-command of each operation.
// An empty name marks the operation as unsupported.
type ReaderOperations struct {
	BuildToolType string
	Gradle        string
	Maven         string
}

// LicenseVerificationConfig enables the OpenPGP signature check of the license file
type LicenseVerificationConfig struct {
	Keyring   string
	Signature string
}

// Enabled reports whether a keyring was configured
func (c LicenseVerificationConfig) Enabled() bool {
	return c.Keyring != ""
}

// DefaultReaderOperations returns the operation names used when none are configured
func DefaultReaderOperations() ReaderOperations {
	return ReaderOperations{
		BuildToolType: DefaultBuildToolTypeOperation,
		Gradle:        DefaultGradleOperation,
		Maven:         DefaultMavenOperation,
	}
}

// DefaultLoaderConfig returns the configuration used without a config file
func DefaultLoaderConfig() *LoaderConfig {
	return &LoaderConfig{
		LogLevel:    "info",
		Concurrency: 1,
		Reader: ReaderConfig{
			Backend:        BackendFile,
			TimeoutSeconds: 300,
			Operations:     DefaultReaderOperations(),
		},
	}
}

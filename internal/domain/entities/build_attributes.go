package entities

// BuildAttributesValue is a custom value attached to a build
type BuildAttributesValue struct {
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

// BuildAttributesLink is a custom link attached to a build
type BuildAttributesLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// BuildAttributesEnvironment describes the machine and JVM that ran the build
type BuildAttributesEnvironment struct {
	Username             *string  `json:"username,omitempty"`
	OperatingSystem      *string  `json:"operatingSystem,omitempty"`
	NumberOfCPUCores     *int     `json:"numberOfCpuCores,omitempty"`
	JreVersion           *string  `json:"jreVersion,omitempty"`
	JvmVersion           *string  `json:"jvmVersion,omitempty"`
	JvmMaxMemoryHeapSize *int64   `json:"jvmMaxMemoryHeapSize,omitempty"`
	JvmCharset           *string  `json:"jvmCharset,omitempty"`
	JvmLocale            *string  `json:"jvmLocale,omitempty"`
	PublicHostname       *string  `json:"publicHostname,omitempty"`
	LocalHostname        *string  `json:"localHostname,omitempty"`
	LocalIPAddresses     []string `json:"localIpAddresses,omitempty"`
}

// DevelocitySettings records which capture features were enabled for the build
type DevelocitySettings struct {
	BackgroundPublicationEnabled *bool `json:"backgroundPublicationEnabled,omitempty"`
	BuildOutputCapturingEnabled  *bool `json:"buildOutputCapturingEnabled,omitempty"`
	FileFingerprintCapturing     *bool `json:"fileFingerprintCapturingEnabled,omitempty"`
	TestOutputCapturingEnabled   *bool `json:"testOutputCapturingEnabled,omitempty"`
	ResourceUsageCapturing       *bool `json:"resourceUsageCapturingEnabled,omitempty"`
}

// AvoidanceOutcome tells how the work of a task or goal was (or was not) avoided
type AvoidanceOutcome string

// Avoidance outcomes reported in build cache performance data
const (
	OutcomeAvoidedUpToDate             AvoidanceOutcome = "avoided_up_to_date"
	OutcomeAvoidedFromLocalCache       AvoidanceOutcome = "avoided_from_local_cache"
	OutcomeAvoidedFromRemoteCache      AvoidanceOutcome = "avoided_from_remote_cache"
	OutcomeExecutedCacheable           AvoidanceOutcome = "executed_cacheable"
	OutcomeExecutedNotCacheable        AvoidanceOutcome = "executed_not_cacheable"
	OutcomeExecutedUnknownCacheability AvoidanceOutcome = "executed_unknown_cacheability"
	OutcomeLifecycle                   AvoidanceOutcome = "lifecycle"
	OutcomeNoSource                    AvoidanceOutcome = "no-source"
	OutcomeSkipped                     AvoidanceOutcome = "skipped"
	OutcomeUnknown                     AvoidanceOutcome = "unknown"
)

// IsAvoided reports whether the outcome saved execution time
func (o AvoidanceOutcome) IsAvoided() bool {
	switch o {
	case OutcomeAvoidedUpToDate, OutcomeAvoidedFromLocalCache, OutcomeAvoidedFromRemoteCache:
		return true
	default:
		return false
	}
}

// IsExecuted reports whether the work was actually executed
func (o AvoidanceOutcome) IsExecuted() bool {
	switch o {
	case OutcomeExecutedCacheable, OutcomeExecutedNotCacheable, OutcomeExecutedUnknownCacheability:
		return true
	default:
		return false
	}
}

// AvoidanceSavingsSummary aggregates the time saved by work avoidance, in milliseconds
type AvoidanceSavingsSummary struct {
	Total            *int64   `json:"total,omitempty"`
	Ratio            *float64 `json:"ratio,omitempty"`
	UpToDate         *int64   `json:"upToDate,omitempty"`
	LocalBuildCache  *int64   `json:"localBuildCache,omitempty"`
	RemoteBuildCache *int64   `json:"remoteBuildCache,omitempty"`
}

// FingerprintingSummary aggregates input fingerprinting work
type FingerprintingSummary struct {
	Count          *int   `json:"count,omitempty"`
	SerialDuration *int64 `json:"serialDuration,omitempty"`
}

// LocalBuildCache describes the configuration of the local build cache
type LocalBuildCache struct {
	IsEnabled                    *bool   `json:"isEnabled,omitempty"`
	IsPushEnabled                *bool   `json:"isPushEnabled,omitempty"`
	IsDisabledDueToError         *bool   `json:"isDisabledDueToError,omitempty"`
	Directory                    *string `json:"directory,omitempty"`
	RemoveUnusedEntriesAfterDays *int    `json:"removeUnusedEntriesAfterDays,omitempty"`
}

// RemoteBuildCache describes the configuration of the remote build cache
type RemoteBuildCache struct {
	ClassName            *string `json:"className,omitempty"`
	IsEnabled            *bool   `json:"isEnabled,omitempty"`
	IsPushEnabled        *bool   `json:"isPushEnabled,omitempty"`
	IsDisabledDueToError *bool   `json:"isDisabledDueToError,omitempty"`
	URL                  *string `json:"url,omitempty"`
}

// BuildCacheOverhead is the time spent moving entries in and out of the caches, in milliseconds
type BuildCacheOverhead struct {
	Uploading   *int64 `json:"uploading,omitempty"`
	Downloading *int64 `json:"downloading,omitempty"`
	Packing     *int64 `json:"packing,omitempty"`
	Unpacking   *int64 `json:"unpacking,omitempty"`
}

// BuildCaches groups the build cache configuration and overhead of a build
type BuildCaches struct {
	Local    *LocalBuildCache    `json:"local,omitempty"`
	Remote   *RemoteBuildCache   `json:"remote,omitempty"`
	Overhead *BuildCacheOverhead `json:"overhead,omitempty"`
}

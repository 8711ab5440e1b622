package entities

// GradleAttributes is the descriptive metadata of a Gradle build
type GradleAttributes struct {
	ID                        *string                     `json:"id,omitempty"`
	BuildStartTime            *int64                      `json:"buildStartTime,omitempty"`
	BuildDuration             *int64                      `json:"buildDuration,omitempty"`
	GradleVersion             *string                     `json:"gradleVersion,omitempty"`
	PluginVersion             *string                     `json:"pluginVersion,omitempty"`
	RootProjectName           *string                     `json:"rootProjectName,omitempty"`
	RequestedTasks            []string                    `json:"requestedTasks,omitempty"`
	HasFailed                 *bool                       `json:"hasFailed,omitempty"`
	HasVerificationFailure    *bool                       `json:"hasVerificationFailure,omitempty"`
	HasNonVerificationFailure *bool                       `json:"hasNonVerificationFailure,omitempty"`
	Tags                      []string                    `json:"tags,omitempty"`
	Values                    []BuildAttributesValue      `json:"values,omitempty"`
	Links                     []BuildAttributesLink       `json:"links,omitempty"`
	Environment               *BuildAttributesEnvironment `json:"environment,omitempty"`
	DevelocitySettings        *DevelocitySettings         `json:"develocitySettings,omitempty"`
}

// GradleBuildCachePerformance describes the work avoidance of a Gradle build
type GradleBuildCachePerformance struct {
	ID                         *string                    `json:"id,omitempty"`
	BuildTime                  *int64                     `json:"buildTime,omitempty"`
	EffectiveTaskExecutionTime *int64                     `json:"effectiveTaskExecutionTime,omitempty"`
	SerialTaskExecutionTime    *int64                     `json:"serialTaskExecutionTime,omitempty"`
	SerializationFactor        *float64                   `json:"serializationFactor,omitempty"`
	TaskExecution              []GradleTaskExecutionEntry `json:"taskExecution,omitempty"`
	TaskFingerprintingSummary  *FingerprintingSummary     `json:"taskFingerprintingSummary,omitempty"`
	AvoidanceSavingsSummary    *AvoidanceSavingsSummary   `json:"avoidanceSavingsSummary,omitempty"`
	BuildCaches                *BuildCaches               `json:"buildCaches,omitempty"`
}

// GradleTaskExecutionEntry is the execution record of a single task
type GradleTaskExecutionEntry struct {
	TaskPath                    string           `json:"taskPath"`
	TaskType                    *string          `json:"taskType,omitempty"`
	AvoidanceOutcome            AvoidanceOutcome `json:"avoidanceOutcome"`
	Duration                    *int64           `json:"duration,omitempty"`
	FingerprintingDuration      *int64           `json:"fingerprintingDuration,omitempty"`
	AvoidanceSavings            *int64           `json:"avoidanceSavings,omitempty"`
	CacheKey                    *string          `json:"cacheKey,omitempty"`
	CacheArtifactSize           *int64           `json:"cacheArtifactSize,omitempty"`
	CacheArtifactRejectedReason *string          `json:"cacheArtifactRejectedReason,omitempty"`
	NonCacheabilityCategory     *string          `json:"nonCacheabilityCategory,omitempty"`
	NonCacheabilityReason       *string          `json:"nonCacheabilityReason,omitempty"`
	SkipReasonMessage           *string          `json:"skipReasonMessage,omitempty"`
}

package entities

// MavenAttributes is the descriptive metadata of a Maven build
type MavenAttributes struct {
	ID                  *string                     `json:"id,omitempty"`
	BuildStartTime      *int64                      `json:"buildStartTime,omitempty"`
	BuildDuration       *int64                      `json:"buildDuration,omitempty"`
	MavenVersion        *string                     `json:"mavenVersion,omitempty"`
	ExtensionVersion    *string                     `json:"extensionVersion,omitempty"`
	TopLevelProjectName *string                     `json:"topLevelProjectName,omitempty"`
	RequestedGoals      []string                    `json:"requestedGoals,omitempty"`
	HasFailed           *bool                       `json:"hasFailed,omitempty"`
	Tags                []string                    `json:"tags,omitempty"`
	Values              []BuildAttributesValue      `json:"values,omitempty"`
	Links               []BuildAttributesLink       `json:"links,omitempty"`
	Environment         *BuildAttributesEnvironment `json:"environment,omitempty"`
	DevelocitySettings  *DevelocitySettings         `json:"develocitySettings,omitempty"`
}

// MavenBuildCachePerformance describes the work avoidance of a Maven build
type MavenBuildCachePerformance struct {
	ID                            *string                   `json:"id,omitempty"`
	BuildTime                     *int64                    `json:"buildTime,omitempty"`
	EffectiveProjectExecutionTime *int64                    `json:"effectiveProjectExecutionTime,omitempty"`
	SerialProjectExecutionTime    *int64                    `json:"serialProjectExecutionTime,omitempty"`
	SerializationFactor           *float64                  `json:"serializationFactor,omitempty"`
	GoalExecution                 []MavenGoalExecutionEntry `json:"goalExecution,omitempty"`
	GoalFingerprintingSummary     *FingerprintingSummary    `json:"goalFingerprintingSummary,omitempty"`
	AvoidanceSavingsSummary       *AvoidanceSavingsSummary  `json:"avoidanceSavingsSummary,omitempty"`
	BuildCaches                   *BuildCaches              `json:"buildCaches,omitempty"`
}

// MavenGoalExecutionEntry is the execution record of a single mojo goal
type MavenGoalExecutionEntry struct {
	MojoType                    string           `json:"mojoType"`
	GoalName                    string           `json:"goalName"`
	GoalExecutionID             *string          `json:"goalExecutionId,omitempty"`
	GoalProjectName             *string          `json:"goalProjectName,omitempty"`
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

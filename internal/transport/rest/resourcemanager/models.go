package rmapi

import "time"

const (
	StackLifecycleStateCreating = "CREATING"
	StackLifecycleStateActive   = "ACTIVE"
	StackLifecycleStateDeleting = "DELETING"
	StackLifecycleStateDeleted  = "DELETED"
	StackLifecycleStateFailed   = "FAILED"
)

const (
	JobLifecycleStateAccepted   = "ACCEPTED"
	JobLifecycleStateInProgress = "IN_PROGRESS"
	JobLifecycleStateFailed     = "FAILED"
	JobLifecycleStateSucceeded  = "SUCCEEDED"
	JobLifecycleStateCanceling  = "CANCELING"
	JobLifecycleStateCanceled   = "CANCELED"
)

const (
	JobOperationPlan          = "PLAN"
	JobOperationApply         = "APPLY"
	JobOperationDestroy       = "DESTROY"
	JobOperationImportTfState = "IMPORT_TF_STATE"
)

const (
	WorkRequestStatusAccepted   = "ACCEPTED"
	WorkRequestStatusInProgress = "IN_PROGRESS"
	WorkRequestStatusFailed     = "FAILED"
	WorkRequestStatusSucceeded  = "SUCCEEDED"
	WorkRequestStatusCanceling  = "CANCELING"
	WorkRequestStatusCanceled   = "CANCELED"
)

const (
	ConfigSourceTypeZipUpload = "ZIP_UPLOAD"
	ConfigSourceTypeGit       = "GIT_CONFIG_SOURCE"
	ConfigSourceTypeObject    = "OBJECT_STORAGE_CONFIG_SOURCE"
)

const (
	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"

	SortByTimeCreated = "TIMECREATED"
	SortByDisplayName = "DISPLAYNAME"
)

var (
	stackLifecycleStates = []string{
		StackLifecycleStateCreating, StackLifecycleStateActive, StackLifecycleStateDeleting,
		StackLifecycleStateDeleted, StackLifecycleStateFailed,
	}
	jobLifecycleStates = []string{
		JobLifecycleStateAccepted, JobLifecycleStateInProgress, JobLifecycleStateFailed,
		JobLifecycleStateSucceeded, JobLifecycleStateCanceling, JobLifecycleStateCanceled,
	}
	jobOperations = []string{
		JobOperationPlan, JobOperationApply, JobOperationDestroy, JobOperationImportTfState,
	}
	sortOrders = []string{SortOrderAsc, SortOrderDesc}
	sortBys    = []string{SortByTimeCreated, SortByDisplayName}
)

type ConfigSource struct {
	ConfigSourceType              string `json:"configSourceType"`
	WorkingDirectory              string `json:"workingDirectory,omitempty"`
	ZipFileBase64Encoded          string `json:"zipFileBase64Encoded,omitempty"`
	ConfigurationSourceProviderID string `json:"configurationSourceProviderId,omitempty"`
	RepositoryURL                 string `json:"repositoryUrl,omitempty"`
	BranchName                    string `json:"branchName,omitempty"`
	Namespace                     string `json:"namespace,omitempty"`
	BucketName                    string `json:"bucketName,omitempty"`
	Region                        string `json:"region,omitempty"`
}

type Stack struct {
	ID               string            `json:"id"`
	CompartmentID    string            `json:"compartmentId"`
	DisplayName      string            `json:"displayName"`
	Description      string            `json:"description,omitempty"`
	TimeCreated      time.Time         `json:"timeCreated"`
	LifecycleState   string            `json:"lifecycleState"`
	ConfigSource     *ConfigSource     `json:"configSource,omitempty"`
	Variables        map[string]string `json:"variables,omitempty"`
	TerraformVersion string            `json:"terraformVersion,omitempty"`
	StackDriftStatus string            `json:"stackDriftStatus,omitempty"`
	FreeformTags     map[string]string `json:"freeformTags,omitempty"`
}

type StackSummary struct {
	ID               string            `json:"id"`
	CompartmentID    string            `json:"compartmentId"`
	DisplayName      string            `json:"displayName"`
	Description      string            `json:"description,omitempty"`
	TimeCreated      time.Time         `json:"timeCreated"`
	LifecycleState   string            `json:"lifecycleState"`
	TerraformVersion string            `json:"terraformVersion,omitempty"`
	FreeformTags     map[string]string `json:"freeformTags,omitempty"`
}

type CreateStackDetails struct {
	CompartmentID    string            `json:"compartmentId"`
	DisplayName      string            `json:"displayName,omitempty"`
	Description      string            `json:"description,omitempty"`
	ConfigSource     *ConfigSource     `json:"configSource"`
	Variables        map[string]string `json:"variables,omitempty"`
	TerraformVersion string            `json:"terraformVersion,omitempty"`
	FreeformTags     map[string]string `json:"freeformTags,omitempty"`
}

type UpdateStackDetails struct {
	DisplayName      string            `json:"displayName,omitempty"`
	Description      string            `json:"description,omitempty"`
	ConfigSource     *ConfigSource     `json:"configSource,omitempty"`
	Variables        map[string]string `json:"variables,omitempty"`
	TerraformVersion string            `json:"terraformVersion,omitempty"`
	FreeformTags     map[string]string `json:"freeformTags,omitempty"`
}

type ChangeStackCompartmentDetails struct {
	CompartmentID string `json:"compartmentId"`
}

type ApplyJobPlanResolution struct {
	PlanJobID        string `json:"planJobId,omitempty"`
	IsUseLatestJobID bool   `json:"isUseLatestJobId,omitempty"`
	IsAutoApproved   bool   `json:"isAutoApproved,omitempty"`
}

type FailureDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Job struct {
	ID                     string                  `json:"id"`
	StackID                string                  `json:"stackId"`
	CompartmentID          string                  `json:"compartmentId"`
	DisplayName            string                  `json:"displayName"`
	Operation              string                  `json:"operation"`
	ApplyJobPlanResolution *ApplyJobPlanResolution `json:"applyJobPlanResolution,omitempty"`
	ResolvedPlanJobID      string                  `json:"resolvedPlanJobId,omitempty"`
	TimeCreated            time.Time               `json:"timeCreated"`
	TimeFinished           *time.Time              `json:"timeFinished,omitempty"`
	LifecycleState         string                  `json:"lifecycleState"`
	FailureDetails         *FailureDetails         `json:"failureDetails,omitempty"`
	WorkingDirectory       string                  `json:"workingDirectory,omitempty"`
	Variables              map[string]string       `json:"variables,omitempty"`
	FreeformTags           map[string]string       `json:"freeformTags,omitempty"`
}

type JobSummary struct {
	ID             string    `json:"id"`
	StackID        string    `json:"stackId"`
	CompartmentID  string    `json:"compartmentId"`
	DisplayName    string    `json:"displayName"`
	Operation      string    `json:"operation"`
	TimeCreated    time.Time `json:"timeCreated"`
	LifecycleState string    `json:"lifecycleState"`
}

type CreateJobDetails struct {
	StackID                string                  `json:"stackId"`
	DisplayName            string                  `json:"displayName,omitempty"`
	Operation              string                  `json:"operation,omitempty"`
	ApplyJobPlanResolution *ApplyJobPlanResolution `json:"applyJobPlanResolution,omitempty"`
	FreeformTags           map[string]string       `json:"freeformTags,omitempty"`
}

type UpdateJobDetails struct {
	DisplayName  string            `json:"displayName,omitempty"`
	FreeformTags map[string]string `json:"freeformTags,omitempty"`
}

type LogEntry struct {
	Type      string    `json:"type"`
	Level     string    `json:"level"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

type WorkRequestResource struct {
	EntityType string `json:"entityType"`
	ActionType string `json:"actionType"`
	Identifier string `json:"identifier"`
	EntityURI  string `json:"entityUri,omitempty"`
}

type WorkRequest struct {
	ID              string                `json:"id"`
	OperationType   string                `json:"operationType"`
	Status          string                `json:"status"`
	CompartmentID   string                `json:"compartmentId"`
	Resources       []WorkRequestResource `json:"resources"`
	PercentComplete float32               `json:"percentComplete"`
	TimeAccepted    time.Time             `json:"timeAccepted"`
	TimeStarted     *time.Time            `json:"timeStarted,omitempty"`
	TimeFinished    *time.Time            `json:"timeFinished,omitempty"`
}

type WorkRequestError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type WorkRequestLogEntry struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

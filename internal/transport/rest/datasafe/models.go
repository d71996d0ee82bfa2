package dsapi

import "time"

const (
	OnPremConnectorLifecycleStateCreating       = "CREATING"
	OnPremConnectorLifecycleStateUpdating       = "UPDATING"
	OnPremConnectorLifecycleStateActive         = "ACTIVE"
	OnPremConnectorLifecycleStateInactive       = "INACTIVE"
	OnPremConnectorLifecycleStateDeleting       = "DELETING"
	OnPremConnectorLifecycleStateDeleted        = "DELETED"
	OnPremConnectorLifecycleStateFailed         = "FAILED"
	OnPremConnectorLifecycleStateNeedsAttention = "NEEDS_ATTENTION"
)

const (
	SecurityAssessmentLifecycleStateCreating  = "CREATING"
	SecurityAssessmentLifecycleStateSucceeded = "SUCCEEDED"
	SecurityAssessmentLifecycleStateUpdating  = "UPDATING"
	SecurityAssessmentLifecycleStateDeleting  = "DELETING"
	SecurityAssessmentLifecycleStateDeleted   = "DELETED"
	SecurityAssessmentLifecycleStateFailed    = "FAILED"
)

const (
	WorkRequestStatusAccepted   = "ACCEPTED"
	WorkRequestStatusInProgress = "IN_PROGRESS"
	WorkRequestStatusFailed     = "FAILED"
	WorkRequestStatusSucceeded  = "SUCCEEDED"
	WorkRequestStatusCanceling  = "CANCELING"
	WorkRequestStatusCanceled   = "CANCELED"
	WorkRequestStatusSuspending = "SUSPENDING"
	WorkRequestStatusSuspended  = "SUSPENDED"
)

const (
	FindingSeverityHigh     = "HIGH"
	FindingSeverityMedium   = "MEDIUM"
	FindingSeverityLow      = "LOW"
	FindingSeverityEvaluate = "EVALUATE"
	FindingSeverityAdvisory = "ADVISORY"
	FindingSeverityPass     = "PASS"
)

const (
	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"

	SortByTimeCreated = "TIMECREATED"
	SortByDisplayName = "DISPLAYNAME"
)

var (
	onPremConnectorLifecycleStates = []string{
		OnPremConnectorLifecycleStateCreating, OnPremConnectorLifecycleStateUpdating,
		OnPremConnectorLifecycleStateActive, OnPremConnectorLifecycleStateInactive,
		OnPremConnectorLifecycleStateDeleting, OnPremConnectorLifecycleStateDeleted,
		OnPremConnectorLifecycleStateFailed, OnPremConnectorLifecycleStateNeedsAttention,
	}
	securityAssessmentLifecycleStates = []string{
		SecurityAssessmentLifecycleStateCreating, SecurityAssessmentLifecycleStateSucceeded,
		SecurityAssessmentLifecycleStateUpdating, SecurityAssessmentLifecycleStateDeleting,
		SecurityAssessmentLifecycleStateDeleted, SecurityAssessmentLifecycleStateFailed,
	}
	findingSeverities = []string{
		FindingSeverityHigh, FindingSeverityMedium, FindingSeverityLow,
		FindingSeverityEvaluate, FindingSeverityAdvisory, FindingSeverityPass,
	}
	sortOrders = []string{SortOrderAsc, SortOrderDesc}
	sortBys    = []string{SortByTimeCreated, SortByDisplayName}
)

type OnPremConnector struct {
	ID               string            `json:"id"`
	CompartmentID    string            `json:"compartmentId"`
	DisplayName      string            `json:"displayName"`
	Description      string            `json:"description,omitempty"`
	TimeCreated      time.Time         `json:"timeCreated"`
	LifecycleState   string            `json:"lifecycleState"`
	LifecycleDetails string            `json:"lifecycleDetails,omitempty"`
	AvailableVersion string            `json:"availableVersion,omitempty"`
	CreatedVersion   string            `json:"createdVersion,omitempty"`
	FreeformTags     map[string]string `json:"freeformTags,omitempty"`
}

type OnPremConnectorSummary struct {
	ID             string    `json:"id"`
	CompartmentID  string    `json:"compartmentId"`
	DisplayName    string    `json:"displayName"`
	TimeCreated    time.Time `json:"timeCreated"`
	LifecycleState string    `json:"lifecycleState"`
	CreatedVersion string    `json:"createdVersion,omitempty"`
}

type CreateOnPremConnectorDetails struct {
	CompartmentID string            `json:"compartmentId"`
	DisplayName   string            `json:"displayName,omitempty"`
	Description   string            `json:"description,omitempty"`
	FreeformTags  map[string]string `json:"freeformTags,omitempty"`
}

type UpdateOnPremConnectorDetails struct {
	DisplayName  string            `json:"displayName,omitempty"`
	Description  string            `json:"description,omitempty"`
	FreeformTags map[string]string `json:"freeformTags,omitempty"`
}

type ChangeOnPremConnectorCompartmentDetails struct {
	CompartmentID string `json:"compartmentId"`
}

type GenerateOnPremConnectorConfigurationDetails struct {
	Password string `json:"password"`
}

type SecurityAssessment struct {
	ID               string            `json:"id"`
	CompartmentID    string            `json:"compartmentId"`
	DisplayName      string            `json:"displayName"`
	Description      string            `json:"description,omitempty"`
	TargetIDs        []string          `json:"targetIds,omitempty"`
	Type             string            `json:"type,omitempty"`
	Schedule         string            `json:"schedule,omitempty"`
	TimeCreated      time.Time         `json:"timeCreated"`
	TimeUpdated      time.Time         `json:"timeUpdated"`
	TimeLastAssessed *time.Time        `json:"timeLastAssessed,omitempty"`
	LifecycleState   string            `json:"lifecycleState"`
	LifecycleDetails string            `json:"lifecycleDetails,omitempty"`
	FreeformTags     map[string]string `json:"freeformTags,omitempty"`
}

type SecurityAssessmentSummary struct {
	ID             string    `json:"id"`
	CompartmentID  string    `json:"compartmentId"`
	DisplayName    string    `json:"displayName"`
	TargetIDs      []string  `json:"targetIds,omitempty"`
	Type           string    `json:"type,omitempty"`
	TimeCreated    time.Time `json:"timeCreated"`
	LifecycleState string    `json:"lifecycleState"`
}

type CreateSecurityAssessmentDetails struct {
	CompartmentID string            `json:"compartmentId"`
	TargetID      string            `json:"targetId"`
	DisplayName   string            `json:"displayName,omitempty"`
	Description   string            `json:"description,omitempty"`
	Schedule      string            `json:"schedule,omitempty"`
	FreeformTags  map[string]string `json:"freeformTags,omitempty"`
}

type UpdateSecurityAssessmentDetails struct {
	DisplayName  string            `json:"displayName,omitempty"`
	Description  string            `json:"description,omitempty"`
	Schedule     string            `json:"schedule,omitempty"`
	FreeformTags map[string]string `json:"freeformTags,omitempty"`
}

type RunSecurityAssessmentDetails struct {
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
}

type References struct {
	STIG string `json:"stig,omitempty"`
	CIS  string `json:"cis,omitempty"`
	GDPR string `json:"gdpr,omitempty"`
}

type FindingSummary struct {
	Key          string      `json:"key"`
	Severity     string      `json:"severity"`
	AssessmentID string      `json:"assessmentId"`
	TargetID     string      `json:"targetId"`
	Title        string      `json:"title"`
	Remarks      string      `json:"remarks,omitempty"`
	Details      any         `json:"details,omitempty"`
	Summary      string      `json:"summary,omitempty"`
	References   *References `json:"references,omitempty"`
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

type WorkRequestSummary struct {
	ID              string    `json:"id"`
	OperationType   string    `json:"operationType"`
	Status          string    `json:"status"`
	CompartmentID   string    `json:"compartmentId"`
	PercentComplete float32   `json:"percentComplete"`
	TimeAccepted    time.Time `json:"timeAccepted"`
}

package domain

type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "PENDING"
	EnrollmentStatusAccepted  EnrollmentStatus = "ACCEPTED"
	EnrollmentStatusRejected  EnrollmentStatus = "REJECTED"
	EnrollmentStatusCancelled EnrollmentStatus = "CANCELLED"
)

// Terminal reports whether the status can never change again.
func (s EnrollmentStatus) Terminal() bool {
	return s == EnrollmentStatusAccepted || s == EnrollmentStatusRejected || s == EnrollmentStatusCancelled
}

type ScheduleType string

const (
	ScheduleTypeFirst  ScheduleType = "FIRST"
	ScheduleTypeSecond ScheduleType = "SECOND"
)

type EnrollmentDecision string

const (
	EnrollmentDecisionAccept EnrollmentDecision = "ACCEPT"
	EnrollmentDecisionReject EnrollmentDecision = "REJECT"
)

type EnrollmentRequest struct {
	ID              int32            `json:"id"`
	ApplicantUserID int32            `json:"applicant_user_id"`
	ApplicantName   string           `json:"applicant_name"`
	IdeaID          int32            `json:"idea_id"`
	RequestedPart   string           `json:"requested_part"`
	ScheduleType    ScheduleType     `json:"schedule_type"`
	Status          EnrollmentStatus `json:"status"`
	Acceptable      bool             `json:"acceptable"` // target part still had open capacity at read time
	Message         string           `json:"message"`
	CreatedOn       string           `json:"created_on"`
}

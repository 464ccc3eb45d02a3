package domain

type ApprovalStatus string

const (
	ApprovalStatusWaiting  ApprovalStatus = "WAITING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

type Applicant struct {
	ID             int32          `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Generation     int32          `json:"generation"`
	Part           string         `json:"part"`
	Phone          string         `json:"phone"`
	School         string         `json:"school"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	CreatedOn      string         `json:"created_on"`
}

// ApplicantKey is the identity used when merging fetched pages: two rows with
// the same (id, email) pair are the same applicant.
type ApplicantKey struct {
	ID    int32
	Email string
}

func (a *Applicant) Key() ApplicantKey {
	return ApplicantKey{ID: a.ID, Email: a.Email}
}

package domain

type Idea struct {
	ID           int32        `json:"id"`
	Title        string       `json:"title"`
	LeaderUserID int32        `json:"leader_user_id"`
	ScheduleType ScheduleType `json:"schedule_type"`
	Parts        []IdeaPart   `json:"parts"`
	CreatedOn    string       `json:"created_on"`
}

// IdeaPart declares the recruiting capacity for one functional track of the
// team. MaxMemberCount of zero means the part is not recruiting at all.
type IdeaPart struct {
	Part           string `json:"part"`
	MaxMemberCount int32  `json:"max_member_count"`
}

type MemberRole string

const (
	MemberRoleCreator MemberRole = "CREATOR"
	MemberRoleMember  MemberRole = "MEMBER"
)

// MemberRecord is one row of a team's membership as stored, before the
// roster view is derived from it.
type MemberRecord struct {
	IdeaID    int32      `json:"idea_id"`
	UserID    int32      `json:"user_id"`
	Name      string     `json:"name"`
	Part      string     `json:"part"`
	Role      MemberRole `json:"role"`
	Confirmed bool       `json:"confirmed"`
}

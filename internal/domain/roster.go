package domain

type RosterMember struct {
	UserID    int32      `json:"user_id"`
	Name      string     `json:"name"`
	Role      MemberRole `json:"role"`
	Confirmed bool       `json:"confirmed"`
}

type PartRoster struct {
	Part               string         `json:"part"`
	CurrentMemberCount int32          `json:"current_member_count"`
	MaxMemberCount     int32          `json:"max_member_count"`
	IsRecruiting       bool           `json:"is_recruiting"`
	Members            []RosterMember `json:"members"`
}

type TeamRoster struct {
	IdeaID int32        `json:"idea_id"`
	Title  string       `json:"title"`
	Parts  []PartRoster `json:"parts"`
}

// Package roster derives the capacity-bound team roster view from an idea's
// recorded parts and its stored membership. The derivation is pure: the same
// inputs always produce the same output, in the same order.
package roster

import (
	"clubhub-backend/internal/domain"
)

// Aggregate builds the TeamRoster for an idea. Parts appear in the idea's
// declared order; members of a part keep their stored order except that the
// CREATOR always sorts first. A part with members but no capacity row is
// appended after the declared parts, with MaxMemberCount zero, so that
// "not recruiting" stays distinguishable from "not yet filled".
func Aggregate(idea *domain.Idea, members []domain.MemberRecord) *domain.TeamRoster {
	tr := &domain.TeamRoster{
		IdeaID: idea.ID,
		Title:  idea.Title,
	}

	byPart := make(map[string][]domain.RosterMember)
	var extraParts []string
	declared := make(map[string]bool, len(idea.Parts))
	for _, p := range idea.Parts {
		declared[p.Part] = true
	}

	for _, m := range members {
		rm := domain.RosterMember{
			UserID:    m.UserID,
			Name:      m.Name,
			Role:      m.Role,
			Confirmed: m.Confirmed,
		}
		if !declared[m.Part] && len(byPart[m.Part]) == 0 {
			extraParts = append(extraParts, m.Part)
		}
		if rm.Role == domain.MemberRoleCreator {
			byPart[m.Part] = append([]domain.RosterMember{rm}, byPart[m.Part]...)
		} else {
			byPart[m.Part] = append(byPart[m.Part], rm)
		}
	}

	for _, p := range idea.Parts {
		tr.Parts = append(tr.Parts, buildPart(p.Part, p.MaxMemberCount, byPart[p.Part]))
	}
	for _, part := range extraParts {
		tr.Parts = append(tr.Parts, buildPart(part, 0, byPart[part]))
	}
	return tr
}

func buildPart(part string, maxMembers int32, members []domain.RosterMember) domain.PartRoster {
	if members == nil {
		members = []domain.RosterMember{}
	}
	return domain.PartRoster{
		Part:               part,
		CurrentMemberCount: int32(len(members)),
		MaxMemberCount:     maxMembers,
		IsRecruiting:       maxMembers > 0,
		Members:            members,
	}
}

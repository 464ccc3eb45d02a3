package workflow

import (
	"context"
	"fmt"
	"sync"

	"clubhub-backend/internal/domain"
)

// EnrollmentController mediates team-leader decisions on received
// enrollments, applicant-side cancellations, and leader-only member removal.
// Destructive operations reflect only confirmed server state: on any error
// the cached projection is left exactly as it was.
type EnrollmentController struct {
	store   EnrollmentStore
	session Session

	mu            sync.Mutex
	received      map[domain.ScheduleType][]domain.EnrollmentRequest
	sent          map[domain.ScheduleType][]domain.EnrollmentRequest
	roster        *domain.TeamRoster
	readabilities map[domain.ScheduleType]bool
	staleReceived bool
	staleRoster   bool
	inFlight      map[int32]bool
	closed        bool
}

func NewEnrollmentController(store EnrollmentStore, session Session) *EnrollmentController {
	return &EnrollmentController{
		store:    store,
		session:  session,
		received: make(map[domain.ScheduleType][]domain.EnrollmentRequest),
		sent:     make(map[domain.ScheduleType][]domain.EnrollmentRequest),
		inFlight: make(map[int32]bool),
	}
}

// RefreshReceived reloads the received-enrollments view for one round.
func (c *EnrollmentController) RefreshReceived(ctx context.Context, schedule domain.ScheduleType) error {
	enrollments, err := c.store.ListReceived(ctx, schedule)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.received[schedule] = enrollments
	c.staleReceived = false
	return nil
}

// RefreshSent reloads the caller's outgoing enrollments for one round.
func (c *EnrollmentController) RefreshSent(ctx context.Context, schedule domain.ScheduleType) error {
	enrollments, err := c.store.ListSent(ctx, schedule)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.sent[schedule] = enrollments
	return nil
}

// RefreshRoster reloads the current-team roster view.
func (c *EnrollmentController) RefreshRoster(ctx context.Context) error {
	teamRoster, err := c.store.Roster(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.roster = teamRoster
	c.staleRoster = false
	return nil
}

// Determine accepts or rejects a pending enrollment. The cached acceptable
// flag is never trusted for ACCEPT; the store re-validates capacity and a
// lost race surfaces as domain.CapacityExceededError, distinct from a
// generic conflict. The decision is never replayed automatically.
func (c *EnrollmentController) Determine(ctx context.Context, enrollmentID int32, decision domain.EnrollmentDecision) error {
	c.mu.Lock()
	enr := c.findReceivedLocked(enrollmentID)
	if enr == nil {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: fmt.Sprintf("enrollment %d is not in the received view", enrollmentID)}
	}
	if enr.Status != domain.EnrollmentStatusPending {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: fmt.Sprintf("enrollment %d is already %s", enrollmentID, enr.Status)}
	}
	if c.inFlight[enrollmentID] {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: fmt.Sprintf("a decision for enrollment %d is already in flight", enrollmentID)}
	}
	c.inFlight[enrollmentID] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inFlight, enrollmentID)
		c.mu.Unlock()
	}()

	if err := c.store.Determine(ctx, enrollmentID, decision); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	if current := c.findReceivedLocked(enrollmentID); current != nil {
		if decision == domain.EnrollmentDecisionAccept {
			current.Status = domain.EnrollmentStatusAccepted
		} else {
			current.Status = domain.EnrollmentStatusRejected
		}
	}
	// Accepting changes both the received view (acceptable flags of other
	// pending requests) and the roster; both need a re-fetch.
	c.staleReceived = true
	c.staleRoster = true
	return nil
}

// Cancel withdraws the caller's own pending enrollment. Nothing was ever
// added to a roster, so no roster invalidation follows.
func (c *EnrollmentController) Cancel(ctx context.Context, enrollmentID int32) error {
	c.mu.Lock()
	enr := c.findSentLocked(enrollmentID)
	if enr == nil {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: fmt.Sprintf("enrollment %d is not in the sent view", enrollmentID)}
	}
	if enr.ApplicantUserID != c.session.UserID {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: "only the original applicant can cancel an enrollment"}
	}
	if enr.Status != domain.EnrollmentStatusPending {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: fmt.Sprintf("enrollment %d is already %s", enrollmentID, enr.Status)}
	}
	if c.inFlight[enrollmentID] {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: fmt.Sprintf("a request for enrollment %d is already in flight", enrollmentID)}
	}
	c.inFlight[enrollmentID] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inFlight, enrollmentID)
		c.mu.Unlock()
	}()

	if err := c.store.Cancel(ctx, enrollmentID); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	if current := c.findSentLocked(enrollmentID); current != nil {
		current.Status = domain.EnrollmentStatusCancelled
	}
	return nil
}

// RemoveMember removes an unconfirmed MEMBER from the caller's team. The
// preconditions (caller is CREATOR, target is an unconfirmed MEMBER) are
// checked locally against the cached roster before the request goes out, and
// re-checked by the store.
func (c *EnrollmentController) RemoveMember(ctx context.Context, ideaID, memberID int32) error {
	c.mu.Lock()
	if c.roster == nil || c.roster.IdeaID != ideaID {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: "roster is not loaded for this team"}
	}
	creator := findRosterCreator(c.roster)
	if creator == nil || creator.UserID != c.session.UserID {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: "only the team creator can remove members"}
	}
	target := findRosterMember(c.roster, memberID)
	if target == nil {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: fmt.Sprintf("member %d is not on the roster", memberID)}
	}
	if target.Role == domain.MemberRoleCreator {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: "the team creator cannot be removed"}
	}
	if target.Confirmed {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: "confirmed members can only be removed through the admin path"}
	}
	c.mu.Unlock()

	if err := c.store.RemoveMember(ctx, ideaID, memberID); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	removeFromRoster(c.roster, memberID)
	return nil
}

// ReadableSchedules reports, per recruiting round, whether the caller may
// view sent/received enrollment data for that round. It is a capability
// check, cached after the first fetch.
func (c *EnrollmentController) ReadableSchedules(ctx context.Context) (map[domain.ScheduleType]bool, error) {
	c.mu.Lock()
	if c.readabilities != nil {
		cached := make(map[domain.ScheduleType]bool, len(c.readabilities))
		for k, v := range c.readabilities {
			cached[k] = v
		}
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	readabilities, err := c.store.Readabilities(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.readabilities = readabilities
	}
	result := make(map[domain.ScheduleType]bool, len(readabilities))
	for k, v := range readabilities {
		result[k] = v
	}
	return result, nil
}

// Received returns the cached received-enrollments view for one round.
func (c *EnrollmentController) Received(schedule domain.ScheduleType) []domain.EnrollmentRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.EnrollmentRequest(nil), c.received[schedule]...)
}

// Sent returns the cached outgoing-enrollments view for one round.
func (c *EnrollmentController) Sent(schedule domain.ScheduleType) []domain.EnrollmentRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.EnrollmentRequest(nil), c.sent[schedule]...)
}

// Roster returns the cached roster view, or nil when none is loaded.
func (c *EnrollmentController) Roster() *domain.TeamRoster {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roster
}

// Stale reports whether the received or roster views need a re-fetch after a
// confirmed decision.
func (c *EnrollmentController) Stale() (received, roster bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staleReceived, c.staleRoster
}

// Close discards the projection. Results of requests still in flight are not
// applied after Close.
func (c *EnrollmentController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *EnrollmentController) findReceivedLocked(enrollmentID int32) *domain.EnrollmentRequest {
	for schedule := range c.received {
		for i := range c.received[schedule] {
			if c.received[schedule][i].ID == enrollmentID {
				return &c.received[schedule][i]
			}
		}
	}
	return nil
}

func (c *EnrollmentController) findSentLocked(enrollmentID int32) *domain.EnrollmentRequest {
	for schedule := range c.sent {
		for i := range c.sent[schedule] {
			if c.sent[schedule][i].ID == enrollmentID {
				return &c.sent[schedule][i]
			}
		}
	}
	return nil
}

func findRosterCreator(tr *domain.TeamRoster) *domain.RosterMember {
	for i := range tr.Parts {
		for j := range tr.Parts[i].Members {
			if tr.Parts[i].Members[j].Role == domain.MemberRoleCreator {
				return &tr.Parts[i].Members[j]
			}
		}
	}
	return nil
}

func findRosterMember(tr *domain.TeamRoster, userID int32) *domain.RosterMember {
	for i := range tr.Parts {
		for j := range tr.Parts[i].Members {
			if tr.Parts[i].Members[j].UserID == userID {
				return &tr.Parts[i].Members[j]
			}
		}
	}
	return nil
}

func removeFromRoster(tr *domain.TeamRoster, userID int32) {
	for i := range tr.Parts {
		part := &tr.Parts[i]
		for j := range part.Members {
			if part.Members[j].UserID == userID {
				part.Members = append(part.Members[:j], part.Members[j+1:]...)
				part.CurrentMemberCount--
				return
			}
		}
	}
}

package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"clubhub-backend/internal/domain"
)

// ScreeningPageSize is the number of applicant rows shown per page.
const ScreeningPageSize = 10

type Tab string

const (
	TabPending Tab = "pending"
	TabHistory Tab = "history"
)

// ScreeningController mediates admin decisions against pending applicants.
// The projection is a single map keyed by (id, email) plus partition
// functions, so moving an applicant between the pending and history tabs is
// one field mutation rather than surgery across two lists.
type ScreeningController struct {
	store ScreeningStore

	mu         sync.Mutex
	applicants map[domain.ApplicantKey]*domain.Applicant
	order      []domain.ApplicantKey
	inFlight   map[int32]bool
	activeTab  Tab
	closed     bool
}

func NewScreeningController(store ScreeningStore) *ScreeningController {
	return &ScreeningController{
		store:      store,
		applicants: make(map[domain.ApplicantKey]*domain.Applicant),
		inFlight:   make(map[int32]bool),
		activeTab:  TabPending,
	}
}

// Refresh replaces the projection with a fresh snapshot. Within one refresh,
// later rows for the same (id, email) identity replace earlier ones; the
// identity keeps its first-seen position.
func (c *ScreeningController) Refresh(ctx context.Context) error {
	fresh := make(map[domain.ApplicantKey]*domain.Applicant)
	var order []domain.ApplicantKey

	var page, pages int32 = 1, 1
	for page <= pages {
		applicants, total, err := c.store.ListApplicants(ctx, page, ScreeningPageSize)
		if err != nil {
			return err
		}
		pages = (total + ScreeningPageSize - 1) / ScreeningPageSize
		for i := range applicants {
			a := applicants[i]
			key := a.Key()
			if _, seen := fresh[key]; !seen {
				order = append(order, key)
			}
			fresh[key] = &a
		}
		if len(applicants) == 0 {
			break
		}
		page++
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.applicants = fresh
	c.order = order
	return nil
}

// Approve moves a WAITING applicant to APPROVED.
func (c *ScreeningController) Approve(ctx context.Context, applicantID int32) error {
	return c.decide(ctx, applicantID, domain.ApprovalStatusWaiting, domain.ApprovalStatusApproved, c.store.Approve)
}

// Reject moves a WAITING applicant to REJECTED.
func (c *ScreeningController) Reject(ctx context.Context, applicantID int32) error {
	return c.decide(ctx, applicantID, domain.ApprovalStatusWaiting, domain.ApprovalStatusRejected, c.store.Reject)
}

// Reset moves a REJECTED applicant back to WAITING, the only backward edge
// in the screening lifecycle. On success the active tab flips back to
// pending so the corrected applicant is visible again.
func (c *ScreeningController) Reset(ctx context.Context, applicantID int32) error {
	if err := c.decide(ctx, applicantID, domain.ApprovalStatusRejected, domain.ApprovalStatusWaiting, c.store.Reset); err != nil {
		return err
	}
	c.mu.Lock()
	c.activeTab = TabPending
	c.mu.Unlock()
	return nil
}

func (c *ScreeningController) decide(
	ctx context.Context,
	applicantID int32,
	from, to domain.ApprovalStatus,
	op func(ctx context.Context, applicantID int32) error,
) error {
	c.mu.Lock()
	applicant := c.findLocked(applicantID)
	if applicant == nil {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: fmt.Sprintf("applicant %d is not in the current snapshot", applicantID)}
	}
	if applicant.ApprovalStatus != from {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: fmt.Sprintf("applicant %d is %s, expected %s", applicantID, applicant.ApprovalStatus, from)}
	}
	if c.inFlight[applicantID] {
		c.mu.Unlock()
		return &domain.ValidationError{Msg: fmt.Sprintf("a decision for applicant %d is already in flight", applicantID)}
	}
	c.inFlight[applicantID] = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inFlight, applicantID)
		c.mu.Unlock()
	}()

	if err := op(ctx, applicantID); err != nil {
		// Another admin decided first: the snapshot is stale, so replace it
		// before reporting the conflict. The decision itself is never retried.
		if errors.Is(err, domain.ErrConflict) {
			_ = c.Refresh(ctx)
		}
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	// The snapshot may have been replaced while the request was in flight;
	// apply the confirmed transition to whichever record now holds the id.
	if current := c.findLocked(applicantID); current != nil {
		current.ApprovalStatus = to
	}
	return nil
}

func (c *ScreeningController) findLocked(applicantID int32) *domain.Applicant {
	for _, key := range c.order {
		if key.ID == applicantID {
			return c.applicants[key]
		}
	}
	return nil
}

// ListPending returns one page of applicants still WAITING, with the total
// page count. The requested page clamps into [1, totalPages].
func (c *ScreeningController) ListPending(page int32) ([]domain.Applicant, int32) {
	return c.partition(page, func(a *domain.Applicant) bool {
		return a.ApprovalStatus == domain.ApprovalStatusWaiting
	})
}

// ListHistory returns one page of decided applicants (APPROVED or REJECTED),
// with the total page count.
func (c *ScreeningController) ListHistory(page int32) ([]domain.Applicant, int32) {
	return c.partition(page, func(a *domain.Applicant) bool {
		return a.ApprovalStatus != domain.ApprovalStatusWaiting
	})
}

func (c *ScreeningController) partition(page int32, keep func(*domain.Applicant) bool) ([]domain.Applicant, int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var matched []domain.Applicant
	for _, key := range c.order {
		if a := c.applicants[key]; a != nil && keep(a) {
			matched = append(matched, *a)
		}
	}

	totalPages := (int32(len(matched)) + ScreeningPageSize - 1) / ScreeningPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * ScreeningPageSize
	end := start + ScreeningPageSize
	if start > int32(len(matched)) {
		start = int32(len(matched))
	}
	if end > int32(len(matched)) {
		end = int32(len(matched))
	}
	return matched[start:end], totalPages
}

// ActiveTab reports which tab the view should show.
func (c *ScreeningController) ActiveTab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTab
}

// SetActiveTab records the tab the admin navigated to.
func (c *ScreeningController) SetActiveTab(tab Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTab = tab
}

// Close discards the projection. Results of requests still in flight are not
// applied after Close; the requests themselves are not aborted.
func (c *ScreeningController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

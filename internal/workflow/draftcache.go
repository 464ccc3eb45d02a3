package workflow

import (
	"sync"
	"time"

	"clubhub-backend/internal/domain"

	"github.com/google/uuid"
)

// EnrollmentDraft is a not-yet-committed enrollment carried across a
// navigation boundary, e.g. from the idea detail page to the apply form.
type EnrollmentDraft struct {
	IdeaID       int32
	Part         string
	ScheduleType domain.ScheduleType
	Message      string
}

type draftEntry struct {
	draft     EnrollmentDraft
	expiresAt time.Time
}

// DraftCache hands a draft from one page to the next through an opaque key
// instead of ambient storage. Entries are single use and expire after the
// configured TTL.
type DraftCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]draftEntry
	now     func() time.Time
}

func NewDraftCache(ttl time.Duration) *DraftCache {
	return &DraftCache{
		ttl:     ttl,
		entries: make(map[string]draftEntry),
		now:     time.Now,
	}
}

// Put stores the draft and returns the key to pass through navigation.
func (c *DraftCache) Put(draft EnrollmentDraft) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}

	key := uuid.New().String()
	c.entries[key] = draftEntry{draft: draft, expiresAt: now.Add(c.ttl)}
	return key
}

// Take retrieves and removes the draft for the key. The second return is
// false when the key is unknown, already taken, or expired.
func (c *DraftCache) Take(key string) (EnrollmentDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return EnrollmentDraft{}, false
	}
	delete(c.entries, key)
	if c.now().After(entry.expiresAt) {
		return EnrollmentDraft{}, false
	}
	return entry.draft, true
}

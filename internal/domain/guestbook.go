package domain

import (
	"context"
	"errors"
	"time"

	"communityguestbook/internal/validation"
)

// Sentinel errors for guestbook operations.
var (
	ErrEntryNotFound  = errors.New("guestbook entry not found")
	ErrMalformedToken = errors.New("malformed unlock token")
)

// ModerationOutcome tags the result of a token-driven moderation action.
type ModerationOutcome string

const (
	// OutcomeUnlocked means the entry was made publicly visible by this call.
	OutcomeUnlocked ModerationOutcome = "unlocked"
	// OutcomeDeleted means the entry was removed by this call.
	OutcomeDeleted ModerationOutcome = "deleted"
	// OutcomeAlreadyResolved means no pending entry matched the token. It
	// deliberately covers "never existed", "already unlocked", and "already
	// deleted" so a caller cannot probe whether a token was ever valid.
	OutcomeAlreadyResolved ModerationOutcome = "already_resolved"
)

// GuestbookEntry is a visitor-submitted entry. Entries start invisible and
// become visible only through the unlock token mailed to the webmaster.
// swagger:model GuestbookEntry
type GuestbookEntry struct {
	ID          int64     `json:"id"`
	ScopeID     int64     `json:"scope_id"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	UnlockToken string    `json:"-"`
	Visible     bool      `json:"visible"`
}

// NewGuestbookEntry returns a pending entry for the given scope. ID is set by
// the repository on insert.
func NewGuestbookEntry(scopeID int64, name, location, email, message, unlockToken string, createdAt time.Time) *GuestbookEntry {
	return &GuestbookEntry{
		ScopeID:     scopeID,
		CreatedAt:   createdAt,
		Name:        name,
		Location:    location,
		Email:       email,
		Message:     message,
		UnlockToken: unlockToken,
		Visible:     false,
	}
}

// EntryView is a visible entry prepared for public listing.
// swagger:model EntryView
type EntryView struct {
	ID      int64  `json:"id"`
	Ordinal string `json:"ordinal"`
	Date    string `json:"date"`
	Author  string `json:"author"`
	Message string `json:"message"`
}

// SubmitResult is the outcome of a validated submission. When Accepted is
// false, Fields carries the per-field validation results so the form can be
// re-rendered with the original input.
// swagger:model SubmitResult
type SubmitResult struct {
	Accepted bool              `json:"accepted"`
	Fields   validation.Result `json:"fields"`
}

// DeleteConfirmation is the payload of the first phase of a token delete:
// a summary the moderator reviews before confirming.
// swagger:model DeleteConfirmation
type DeleteConfirmation struct {
	Author    string `json:"author"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// UnlockTokenGenerator mints single-use unlock tokens.
type UnlockTokenGenerator interface {
	Generate() (string, error)
}

// PermissionCheck decides whether the create affordance is offered for a
// scope. Enforcement happens upstream; this only drives the listing flag.
type PermissionCheck interface {
	CanCreate(scopeID int64) bool
}

// TokenVerifier verifies a moderator bearer token and returns the moderator ID.
type TokenVerifier interface {
	Verify(token string) (moderatorID string, err error)
}

// GuestbookRepository defines the interface for entry storage. UnlockPending,
// DeleteByToken, and DeleteByID report whether a row was affected; each must
// be a single conditional statement so concurrent duplicates race safely.
type GuestbookRepository interface {
	Insert(ctx context.Context, entry *GuestbookEntry) error
	GetByToken(ctx context.Context, unlockToken string, scopeID int64) (*GuestbookEntry, error)
	UnlockPending(ctx context.Context, unlockToken string, scopeID int64) (unlocked bool, err error)
	DeleteByToken(ctx context.Context, unlockToken string) (deleted bool, err error)
	DeleteByID(ctx context.Context, id, scopeID int64) (deleted bool, err error)
	ListVisible(ctx context.Context, scopeID int64) ([]*GuestbookEntry, error)
}

// GuestbookService defines the moderation workflow around guestbook entries.
type GuestbookService interface {
	Submit(ctx context.Context, scopeID int64, input map[string]string) (*SubmitResult, error)
	Unlock(ctx context.Context, unlockToken string, scopeID int64) (ModerationOutcome, error)
	RequestDelete(ctx context.Context, unlockToken string, scopeID int64) (*DeleteConfirmation, ModerationOutcome, error)
	ConfirmDelete(ctx context.Context, unlockToken string) (ModerationOutcome, error)
	AdminDelete(ctx context.Context, entryID, scopeID int64) error
	ListVisible(ctx context.Context, scopeID int64, truncate bool) ([]*EntryView, error)
}

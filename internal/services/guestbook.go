package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"communityguestbook/internal/adapters/token"
	"communityguestbook/internal/domain"
	"communityguestbook/internal/validation"
)

type guestbookService struct {
	repo         domain.GuestbookRepository
	tokens       domain.UnlockTokenGenerator
	emailService domain.EmailService
	baseURL      string
	logger       *slog.Logger
	now          func() time.Time
}

// NewGuestbookService creates a GuestbookService. baseURL is the public base
// URL used to build the unlock and delete capability links.
func NewGuestbookService(repo domain.GuestbookRepository, tokens domain.UnlockTokenGenerator, emailService domain.EmailService, baseURL string, logger *slog.Logger) domain.GuestbookService {
	return &guestbookService{
		repo:         repo,
		tokens:       tokens,
		emailService: emailService,
		baseURL:      baseURL,
		logger:       logger,
		now:          time.Now,
	}
}

func submitRuleset() *validation.Ruleset {
	return validation.NewRuleset().
		Add("name", validation.NotEmpty{}).
		Add("location", validation.Optional{}).
		Add("message", validation.NotEmpty{}).
		Add("email", validation.EmailAddress{}).
		Add("terms", validation.True{})
}

// Submit validates the raw form input and, on success, stores a pending entry
// and mails the moderation links to the webmaster. A mail failure does not
// roll back the entry: the submission is valid, the entry just stays pending
// until a new link is issued out of band.
func (s *guestbookService) Submit(ctx context.Context, scopeID int64, input map[string]string) (*domain.SubmitResult, error) {
	fields, ok := validation.NewValidator(submitRuleset()).Validate(input)
	if !ok {
		return &domain.SubmitResult{Accepted: false, Fields: fields}, nil
	}

	unlockToken, err := s.tokens.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate unlock token: %w", err)
	}

	entry := domain.NewGuestbookEntry(
		scopeID,
		fields["name"].Value,
		fields["location"].Value,
		fields["email"].Value,
		fields["message"].Value,
		unlockToken,
		s.now(),
	)
	if err := s.repo.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store entry: %w", err)
	}

	data := &domain.ModerationRequestEmailData{
		Name:      entry.Name,
		Location:  entry.Location,
		Email:     entry.Email,
		Message:   entry.Message,
		Date:      formatDate(entry.CreatedAt),
		Time:      formatClock(entry.CreatedAt),
		UnlockURL: fmt.Sprintf("%s/guestbook/%d/unlock?token=%s", s.baseURL, scopeID, unlockToken),
		DeleteURL: fmt.Sprintf("%s/guestbook/%d/delete?token=%s", s.baseURL, scopeID, unlockToken),
	}
	if err := s.emailService.SendModerationRequest(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "moderation request mail failed, entry stays pending",
			"entry_id", entry.ID, "scope_id", scopeID, "err", err)
	}

	return &domain.SubmitResult{Accepted: true, Fields: fields}, nil
}

// Unlock flips a pending entry to visible. The update is a single conditional
// statement, so of two concurrent calls with the same token exactly one
// observes the flip and the other gets OutcomeAlreadyResolved.
func (s *guestbookService) Unlock(ctx context.Context, unlockToken string, scopeID int64) (domain.ModerationOutcome, error) {
	if !token.Valid(unlockToken) {
		return "", domain.ErrMalformedToken
	}
	unlocked, err := s.repo.UnlockPending(ctx, unlockToken, scopeID)
	if err != nil {
		return "", fmt.Errorf("failed to unlock entry: %w", err)
	}
	if !unlocked {
		return domain.OutcomeAlreadyResolved, nil
	}
	return domain.OutcomeUnlocked, nil
}

// RequestDelete is the first phase of a token delete: it returns a summary of
// the entry for the moderator to review and never deletes anything.
func (s *guestbookService) RequestDelete(ctx context.Context, unlockToken string, scopeID int64) (*domain.DeleteConfirmation, domain.ModerationOutcome, error) {
	if !token.Valid(unlockToken) {
		return nil, "", domain.ErrMalformedToken
	}
	entry, err := s.repo.GetByToken(ctx, unlockToken, scopeID)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return nil, domain.OutcomeAlreadyResolved, nil
		}
		return nil, "", fmt.Errorf("failed to load entry: %w", err)
	}
	confirmation := &domain.DeleteConfirmation{
		Author:    formatAuthor(entry.Name, entry.Location),
		Message:   entry.Message,
		CreatedAt: formatDate(entry.CreatedAt),
	}
	return confirmation, "", nil
}

// ConfirmDelete is the second phase: a single DELETE keyed by token. A token
// that matches nothing, for whatever reason, reports OutcomeAlreadyResolved.
func (s *guestbookService) ConfirmDelete(ctx context.Context, unlockToken string) (domain.ModerationOutcome, error) {
	if !token.Valid(unlockToken) {
		return "", domain.ErrMalformedToken
	}
	deleted, err := s.repo.DeleteByToken(ctx, unlockToken)
	if err != nil {
		return "", fmt.Errorf("failed to delete entry: %w", err)
	}
	if !deleted {
		return domain.OutcomeAlreadyResolved, nil
	}
	return domain.OutcomeDeleted, nil
}

// AdminDelete removes an entry by id and scope. Unlike the token paths the
// caller is authenticated and the id is expected to exist, so a miss is an
// error rather than a neutral outcome.
func (s *guestbookService) AdminDelete(ctx context.Context, entryID, scopeID int64) error {
	deleted, err := s.repo.DeleteByID(ctx, entryID, scopeID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if !deleted {
		return domain.ErrEntryNotFound
	}
	return nil
}

// ListVisible returns the visible entries of a scope, newest first, prepared
// for display. Ordinals are zero-padded to at least three digits.
func (s *guestbookService) ListVisible(ctx context.Context, scopeID int64, truncate bool) ([]*domain.EntryView, error) {
	entries, err := s.repo.ListVisible(ctx, scopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	width := len(strconv.Itoa(len(entries)))
	if width < 3 {
		width = 3
	}
	views := make([]*domain.EntryView, 0, len(entries))
	for i, entry := range entries {
		message := entry.Message
		if truncate {
			message = truncateMessage(message)
		}
		views = append(views, &domain.EntryView{
			ID:      entry.ID,
			Ordinal: fmt.Sprintf("%0*d", width, i+1),
			Date:    formatDate(entry.CreatedAt),
			Author:  formatAuthor(entry.Name, entry.Location),
			Message: message,
		})
	}
	return views, nil
}

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityguestbook/internal/delivery/http/helpers"
	"communityguestbook/internal/domain"
	"communityguestbook/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "00112233445566778899aabbccddeeff"

// fakeGuestbookService implements domain.GuestbookService for handler tests.
type fakeGuestbookService struct {
	submitResult  *domain.SubmitResult
	submitErr     error
	unlockOutcome domain.ModerationOutcome
	unlockErr     error
	confirmation  *domain.DeleteConfirmation
	requestOut    domain.ModerationOutcome
	requestErr    error
	confirmOut    domain.ModerationOutcome
	confirmErr    error
	adminErr      error
	listViews     []*domain.EntryView
	listErr       error

	confirmCalled bool
	requestCalled bool
	listTruncate  bool
}

func (f *fakeGuestbookService) Submit(ctx context.Context, scopeID int64, input map[string]string) (*domain.SubmitResult, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitResult, nil
}

func (f *fakeGuestbookService) Unlock(ctx context.Context, tok string, scopeID int64) (domain.ModerationOutcome, error) {
	if f.unlockErr != nil {
		return "", f.unlockErr
	}
	return f.unlockOutcome, nil
}

func (f *fakeGuestbookService) RequestDelete(ctx context.Context, tok string, scopeID int64) (*domain.DeleteConfirmation, domain.ModerationOutcome, error) {
	f.requestCalled = true
	if f.requestErr != nil {
		return nil, "", f.requestErr
	}
	return f.confirmation, f.requestOut, nil
}

func (f *fakeGuestbookService) ConfirmDelete(ctx context.Context, tok string) (domain.ModerationOutcome, error) {
	f.confirmCalled = true
	if f.confirmErr != nil {
		return "", f.confirmErr
	}
	return f.confirmOut, nil
}

func (f *fakeGuestbookService) AdminDelete(ctx context.Context, entryID, scopeID int64) error {
	return f.adminErr
}

func (f *fakeGuestbookService) ListVisible(ctx context.Context, scopeID int64, truncate bool) ([]*domain.EntryView, error) {
	f.listTruncate = truncate
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listViews, nil
}

// fakePermission implements domain.PermissionCheck.
type fakePermission struct {
	allowed bool
}

func (f *fakePermission) CanCreate(scopeID int64) bool { return f.allowed }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (map[string]any, *helpers.APIError) {
	t.Helper()
	var envelope struct {
		Data  map[string]any    `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope.Data, envelope.Error
}

func TestGuestbookController_List(t *testing.T) {
	svc := &fakeGuestbookService{listViews: []*domain.EntryView{
		{ID: 1, Ordinal: "001", Date: "01.03.2025", Author: "Ann", Message: "Hi"},
	}}
	c := NewGuestbookController(testLogger(), svc, &fakePermission{allowed: true})

	req := httptest.NewRequest(http.MethodGet, "/guestbook/7/entries", nil)
	req.SetPathValue("scopeID", "7")
	rr := httptest.NewRecorder()
	c.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	data, apiErr := decodeEnvelope(t, rr)
	require.Nil(t, apiErr)
	assert.Equal(t, true, data["create_allowed"])
	entries, ok := data["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 1)
	assert.False(t, svc.listTruncate, "the full listing carries complete messages")
}

func TestGuestbookController_List_TeaserTruncates(t *testing.T) {
	svc := &fakeGuestbookService{}
	c := NewGuestbookController(testLogger(), svc, &fakePermission{})

	req := httptest.NewRequest(http.MethodGet, "/guestbook/7/entries?teaser=true", nil)
	req.SetPathValue("scopeID", "7")
	rr := httptest.NewRecorder()
	c.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, svc.listTruncate)
}

func TestGuestbookController_List_BadScope(t *testing.T) {
	c := NewGuestbookController(testLogger(), &fakeGuestbookService{}, &fakePermission{})
	req := httptest.NewRequest(http.MethodGet, "/guestbook/abc/entries", nil)
	req.SetPathValue("scopeID", "abc")
	rr := httptest.NewRecorder()
	c.List(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGuestbookController_Submit(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		service    *fakeGuestbookService
		wantStatus int
		wantCode   string
	}{
		{
			name: "accepted",
			body: `{"name":"Ann","location":"","message":"Hi","email":"a@b.com","terms":true}`,
			service: &fakeGuestbookService{submitResult: &domain.SubmitResult{
				Accepted: true,
				Fields:   validation.Result{"name": {Value: "Ann", Valid: true}},
			}},
			wantStatus: http.StatusCreated,
		},
		{
			name: "rejected with field errors",
			body: `{"name":"","message":"Hi","email":"a@b.com","terms":true}`,
			service: &fakeGuestbookService{submitResult: &domain.SubmitResult{
				Accepted: false,
				Fields:   validation.Result{"name": {Valid: false, Message: "must not be empty"}},
			}},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   helpers.ErrCodeUnprocessable,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			service:    &fakeGuestbookService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "service error",
			body:       `{"name":"Ann","message":"Hi","email":"a@b.com","terms":true}`,
			service:    &fakeGuestbookService{submitErr: assert.AnError},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewGuestbookController(testLogger(), tt.service, &fakePermission{})
			req := httptest.NewRequest(http.MethodPost, "/guestbook/7/entries", bytes.NewBufferString(tt.body))
			req.SetPathValue("scopeID", "7")
			rr := httptest.NewRecorder()
			c.Submit(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				_, apiErr := decodeEnvelope(t, rr)
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
			}
		})
	}
}

func TestGuestbookController_Submit_EchoesFieldsOn422(t *testing.T) {
	svc := &fakeGuestbookService{submitResult: &domain.SubmitResult{
		Accepted: false,
		Fields:   validation.Result{"email": {Value: "nope", Valid: false, Message: "must be a valid e-mail address"}},
	}}
	c := NewGuestbookController(testLogger(), svc, &fakePermission{})
	req := httptest.NewRequest(http.MethodPost, "/guestbook/7/entries", bytes.NewBufferString(`{"email":"nope"}`))
	req.SetPathValue("scopeID", "7")
	rr := httptest.NewRecorder()
	c.Submit(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	data, apiErr := decodeEnvelope(t, rr)
	require.NotNil(t, apiErr)
	fields, ok := data["fields"].(map[string]any)
	require.True(t, ok, "rejected submissions must echo the field results")
	assert.Contains(t, fields, "email")
}

func TestGuestbookController_Unlock(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		service     *fakeGuestbookService
		wantStatus  int
		wantOutcome string
	}{
		{
			name:        "unlocked",
			token:       testToken,
			service:     &fakeGuestbookService{unlockOutcome: domain.OutcomeUnlocked},
			wantStatus:  http.StatusOK,
			wantOutcome: "unlocked",
		},
		{
			name:        "already resolved",
			token:       testToken,
			service:     &fakeGuestbookService{unlockOutcome: domain.OutcomeAlreadyResolved},
			wantStatus:  http.StatusOK,
			wantOutcome: "already_resolved",
		},
		{
			name:       "malformed token",
			token:      "zz",
			service:    &fakeGuestbookService{unlockErr: domain.ErrMalformedToken},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "store error",
			token:      testToken,
			service:    &fakeGuestbookService{unlockErr: assert.AnError},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewGuestbookController(testLogger(), tt.service, &fakePermission{})
			req := httptest.NewRequest(http.MethodGet, "/guestbook/7/unlock?token="+tt.token, nil)
			req.SetPathValue("scopeID", "7")
			rr := httptest.NewRecorder()
			c.Unlock(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantOutcome != "" {
				data, _ := decodeEnvelope(t, rr)
				assert.Equal(t, tt.wantOutcome, data["outcome"])
			}
		})
	}
}

func TestGuestbookController_Delete_TwoPhase(t *testing.T) {
	t.Run("first phase returns confirmation without deleting", func(t *testing.T) {
		svc := &fakeGuestbookService{confirmation: &domain.DeleteConfirmation{
			Author: "Ann from Berlin", Message: "Hi", CreatedAt: "01.03.2025",
		}}
		c := NewGuestbookController(testLogger(), svc, &fakePermission{})
		req := httptest.NewRequest(http.MethodGet, "/guestbook/7/delete?token="+testToken, nil)
		req.SetPathValue("scopeID", "7")
		rr := httptest.NewRecorder()
		c.Delete(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, svc.requestCalled)
		assert.False(t, svc.confirmCalled, "first phase must never delete")

		data, _ := decodeEnvelope(t, rr)
		assert.Equal(t, "pending_confirmation", data["outcome"])
		assert.Contains(t, data["confirm_url"], "confirmed=true")
		entry, ok := data["entry"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ann from Berlin", entry["author"])
	})

	t.Run("confirmed deletes", func(t *testing.T) {
		svc := &fakeGuestbookService{confirmOut: domain.OutcomeDeleted}
		c := NewGuestbookController(testLogger(), svc, &fakePermission{})
		req := httptest.NewRequest(http.MethodGet, "/guestbook/7/delete?token="+testToken+"&confirmed=true", nil)
		req.SetPathValue("scopeID", "7")
		rr := httptest.NewRecorder()
		c.Delete(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, svc.confirmCalled)
		assert.False(t, svc.requestCalled)
		data, _ := decodeEnvelope(t, rr)
		assert.Equal(t, "deleted", data["outcome"])
	})

	t.Run("already resolved", func(t *testing.T) {
		svc := &fakeGuestbookService{requestOut: domain.OutcomeAlreadyResolved}
		c := NewGuestbookController(testLogger(), svc, &fakePermission{})
		req := httptest.NewRequest(http.MethodGet, "/guestbook/7/delete?token="+testToken, nil)
		req.SetPathValue("scopeID", "7")
		rr := httptest.NewRecorder()
		c.Delete(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		data, _ := decodeEnvelope(t, rr)
		assert.Equal(t, "already_resolved", data["outcome"])
	})

	t.Run("malformed token", func(t *testing.T) {
		svc := &fakeGuestbookService{requestErr: domain.ErrMalformedToken}
		c := NewGuestbookController(testLogger(), svc, &fakePermission{})
		req := httptest.NewRequest(http.MethodGet, "/guestbook/7/delete?token=zz", nil)
		req.SetPathValue("scopeID", "7")
		rr := httptest.NewRecorder()
		c.Delete(rr, req)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestGuestbookController_AdminDelete(t *testing.T) {
	tests := []struct {
		name       string
		service    *fakeGuestbookService
		wantStatus int
	}{
		{name: "deleted", service: &fakeGuestbookService{}, wantStatus: http.StatusNoContent},
		{name: "not found", service: &fakeGuestbookService{adminErr: domain.ErrEntryNotFound}, wantStatus: http.StatusNotFound},
		{name: "store error", service: &fakeGuestbookService{adminErr: assert.AnError}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewGuestbookController(testLogger(), tt.service, &fakePermission{})
			req := httptest.NewRequest(http.MethodDelete, "/guestbook/7/entries/42", nil)
			req.SetPathValue("scopeID", "7")
			req.SetPathValue("entryID", "42")
			rr := httptest.NewRecorder()
			c.AdminDelete(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

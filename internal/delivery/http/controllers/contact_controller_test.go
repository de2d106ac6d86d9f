package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityguestbook/internal/delivery/http/helpers"
	"communityguestbook/internal/domain"
	"communityguestbook/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContactService implements domain.ContactService for handler tests.
type fakeContactService struct {
	groups       []domain.ContactGroup
	directoryErr error
	submitResult *domain.SubmitResult
	submitErr    error
}

func (f *fakeContactService) Directory(ctx context.Context) ([]domain.ContactGroup, error) {
	if f.directoryErr != nil {
		return nil, f.directoryErr
	}
	return f.groups, nil
}

func (f *fakeContactService) SubmitMessage(ctx context.Context, input map[string]string) (*domain.SubmitResult, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitResult, nil
}

func TestContactController_Directory(t *testing.T) {
	email := "ann@example.org"
	svc := &fakeContactService{groups: []domain.ContactGroup{
		{Division: "Board", Rows: []domain.ContactRow{
			{Name: "Ann Acker", Position: "Chair", Phone: "030 1234567", Email: &email},
		}},
	}}
	c := NewContactController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	rr := httptest.NewRecorder()
	c.Directory(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope struct {
		Data struct {
			Groups []domain.ContactGroup `json:"groups"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Len(t, envelope.Data.Groups, 1)
	assert.Equal(t, "Board", envelope.Data.Groups[0].Division)
}

func TestContactController_Directory_Error(t *testing.T) {
	c := NewContactController(testLogger(), &fakeContactService{directoryErr: assert.AnError})
	rr := httptest.NewRecorder()
	c.Directory(rr, httptest.NewRequest(http.MethodGet, "/contacts", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestContactController_SubmitMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		service    *fakeContactService
		wantStatus int
	}{
		{
			name:       "accepted",
			body:       `{"name":"Ann","email":"a@b.com","message":"Hello","terms":true}`,
			service:    &fakeContactService{submitResult: &domain.SubmitResult{Accepted: true}},
			wantStatus: http.StatusCreated,
		},
		{
			name: "rejected",
			body: `{"name":"Ann","email":"bad"}`,
			service: &fakeContactService{submitResult: &domain.SubmitResult{
				Accepted: false,
				Fields:   validation.Result{"email": {Valid: false, Message: "must be a valid e-mail address"}},
			}},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "malformed json",
			body:       `{`,
			service:    &fakeContactService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "send failure",
			body:       `{"name":"Ann","email":"a@b.com","message":"Hello","terms":true}`,
			service:    &fakeContactService{submitErr: assert.AnError},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContactController(testLogger(), tt.service)
			req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			c.SubmitMessage(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusUnprocessableEntity {
				var envelope struct {
					Error *helpers.APIError `json:"error"`
				}
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, helpers.ErrCodeUnprocessable, envelope.Error.Code)
			}
		})
	}
}

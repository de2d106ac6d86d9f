package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"communityguestbook/internal/delivery/http/helpers"
	"communityguestbook/internal/domain"
)

// SubmitEntryRequest is the request body for POST /guestbook/{scopeID}/entries.
// Fields are validated by the guestbook ruleset, not here; malformed JSON is
// the only thing rejected at decode time.
type SubmitEntryRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Message  string `json:"message"`
	Email    string `json:"email"`
	Terms    bool   `json:"terms"`
}

func (s SubmitEntryRequest) toInput() map[string]string {
	input := map[string]string{
		"name":     s.Name,
		"location": s.Location,
		"message":  s.Message,
		"email":    s.Email,
	}
	if s.Terms {
		input["terms"] = "true"
	}
	return input
}

// EntryListResponse is the response body for GET /guestbook/{scopeID}/entries.
// swagger:model EntryListResponse
type EntryListResponse struct {
	Entries       []*domain.EntryView `json:"entries"`
	CreateAllowed bool                `json:"create_allowed"`
}

// ModerationResponse is the response body for the token-driven unlock and
// delete endpoints.
// swagger:model ModerationResponse
type ModerationResponse struct {
	Outcome    domain.ModerationOutcome   `json:"outcome"`
	Message    string                     `json:"message"`
	Entry      *domain.DeleteConfirmation `json:"entry,omitempty"`
	ConfirmURL string                     `json:"confirm_url,omitempty"`
}

const alreadyResolvedMessage = "The entry was already unlocked or deleted."

// GuestbookController handles guestbook endpoints.
type GuestbookController struct {
	Logger      *slog.Logger
	Service     domain.GuestbookService
	Permissions domain.PermissionCheck
}

// NewGuestbookController creates a GuestbookController.
func NewGuestbookController(logger *slog.Logger, svc domain.GuestbookService, permissions domain.PermissionCheck) *GuestbookController {
	return &GuestbookController{
		Logger:      logger,
		Service:     svc,
		Permissions: permissions,
	}
}

// List godoc
// @Summary List visible guestbook entries
// @Description Returns the publicly visible entries of a scope, newest first, plus whether the create form should be offered. Pending entries are never included. Messages are complete unless teaser=true requests the shortened form.
// @Tags guestbook
// @Produce json
// @Param scopeID path int true "Guestbook scope"
// @Param teaser query bool false "Truncate messages for a teaser view"
// @Success 200 {object} helpers.APIResponse "data contains entries and create_allowed"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guestbook/{scopeID}/entries [get]
func (c *GuestbookController) List(w http.ResponseWriter, r *http.Request) {
	scopeID, ok := pathInt64(w, r, "scopeID")
	if !ok {
		return
	}
	teaser := r.URL.Query().Get("teaser") == "true"
	entries, err := c.Service.ListVisible(r.Context(), scopeID, teaser)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EntryListResponse{
		Entries:       entries,
		CreateAllowed: c.Permissions.CanCreate(scopeID),
	})
}

// Submit godoc
// @Summary Submit a guestbook entry
// @Description Validates the submission and stores it pending moderation. The entry becomes visible only after the mailed unlock link is used.
// @Tags guestbook
// @Accept json
// @Produce json
// @Param scopeID path int true "Guestbook scope"
// @Param body body SubmitEntryRequest true "Entry fields"
// @Success 201 {object} helpers.APIResponse "data contains the submit result"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable; data echoes per-field results"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guestbook/{scopeID}/entries [post]
func (c *GuestbookController) Submit(w http.ResponseWriter, r *http.Request) {
	scopeID, ok := pathInt64(w, r, "scopeID")
	if !ok {
		return
	}
	var req SubmitEntryRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	result, err := c.Service.Submit(r.Context(), scopeID, req.toInput())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if !result.Accepted {
		helpers.WriteJSONUnprocessable(w, result)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, result)
}

// Unlock godoc
// @Summary Unlock a pending entry
// @Description Consumes the mailed unlock token and makes the entry visible. A token that matches nothing reports already_resolved, whether it was consumed before or never existed.
// @Tags guestbook
// @Produce json
// @Param scopeID path int true "Guestbook scope"
// @Param token query string true "Unlock token (32 lowercase hex characters)"
// @Success 200 {object} helpers.APIResponse "data contains outcome unlocked or already_resolved"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable (malformed token)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guestbook/{scopeID}/unlock [get]
func (c *GuestbookController) Unlock(w http.ResponseWriter, r *http.Request) {
	scopeID, ok := pathInt64(w, r, "scopeID")
	if !ok {
		return
	}
	outcome, err := c.Service.Unlock(r.Context(), r.URL.Query().Get("token"), scopeID)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedToken) {
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessable, "invalid token given")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	resp := ModerationResponse{Outcome: outcome, Message: alreadyResolvedMessage}
	if outcome == domain.OutcomeUnlocked {
		resp.Message = "The entry is now publicly visible."
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete an entry by token
// @Description Two-phase delete. Without confirmed=true the entry summary is returned for review and nothing is deleted; with confirmed=true the entry is removed. A token that matches nothing reports already_resolved.
// @Tags guestbook
// @Produce json
// @Param scopeID path int true "Guestbook scope"
// @Param token query string true "Unlock token (32 lowercase hex characters)"
// @Param confirmed query bool false "Set true to perform the deletion"
// @Success 200 {object} helpers.APIResponse "data contains outcome pending_confirmation, deleted, or already_resolved"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable (malformed token)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guestbook/{scopeID}/delete [get]
func (c *GuestbookController) Delete(w http.ResponseWriter, r *http.Request) {
	scopeID, ok := pathInt64(w, r, "scopeID")
	if !ok {
		return
	}
	tokenParam := r.URL.Query().Get("token")
	confirmed := r.URL.Query().Get("confirmed")

	if confirmed != "true" && confirmed != "1" {
		confirmation, outcome, err := c.Service.RequestDelete(r.Context(), tokenParam, scopeID)
		if err != nil {
			if errors.Is(err, domain.ErrMalformedToken) {
				helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessable, "invalid token given")
				return
			}
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
			return
		}
		if outcome == domain.OutcomeAlreadyResolved {
			helpers.WriteJSONSuccess(w, http.StatusOK, ModerationResponse{Outcome: outcome, Message: alreadyResolvedMessage})
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, ModerationResponse{
			Outcome:    "pending_confirmation",
			Message:    "Review the entry, then follow the confirmation link to delete it.",
			Entry:      confirmation,
			ConfirmURL: fmt.Sprintf("%s?token=%s&confirmed=true", r.URL.Path, tokenParam),
		})
		return
	}

	outcome, err := c.Service.ConfirmDelete(r.Context(), tokenParam)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedToken) {
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeUnprocessable, "invalid token given")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	resp := ModerationResponse{Outcome: outcome, Message: alreadyResolvedMessage}
	if outcome == domain.OutcomeDeleted {
		resp.Message = "The entry has been deleted."
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// AdminDelete godoc
// @Summary Delete an entry by id
// @Description Removes an entry by id and scope. Requires a moderator Bearer token. Unlike the token paths, a missing entry is reported as not_found.
// @Tags guestbook
// @Produce json
// @Security BearerAuth
// @Param scopeID path int true "Guestbook scope"
// @Param entryID path int true "Entry id"
// @Success 204 "entry deleted"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /guestbook/{scopeID}/entries/{entryID} [delete]
func (c *GuestbookController) AdminDelete(w http.ResponseWriter, r *http.Request) {
	scopeID, ok := pathInt64(w, r, "scopeID")
	if !ok {
		return
	}
	entryID, ok := pathInt64(w, r, "entryID")
	if !ok {
		return
	}
	if err := c.Service.AdminDelete(r.Context(), entryID, scopeID); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no entry found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathInt64 parses an int64 path value; on failure it writes a 400 and
// returns ok=false.
func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

package controllers

import (
	"log/slog"
	"net/http"

	"communityguestbook/internal/delivery/http/helpers"
	"communityguestbook/internal/domain"
)

// ContactMessageRequest is the request body for POST /contact.
type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Terms   bool   `json:"terms"`
}

func (c ContactMessageRequest) toInput() map[string]string {
	input := map[string]string{
		"name":    c.Name,
		"email":   c.Email,
		"message": c.Message,
	}
	if c.Terms {
		input["terms"] = "true"
	}
	return input
}

// DirectoryResponse is the response body for GET /contacts.
// swagger:model DirectoryResponse
type DirectoryResponse struct {
	Groups []domain.ContactGroup `json:"groups"`
}

// ContactController handles the contact directory and the contact form.
type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

// NewContactController creates a ContactController.
func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{Logger: logger, Service: svc}
}

// Directory godoc
// @Summary Contact directory
// @Description Returns the roster grouped by division. Repeated position labels within a group are blanked; members with a second phone number get an extra row carrying only that number.
// @Tags contact
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the directory groups"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contacts [get]
func (c *ContactController) Directory(w http.ResponseWriter, r *http.Request) {
	groups, err := c.Service.Directory(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DirectoryResponse{Groups: groups})
}

// SubmitMessage godoc
// @Summary Send a contact form message
// @Description Validates the message and forwards it to the webmaster. Nothing is stored.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body ContactMessageRequest true "Message fields"
// @Success 201 {object} helpers.APIResponse "data contains the submit result"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable; data echoes per-field results"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [post]
func (c *ContactController) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactMessageRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	result, err := c.Service.SubmitMessage(r.Context(), req.toInput())
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

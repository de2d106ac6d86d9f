package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ModerationRequestEmailData holds data for the new-entry moderation email.
// UnlockURL and DeleteURL carry the same capability token and differ only in
// the action they trigger.
type ModerationRequestEmailData struct {
	Name      string
	Location  string
	Email     string
	Message   string
	Date      string
	Time      string
	UnlockURL string
	DeleteURL string
}

// ContactMessageEmailData holds data for a contact form message.
type ContactMessageEmailData struct {
	Name    string
	Email   string
	Message string
}

// EmailService defines the contract for sending domain-level emails.
// Both mails go to the configured webmaster address.
type EmailService interface {
	SendModerationRequest(ctx context.Context, data *ModerationRequestEmailData) error
	SendContactMessage(ctx context.Context, data *ContactMessageEmailData) error
}

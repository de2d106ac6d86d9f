package services

import (
	"context"
	"fmt"
	"log/slog"

	"communityguestbook/internal/domain"
)

type emailService struct {
	mailer    domain.Mailer
	renderer  domain.EmailTemplateRenderer
	webmaster string
	logger    *slog.Logger
}

// NewEmailService returns an EmailService that renders templates and delivers
// to the configured webmaster address.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, webmaster string, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, webmaster: webmaster, logger: logger}
}

// SendModerationRequest sends the new-entry mail with the unlock and delete
// links using the "moderation_request" template.
func (s *emailService) SendModerationRequest(ctx context.Context, data *domain.ModerationRequestEmailData) error {
	if data == nil {
		return fmt.Errorf("moderation request data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("moderation_request", data)
	if err != nil {
		return fmt.Errorf("failed to render moderation_request template: %w", err)
	}
	if err := s.mailer.Send(s.webmaster, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send moderation request: %w", err)
	}
	s.logger.InfoContext(ctx, "moderation request sent", "to", s.webmaster)
	return nil
}

// SendContactMessage forwards a contact form message using the
// "contact_message" template.
func (s *emailService) SendContactMessage(ctx context.Context, data *domain.ContactMessageEmailData) error {
	if data == nil {
		return fmt.Errorf("contact message data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact_message", data)
	if err != nil {
		return fmt.Errorf("failed to render contact_message template: %w", err)
	}
	if err := s.mailer.Send(s.webmaster, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}
	s.logger.InfoContext(ctx, "contact message sent", "to", s.webmaster)
	return nil
}

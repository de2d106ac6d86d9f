package services

import (
	"context"
	"fmt"
	"strings"

	"communityguestbook/internal/domain"
	"communityguestbook/internal/validation"
)

// German mobile network prefixes. A number whose digit-only form starts with
// one of these gets the messaging-app affordance in the directory.
var mobilePrefixes = []string{
	"0150", "01505", "0151", "01511", "01512", "01514", "01515", "0152", "01520", "01522",
	"01525", "0155", "0157", "01570", "01575", "01577", "01578", "0159", "0160", "0162",
	"0163", "0170", "0171", "0172", "0173", "0174", "0175", "0176", "0177", "0178", "0179",
}

type contactService struct {
	roster       domain.RosterRepository
	emailService domain.EmailService
}

// NewContactService creates a ContactService over the given roster.
func NewContactService(roster domain.RosterRepository, emailService domain.EmailService) domain.ContactService {
	return &contactService{roster: roster, emailService: emailService}
}

// Directory builds the grouped contact directory from the roster. The roster
// is expected ordered by division then position; grouping preserves that
// order. The position label is suppressed when the previous row already
// showed the same division and position. Members with a second phone number
// get an extra row carrying only that number.
func (s *contactService) Directory(ctx context.Context) ([]domain.ContactGroup, error) {
	members, err := s.roster.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	var groups []domain.ContactGroup
	lastDivision := ""
	lastPosition := ""
	for _, m := range members {
		if len(groups) == 0 || groups[len(groups)-1].Division != m.Division {
			groups = append(groups, domain.ContactGroup{Division: m.Division})
		}
		group := &groups[len(groups)-1]

		position := m.Position
		if lastDivision == m.Division && lastPosition == m.Position {
			position = ""
		}
		email := m.Email
		group.Rows = append(group.Rows, domain.ContactRow{
			Name:     m.Name,
			Position: position,
			Phone:    m.Phone1,
			Email:    &email,
			Mobile:   IsMobileNumber(m.Phone1),
		})

		if m.Phone2 != "" {
			group.Rows = append(group.Rows, domain.ContactRow{
				Phone:  m.Phone2,
				Email:  nil,
				Mobile: IsMobileNumber(m.Phone2),
			})
		}

		lastDivision = m.Division
		lastPosition = m.Position
	}
	return groups, nil
}

func messageRuleset() *validation.Ruleset {
	return validation.NewRuleset().
		Add("name", validation.NotEmpty{}).
		Add("email", validation.NotEmpty{}, validation.EmailAddress{}).
		Add("message", validation.NotEmpty{}).
		Add("terms", validation.True{})
}

// SubmitMessage validates the contact form input and forwards the message to
// the webmaster. Nothing is persisted.
func (s *contactService) SubmitMessage(ctx context.Context, input map[string]string) (*domain.SubmitResult, error) {
	fields, ok := validation.NewValidator(messageRuleset()).Validate(input)
	if !ok {
		return &domain.SubmitResult{Accepted: false, Fields: fields}, nil
	}
	data := &domain.ContactMessageEmailData{
		Name:    fields["name"].Value,
		Email:   fields["email"].Value,
		Message: fields["message"].Value,
	}
	if err := s.emailService.SendContactMessage(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to send contact message: %w", err)
	}
	return &domain.SubmitResult{Accepted: true, Fields: fields}, nil
}

// IsMobileNumber reports whether the number belongs to a mobile network.
// All non-digit characters are stripped before prefix matching, so formatted
// numbers classify the same as their bare form.
func IsMobileNumber(number string) bool {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	stripped := digits.String()
	for _, prefix := range mobilePrefixes {
		if strings.HasPrefix(stripped, prefix) {
			return true
		}
	}
	return false
}

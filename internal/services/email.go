package services

import (
	"context"
	"fmt"

	"mentormatch/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService creates an EmailService that renders templates and sends
// them through the configured mailer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	subject, html, text, err := s.renderer.Render("booking_confirmation", data)
	if err != nil {
		return fmt.Errorf("render booking confirmation: %w", err)
	}
	if err := s.mailer.Send(data.MenteeEmail, subject, html, text); err != nil {
		return fmt.Errorf("send booking confirmation: %w", err)
	}
	return nil
}

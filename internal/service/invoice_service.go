package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/stjohns-golfday/golfday-api/internal/invoice"
	"github.com/stjohns-golfday/golfday-api/internal/mailer"
	"github.com/stjohns-golfday/golfday-api/internal/repository"
)

// ErrEmailDispatch marks failures of the outbound email collaborator.
// The registration itself is untouched: the caller must tell the user
// the registration is saved and the invoice remains viewable on-screen.
var ErrEmailDispatch = errors.New("failed to send invoice email")

type InvoiceService interface {
	// SendInvoice renders and emails the invoice for a registration,
	// returning its invoice number.
	SendInvoice(ctx context.Context, registrationID uuid.UUID) (string, error)
}

type invoiceService struct {
	regRepo repository.RegistrationRepository
	sender  mailer.Sender
	from    string
	log     *zerolog.Logger
}

func NewInvoiceService(regRepo repository.RegistrationRepository, sender mailer.Sender, from string, log *zerolog.Logger) InvoiceService {
	return &invoiceService{regRepo: regRepo, sender: sender, from: from, log: log}
}

func (s *invoiceService) SendInvoice(ctx context.Context, registrationID uuid.UUID) (string, error) {
	reg, err := s.regRepo.FindByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRegistrationNotFound
		}
		return "", fmt.Errorf("look up registration: %w", err)
	}

	players, err := s.regRepo.FindPlayers(ctx, reg.ID)
	if err != nil {
		return "", fmt.Errorf("look up players: %w", err)
	}

	html, err := invoice.Render(invoice.BuildData(reg, players))
	if err != nil {
		return "", fmt.Errorf("render invoice: %w", err)
	}

	sendID, err := s.sender.Send(ctx, mailer.Message{
		From:    s.from,
		To:      reg.ContactEmail,
		Subject: "Golf Day Registration Invoice - " + reg.InvoiceNumber,
		HTML:    html,
	})
	if err != nil {
		s.log.Error().Err(err).
			Str("registration_id", reg.ID.String()).
			Str("invoice_number", reg.InvoiceNumber).
			Msg("invoice email failed")
		return "", fmt.Errorf("%w: %v", ErrEmailDispatch, err)
	}

	s.log.Info().
		Str("registration_id", reg.ID.String()).
		Str("invoice_number", reg.InvoiceNumber).
		Str("send_id", sendID).
		Msg("invoice email sent")

	return reg.InvoiceNumber, nil
}

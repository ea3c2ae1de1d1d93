package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stjohns-golfday/golfday-api/internal/invoice"
	"github.com/stjohns-golfday/golfday-api/internal/models"
	"github.com/stjohns-golfday/golfday-api/internal/repository"
)

var (
	ErrPackageNotFound      = errors.New("package not found")
	ErrRegistrationNotFound = errors.New("registration not found")
)

// createAttempts bounds the retry loop around duplicate invoice
// numbers. Two concurrent submissions can compute the same next number;
// the unique index rejects the loser and one retry is normally enough.
const createAttempts = 3

// Publisher announces created registrations on the message bus. May be
// nil when messaging is not configured.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

type PlayerInput struct {
	PlayerName          string
	PlayerEmail         string
	TshirtSize          string
	DietaryRequirements string
	AttendingGalaDinner bool
}

type CreateRegistrationInput struct {
	UserID           *uuid.UUID
	ContactFirstName string
	ContactLastName  string
	ContactEmail     string
	ContactPhone     string
	CompanyName      string
	CompanyAddress   string
	PackageID        uuid.UUID
	TotalAmount      decimal.Decimal
	Players          []PlayerInput
}

type RegistrationService interface {
	CreateRegistration(ctx context.Context, in CreateRegistrationInput) (*models.Registration, []models.Player, error)
	GetRegistration(ctx context.Context, id uuid.UUID) (*models.Registration, []models.Player, error)
}

type registrationService struct {
	regRepo     repository.RegistrationRepository
	packageRepo repository.PackageRepository
	publisher   Publisher
	log         *zerolog.Logger
}

func NewRegistrationService(regRepo repository.RegistrationRepository, packageRepo repository.PackageRepository, publisher Publisher, log *zerolog.Logger) RegistrationService {
	return &registrationService{
		regRepo:     regRepo,
		packageRepo: packageRepo,
		publisher:   publisher,
		log:         log,
	}
}

// CreateRegistration persists the registration and its players
// atomically: the invoice-number scan, the registration insert and the
// player batch insert share one transaction, so either every row for a
// submission becomes visible or none do.
func (s *registrationService) CreateRegistration(ctx context.Context, in CreateRegistrationInput) (*models.Registration, []models.Player, error) {
	if _, err := s.packageRepo.FindByID(ctx, in.PackageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPackageNotFound
		}
		return nil, nil, fmt.Errorf("look up package: %w", err)
	}

	var (
		reg     *models.Registration
		players []models.Player
		err     error
	)
	for attempt := 1; attempt <= createAttempts; attempt++ {
		reg, players, err = s.createOnce(ctx, in)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		s.log.Warn().
			Int("attempt", attempt).
			Msg("invoice number collided with a concurrent registration, retrying")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create registration: %w", err)
	}

	s.log.Info().
		Str("registration_id", reg.ID.String()).
		Str("invoice_number", reg.InvoiceNumber).
		Int("players", len(players)).
		Msg("registration created")

	// Fire-and-forget announcement; a bus failure never fails the request.
	if s.publisher != nil {
		if err := s.publisher.Publish("registration.created", reg); err != nil {
			s.log.Warn().Err(err).Msg("failed to publish registration.created")
		}
	}

	return reg, players, nil
}

func (s *registrationService) createOnce(ctx context.Context, in CreateRegistrationInput) (*models.Registration, []models.Player, error) {
	var (
		reg     *models.Registration
		players []models.Player
	)

	err := s.regRepo.Transaction(ctx, func(tx *gorm.DB) error {
		numbers, err := s.regRepo.InvoiceNumbers(ctx, tx)
		if err != nil {
			return err
		}

		r := &models.Registration{
			UserID:           in.UserID,
			ContactFirstName: in.ContactFirstName,
			ContactLastName:  in.ContactLastName,
			ContactEmail:     in.ContactEmail,
			ContactPhone:     in.ContactPhone,
			CompanyName:      in.CompanyName,
			CompanyAddress:   in.CompanyAddress,
			PackageID:        in.PackageID,
			TotalAmount:      in.TotalAmount,
			InvoiceNumber:    invoice.Next(numbers),
			PaymentStatus:    models.PaymentStatusPending,
		}
		if err := s.regRepo.Create(ctx, tx, r); err != nil {
			return err
		}

		if len(in.Players) > 0 {
			rows := make([]models.Player, len(in.Players))
			for i, p := range in.Players {
				rows[i] = models.Player{
					RegistrationID:      r.ID,
					PlayerName:          p.PlayerName,
					PlayerEmail:         p.PlayerEmail,
					TshirtSize:          p.TshirtSize,
					DietaryRequirements: p.DietaryRequirements,
					AttendingGalaDinner: p.AttendingGalaDinner,
					SortOrder:           i,
				}
			}
			if err := s.regRepo.CreatePlayers(ctx, tx, rows); err != nil {
				return err
			}
			players = rows
		}

		reg = r
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if players == nil {
		players = []models.Player{}
	}
	return reg, players, nil
}

func (s *registrationService) GetRegistration(ctx context.Context, id uuid.UUID) (*models.Registration, []models.Player, error) {
	reg, err := s.regRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRegistrationNotFound
		}
		return nil, nil, err
	}

	players, err := s.regRepo.FindPlayers(ctx, reg.ID)
	if err != nil {
		return nil, nil, err
	}
	if players == nil {
		players = []models.Player{}
	}
	return reg, players, nil
}

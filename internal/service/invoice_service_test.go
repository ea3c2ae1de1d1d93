package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stjohns-golfday/golfday-api/internal/mailer"
	"github.com/stjohns-golfday/golfday-api/internal/models"
)

// --- Mock RegistrationRepository ---

type mockRegistrationRepo struct {
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*models.Registration, error)
	findPlayersFn func(ctx context.Context, registrationID uuid.UUID) ([]models.Player, error)
}

func (m *mockRegistrationRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
func (m *mockRegistrationRepo) Create(ctx context.Context, tx *gorm.DB, reg *models.Registration) error {
	return nil
}
func (m *mockRegistrationRepo) CreatePlayers(ctx context.Context, tx *gorm.DB, players []models.Player) error {
	return nil
}
func (m *mockRegistrationRepo) InvoiceNumbers(ctx context.Context, tx *gorm.DB) ([]string, error) {
	return nil, nil
}
func (m *mockRegistrationRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRegistrationRepo) FindPlayers(ctx context.Context, registrationID uuid.UUID) ([]models.Player, error) {
	if m.findPlayersFn != nil {
		return m.findPlayersFn(ctx, registrationID)
	}
	return nil, nil
}
// --- Mock Sender ---

type mockSender struct {
	sendFn func(ctx context.Context, msg mailer.Message) (string, error)
	sent   []mailer.Message
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) (string, error) {
	m.sent = append(m.sent, msg)
	if m.sendFn != nil {
		return m.sendFn(ctx, msg)
	}
	return "email-1", nil
}

func invoiceTestRegistration() *models.Registration {
	return &models.Registration{
		ID:               uuid.New(),
		ContactFirstName: "Jane",
		ContactLastName:  "Doe",
		ContactEmail:     "jane@x.com",
		TotalAmount:      decimal.NewFromFloat(5500),
		InvoiceNumber:    "INV-000007",
		PaymentStatus:    models.PaymentStatusPending,
		CreatedAt:        time.Now(),
		Package:          &models.Package{Name: "Fourball", Price: decimal.NewFromFloat(5500)},
	}
}

// --- Tests ---

func TestSendInvoice_Success(t *testing.T) {
	reg := invoiceTestRegistration()
	repo := &mockRegistrationRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
			return reg, nil
		},
		findPlayersFn: func(ctx context.Context, registrationID uuid.UUID) ([]models.Player, error) {
			return []models.Player{
				{PlayerName: "Jane Doe", TshirtSize: "M", AttendingGalaDinner: true},
				{PlayerName: "John Smith", TshirtSize: "L"},
			}, nil
		},
	}
	sender := &mockSender{}
	log := zerolog.Nop()

	svc := NewInvoiceService(repo, sender, "golf@example.com", &log)
	number, err := svc.SendInvoice(context.Background(), reg.ID)

	require.NoError(t, err)
	assert.Equal(t, "INV-000007", number)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "golf@example.com", msg.From)
	assert.Equal(t, "jane@x.com", msg.To)
	assert.Equal(t, "Golf Day Registration Invoice - INV-000007", msg.Subject)
	assert.Contains(t, msg.HTML, "Jane Doe")
	assert.Contains(t, msg.HTML, "John Smith")
	assert.Contains(t, msg.HTML, "None specified")
	assert.Contains(t, msg.HTML, "R5500.00")
}

func TestSendInvoice_RegistrationNotFound(t *testing.T) {
	repo := &mockRegistrationRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	sender := &mockSender{}
	log := zerolog.Nop()

	svc := NewInvoiceService(repo, sender, "golf@example.com", &log)
	_, err := svc.SendInvoice(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrRegistrationNotFound)
	assert.Empty(t, sender.sent, "no email may be sent for an unknown registration")
}

func TestSendInvoice_EmailFailureKeepsRegistration(t *testing.T) {
	reg := invoiceTestRegistration()
	repo := &mockRegistrationRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
			return reg, nil
		},
	}
	sender := &mockSender{
		sendFn: func(ctx context.Context, msg mailer.Message) (string, error) {
			return "", assert.AnError
		},
	}
	log := zerolog.Nop()

	svc := NewInvoiceService(repo, sender, "golf@example.com", &log)
	_, err := svc.SendInvoice(context.Background(), reg.ID)

	assert.ErrorIs(t, err, ErrEmailDispatch)
}

func TestSendInvoice_MissingPackageStillRenders(t *testing.T) {
	reg := invoiceTestRegistration()
	reg.Package = nil
	repo := &mockRegistrationRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
			return reg, nil
		},
	}
	sender := &mockSender{}
	log := zerolog.Nop()

	svc := NewInvoiceService(repo, sender, "golf@example.com", &log)
	number, err := svc.SendInvoice(context.Background(), reg.ID)

	require.NoError(t, err)
	assert.Equal(t, "INV-000007", number)
	require.Len(t, sender.sent, 1)
}

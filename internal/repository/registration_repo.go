package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stjohns-golfday/golfday-api/internal/models"
)

type RegistrationRepository interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	Create(ctx context.Context, tx *gorm.DB, reg *models.Registration) error
	CreatePlayers(ctx context.Context, tx *gorm.DB, players []models.Player) error
	InvoiceNumbers(ctx context.Context, tx *gorm.DB) ([]string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Registration, error)
	FindPlayers(ctx context.Context, registrationID uuid.UUID) ([]models.Player, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// Transaction runs fn in one database transaction; a returned error
// rolls everything back.
func (r *registrationRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *registrationRepository) Create(ctx context.Context, tx *gorm.DB, reg *models.Registration) error {
	return tx.WithContext(ctx).Create(reg).Error
}

// CreatePlayers inserts the batch in one statement; slice order is
// submission order and is preserved in the returned models.
func (r *registrationRepository) CreatePlayers(ctx context.Context, tx *gorm.DB, players []models.Player) error {
	if len(players) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&players).Error
}

// InvoiceNumbers reads every issued invoice number. Run inside the
// creation transaction so the scan and the insert see one snapshot.
func (r *registrationRepository) InvoiceNumbers(ctx context.Context, tx *gorm.DB) ([]string, error) {
	var numbers []string
	err := tx.WithContext(ctx).
		Model(&models.Registration{}).
		Pluck("invoice_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// FindByID loads the registration with its package. The package join is
// best-effort: a registration whose package row is gone still loads,
// with Package left nil.
func (r *registrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.WithContext(ctx).
		Preload("Package").
		First(&reg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) FindPlayers(ctx context.Context, registrationID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := r.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		Order("sort_order ASC, created_at ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stjohns-golfday/golfday-api/internal/models"
)

type PackageRepository interface {
	FindAll(ctx context.Context) ([]models.Package, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Package, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) FindAll(ctx context.Context) ([]models.Package, error) {
	var pkgs []models.Package
	if err := r.db.WithContext(ctx).Order("price ASC").Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

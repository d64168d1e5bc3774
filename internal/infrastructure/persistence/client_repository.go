package persistence

import (
	"context"
	"errors"

	"github.com/storely/backend/internal/domain/client"
	"github.com/storely/backend/internal/domain/shared"
	"github.com/storely/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormClientRepository implements client.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Add persists a new client
func (r *GormClientRepository) Add(ctx context.Context, c *client.Client) error {
	model := models.ClientModelFromDomain(c)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Client not found")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

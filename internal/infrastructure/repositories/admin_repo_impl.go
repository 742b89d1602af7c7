package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/infrastructure/models"
)

// AdminRepository implements admin data operations
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	return translateError(GetDB(ctx, r.db).Create(models.NewAdmin(admin)).Error)
}

// GetByID gets an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	var m models.Admin
	if err := GetDB(ctx, r.db).Where("id = ?", id.String()).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// GetByUsername gets an admin by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	var m models.Admin
	if err := GetDB(ctx, r.db).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return m.ToEntity(), nil
}

// List lists admins with optional search filter
func (r *AdminRepository) List(ctx context.Context, search string) ([]*entities.Admin, error) {
	var rows []models.Admin
	query := whereSearch(GetDB(ctx, r.db), search, "name", "username").Order("created_at DESC")
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	admins := make([]*entities.Admin, 0, len(rows))
	for i := range rows {
		admins = append(admins, rows[i].ToEntity())
	}
	return admins, nil
}

// Update updates the profile fields of an admin
func (r *AdminRepository) Update(ctx context.Context, admin *entities.Admin) error {
	updates := map[string]interface{}{
		"name":          admin.Name,
		"username":      admin.Username,
		"profile_image": admin.ProfileImage.Ptr(),
		"updated_at":    time.Now(),
	}
	result := GetDB(ctx, r.db).Model(&models.Admin{}).Where("id = ?", admin.ID.String()).Updates(updates)
	return checkAffected(result)
}

// UpdatePassword replaces the password hash
func (r *AdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := GetDB(ctx, r.db).Model(&models.Admin{}).Where("id = ?", id.String()).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	return checkAffected(result)
}

// Delete removes an admin
func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).Delete(&models.Admin{}, "id = ?", id.String()))
}

// Count returns the number of admins
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.Admin{}).Count(&n).Error
	return n, err
}

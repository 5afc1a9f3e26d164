package recipientrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bananex/internal/core/domain/model/recipient"
	"bananex/internal/core/ports"
	"bananex/internal/pkg/errs"
)

var _ ports.RecipientRepository = (*GormRecipientRepository)(nil)

// GormRecipientRepository implements ports.RecipientRepository using GORM.
type GormRecipientRepository struct {
	db *gorm.DB
}

// NewGormRecipientRepository creates a new GORM recipient repository.
func NewGormRecipientRepository(db *gorm.DB) *GormRecipientRepository {
	return &GormRecipientRepository{db: db}
}

// GetAll retrieves every stored recipient.
func (r *GormRecipientRepository) GetAll(ctx context.Context) ([]*recipient.Recipient, error) {
	var dtos []RecipientDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	recs := make([]*recipient.Recipient, 0, len(dtos))
	for _, dto := range dtos {
		recs = append(recs, toDomain(dto))
	}
	return recs, nil
}

// Get retrieves a recipient by ID.
func (r *GormRecipientRepository) Get(ctx context.Context, id uuid.UUID) (*recipient.Recipient, error) {
	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipientId", id.String())
		}
		return nil, err
	}
	return toDomain(dto), nil
}

// ExistsByIdentity reports whether a recipient with the exact five-field
// identity tuple is already stored.
func (r *GormRecipientRepository) ExistsByIdentity(ctx context.Context, identity ports.RecipientIdentity) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RecipientDTO{}).
		Where("name = ? AND address = ? AND postal_code = ? AND city = ? AND country = ?",
			identity.Name, identity.Address, identity.PostalCode, identity.City, identity.Country).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add saves a new recipient to the database. A duplicate identity tuple
// hitting the unique index is reported as an AlreadyExistsError, so the
// invariant holds even when two creations race.
func (r *GormRecipientRepository) Add(ctx context.Context, rec *recipient.Recipient) error {
	dto := fromDomain(rec)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsErrorWithCause(
				"a recipient with the same information already exists", err)
		}
		return err
	}
	return nil
}

// Update replaces the stored record matching the recipient's identifier.
// All columns are written, mirroring the full-replace update semantics.
func (r *GormRecipientRepository) Update(ctx context.Context, rec *recipient.Recipient) error {
	dto := fromDomain(rec)
	return r.db.WithContext(ctx).Save(&dto).Error
}

// Delete removes the recipient with the given identifier.
// Deleting an absent identifier affects zero rows and is not an error.
func (r *GormRecipientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&RecipientDTO{}, "id = ?", id).Error
}

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"bananex/internal/core/domain/model/recipient"
	"bananex/internal/core/ports"
	"bananex/internal/pkg/errs"
)

// RecipientService validates and persists export recipients.
//
// Create enforces two rules, in order: every field of the postal identity must
// be non-blank, and no stored recipient may share the identical five-field
// tuple. Update persists as given without validation; that asymmetry matches
// the established behavior and is pinned by tests rather than silently fixed.
type RecipientService struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewRecipientService creates a RecipientService backed by the given
// unit-of-work factory.
func NewRecipientService(uowFactory ports.UnitOfWorkFactory) RecipientService {
	return RecipientService{uowFactory: uowFactory}
}

// ListAll returns all stored recipients, in store iteration order.
func (s RecipientService) ListAll(ctx context.Context) ([]*recipient.Recipient, error) {
	return s.uowFactory.Create().RecipientRepository().GetAll(ctx)
}

// GetByID returns the recipient with the given identifier, or (nil, nil) when
// no such recipient exists. Absence is a valid outcome, not an error.
func (s RecipientService) GetByID(ctx context.Context, id uuid.UUID) (*recipient.Recipient, error) {
	rec, err := s.uowFactory.Create().RecipientRepository().Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// Create validates the recipient and persists it with a newly assigned
// identifier. The duplicate-identity check and the insert run in the same
// transaction so the uniqueness invariant holds under concurrent creation.
func (s RecipientService) Create(ctx context.Context, rec *recipient.Recipient) (*recipient.Recipient, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RecipientRepository()
	if err := s.validate(ctx, repo, rec); err != nil {
		return nil, err
	}

	stored := recipient.Restore(
		uuid.New(),
		rec.Name(),
		rec.Address(),
		rec.PostalCode(),
		rec.City(),
		rec.Country(),
	)
	if err := repo.Add(ctx, stored); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return stored, nil
}

// Update persists the recipient as given, replacing all fields of the record
// matching its identifier. No validation is applied on this path.
func (s RecipientService) Update(ctx context.Context, rec *recipient.Recipient) (*recipient.Recipient, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RecipientRepository().Update(ctx, rec); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteByID removes the recipient with the given identifier.
// Deleting an absent identifier is a no-op.
func (s RecipientService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.uowFactory.Create().RecipientRepository().Delete(ctx, id)
}

// validate enforces the creation rules in order: non-blank fields first,
// duplicate identity second. The first violated rule is reported.
func (s RecipientService) validate(ctx context.Context, repo ports.RecipientRepository, rec *recipient.Recipient) error {
	if isBlank(rec.Name()) ||
		isBlank(rec.Address()) ||
		isBlank(rec.PostalCode()) ||
		isBlank(rec.City()) ||
		isBlank(rec.Country()) {
		return errs.NewValueIsRequiredError(
			"a recipient must have a name, an address, a postal code, a city and a country")
	}

	exists, err := repo.ExistsByIdentity(ctx, ports.RecipientIdentity{
		Name:       rec.Name(),
		Address:    rec.Address(),
		PostalCode: rec.PostalCode(),
		City:       rec.City(),
		Country:    rec.Country(),
	})
	if err != nil {
		return err
	}
	if exists {
		return errs.NewAlreadyExistsError("a recipient with the same information already exists")
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

package services

import (
	"context"
	"fmt"

	"github.com/maele-app/maele-cli/internal/core/domain"
	"github.com/maele-app/maele-cli/internal/core/ports/driven"
	"github.com/maele-app/maele-cli/internal/core/ports/driving"
	"github.com/maele-app/maele-cli/internal/logger"
)

// Ensure AdminService implements the interface.
var _ driving.AdminService = (*AdminService)(nil)

// AdminService mutates the proverb collection behind a password gate.
// Writes validate input strictly and enforce the text-uniqueness
// invariant against a fresh read of the full collection.
type AdminService struct {
	store    driven.ProverbStore
	password string
}

// NewAdminService creates a new admin service. An empty password leaves
// the admin surface disabled: Authenticate always fails.
func NewAdminService(store driven.ProverbStore, password string) *AdminService {
	return &AdminService{store: store, password: password}
}

// Authenticate checks the admin password.
func (s *AdminService) Authenticate(password string) error {
	if s.password == "" {
		return domain.ErrAdminPasswordNotSet
	}
	if password != s.password {
		return domain.ErrInvalidPassword
	}
	return nil
}

// Add validates, normalises and persists a new record.
func (s *AdminService) Add(ctx context.Context, in domain.Input) (domain.Proverb, error) {
	p, err := domain.New(in)
	if err != nil {
		return domain.Proverb{}, err
	}

	existing, err := s.store.List(ctx)
	if err != nil {
		return domain.Proverb{}, fmt.Errorf("loading existing proverbs: %w", err)
	}
	if domain.IsDuplicate(p.Text, existing, "") {
		return domain.Proverb{}, domain.ErrDuplicate
	}

	id, err := s.store.Add(ctx, p)
	if err != nil {
		return domain.Proverb{}, fmt.Errorf("adding proverb: %w", err)
	}

	p.ID = id
	logger.Info("added proverb %s", id)
	return p, nil
}

// Update re-validates and overwrites an existing record. Keywords are
// re-derived from the new text; the duplicate check excludes the record
// itself so an unchanged text always passes.
func (s *AdminService) Update(ctx context.Context, id string, in domain.Input) (domain.Proverb, error) {
	p, err := domain.New(in)
	if err != nil {
		return domain.Proverb{}, err
	}

	existing, err := s.store.List(ctx)
	if err != nil {
		return domain.Proverb{}, fmt.Errorf("loading existing proverbs: %w", err)
	}
	if domain.IsDuplicate(p.Text, existing, id) {
		return domain.Proverb{}, domain.ErrDuplicate
	}

	if err := s.store.Set(ctx, id, p); err != nil {
		return domain.Proverb{}, fmt.Errorf("updating proverb %s: %w", id, err)
	}

	p.ID = id
	logger.Info("updated proverb %s", id)
	return p, nil
}

// Delete removes a record. The store's error for an unknown identifier is
// surfaced to the caller.
func (s *AdminService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting proverb %s: %w", id, err)
	}
	logger.Info("deleted proverb %s", id)
	return nil
}

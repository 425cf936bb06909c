package service

import (
	"context"
	"fmt"

	"pos/internal/model"
	"pos/internal/repository"

	"github.com/shopspring/decimal"
)

// SettingsService holds store preferences.
type SettingsService interface {
	Get() model.Settings
	Update(ctx context.Context, patch model.SettingsPatch) (model.Settings, error)
	Restore(ctx context.Context) error
}

type settingsService struct {
	repo      repository.SettingsRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	actor     Actor
	defaults  model.Settings

	current model.Settings
}

func NewSettingsService(
	repo repository.SettingsRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	actor Actor,
	defaults model.Settings,
) SettingsService {
	return &settingsService{
		repo:      repo,
		auditRepo: auditRepo,
		txManager: txManager,
		actor:     actor,
		defaults:  defaults,
		current:   defaults,
	}
}

func (s *settingsService) Get() model.Settings {
	return s.current
}

func (s *settingsService) Update(ctx context.Context, patch model.SettingsPatch) (model.Settings, error) {
	if patch.TaxRate != nil {
		if err := validateRate(*patch.TaxRate); err != nil {
			return model.Settings{}, err
		}
	}
	next := patch.Apply(s.current)
	if next.CompanyName == "" {
		return model.Settings{}, newValidationError("company_name", MissingRequiredField)
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Save(txCtx, next); err != nil {
			return err
		}
		return writeAudit(txCtx, s.auditRepo, auditEntry(s.actor, model.ActionUpdateSettings, "settings", next.CompanyName, patch))
	})
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	s.current = next
	return next, nil
}

// Restore loads persisted settings or falls back to the defaults.
func (s *settingsService) Restore(ctx context.Context) error {
	stored, found, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if !found {
		s.current = s.defaults
		return nil
	}
	s.current = stored
	return nil
}

// validateRate accepts fractions in [0, 1].
func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return newValidationError("tax_rate", InvalidValue)
	}
	return nil
}

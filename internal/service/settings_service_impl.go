package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/club-shop/internal/domain"
	"github.com/bagdasarian/club-shop/internal/repository"
	"github.com/shopspring/decimal"
)

type settingsService struct {
	settingsRepo  repository.SettingsRepository
	products      ProductService
	transactor    repository.Transactor
	defaultMargin decimal.Decimal
}

// NewSettingsService создает новый экземпляр SettingsService.
// defaultMargin используется, пока запись настроек не создана.
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	products ProductService,
	transactor repository.Transactor,
	defaultMargin decimal.Decimal,
) SettingsService {
	return &settingsService{
		settingsRepo:  settingsRepo,
		products:      products,
		transactor:    transactor,
		defaultMargin: defaultMargin,
	}
}

func (s *settingsService) InitSettings(ctx context.Context, marginPercent decimal.Decimal) (*domain.Settings, error) {
	settings := &domain.Settings{MarginPercent: marginPercent}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) SetMargin(ctx context.Context, marginPercent decimal.Decimal) (int, error) {
	settings := &domain.Settings{MarginPercent: marginPercent}
	if err := settings.Validate(); err != nil {
		return 0, err
	}

	var repriced int
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		err := s.settingsRepo.Update(ctx, settings)
		if errors.Is(err, domain.ErrNotFound) {
			err = s.settingsRepo.Create(ctx, settings)
		}
		if err != nil {
			return err
		}

		repriced, err = s.products.RepriceAll(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}

	return repriced, nil
}

func (s *settingsService) Margin(ctx context.Context) (decimal.Decimal, error) {
	return currentMargin(ctx, s.settingsRepo, s.defaultMargin)
}

// currentMargin возвращает наценку из БД или значение по умолчанию
func currentMargin(ctx context.Context, settingsRepo repository.SettingsRepository, fallback decimal.Decimal) (decimal.Decimal, error) {
	settings, err := settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fallback, nil
		}
		return decimal.Zero, err
	}
	return settings.MarginPercent, nil
}

package usecase

import (
	"context"

	"go.uber.org/zap"

	"examprep/internal/modules/profile/domain"
	"examprep/internal/modules/profile/dto"
	profilein "examprep/internal/modules/profile/port/in"
	"examprep/internal/modules/profile/service"
)

type Interactor struct {
	svc    *service.ProfileService
	logger *zap.Logger
}

func NewInteractor(svc *service.ProfileService, logger *zap.Logger) profilein.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{svc: svc, logger: logger.Named("profile")}
}

func (i *Interactor) Get(ctx context.Context) string {
	name, err := i.svc.Get(ctx)
	if err != nil {
		i.logger.Warn("load player name failed", zap.Error(err))
		return domain.DefaultName
	}
	return name
}

func (i *Interactor) Set(ctx context.Context, name string) (dto.SetOutput, error) {
	saved, v, err := i.svc.Set(ctx, name)
	return dto.SetOutput{Name: saved, Validation: dto.ValidationOutput{Valid: v.Valid, Error: v.Error}}, err
}

func (i *Interactor) Validate(name string) dto.ValidationOutput {
	v := domain.Validate(name)
	return dto.ValidationOutput{Valid: v.Valid, Error: v.Error}
}

func (i *Interactor) Reset(ctx context.Context) bool {
	if err := i.svc.Reset(ctx); err != nil {
		i.logger.Warn("reset player name failed", zap.Error(err))
		return false
	}
	return true
}

package service

import (
	"context"

	"github.com/alexanderramin/chantcounter/internal/repository"
)

type installService struct {
	state repository.StateRepo
}

func NewInstallService(state repository.StateRepo) InstallService {
	return &installService{state: state}
}

func (s *installService) Accepted(ctx context.Context) (bool, error) {
	return s.state.LoadInstallAccepted(ctx)
}

func (s *installService) Accept(ctx context.Context) error {
	return s.state.SaveInstallAccepted(ctx, true)
}

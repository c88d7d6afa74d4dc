package technology

import (
	"context"

	"github.com/google/uuid"
	"github.com/stackhunt/stackhunt/internal/domain/technology"
)

type ListUserTechnologiesUseCase struct {
	userTechRepo technology.UserTechnologyRepository
}

func NewListUserTechnologiesUseCase(utr technology.UserTechnologyRepository) *ListUserTechnologiesUseCase {
	return &ListUserTechnologiesUseCase{userTechRepo: utr}
}

func (uc *ListUserTechnologiesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*technology.UserTechnology, error) {
	return uc.userTechRepo.ListByUser(ctx, userID)
}

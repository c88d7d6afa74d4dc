package technology

import (
	"context"

	"github.com/google/uuid"
	"github.com/stackhunt/stackhunt/internal/domain/technology"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

// ListTechnologiesUseCase serves the catalog, annotated per the requesting
// user. The catalog is small and fully materialized, so there is no
// pagination.
type ListTechnologiesUseCase struct {
	techRepo     technology.Repository
	userTechRepo technology.UserTechnologyRepository
	logger       logger.Logger
}

func NewListTechnologiesUseCase(tr technology.Repository, utr technology.UserTechnologyRepository, log logger.Logger) *ListTechnologiesUseCase {
	return &ListTechnologiesUseCase{
		techRepo:     tr,
		userTechRepo: utr,
		logger:       log,
	}
}

func (uc *ListTechnologiesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]technology.WithSelection, error) {
	catalog, err := uc.techRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	selected, err := uc.userTechRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	skillByTech := make(map[uuid.UUID]string, len(selected))
	for _, ut := range selected {
		skillByTech[ut.TechnologyID] = ut.SkillLevel
	}

	annotated := make([]technology.WithSelection, len(catalog))
	for i, t := range catalog {
		ws := technology.WithSelection{Technology: *t}
		if level, ok := skillByTech[t.ID]; ok {
			ws.Selected = true
			ws.SkillLevel = &level
		}
		annotated[i] = ws
	}
	return annotated, nil
}

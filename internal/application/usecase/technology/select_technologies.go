package technology

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stackhunt/stackhunt/internal/domain/technology"
	"github.com/stackhunt/stackhunt/pkg/apperror"
	"github.com/stackhunt/stackhunt/pkg/logger"
	"go.uber.org/zap"
)

const DefaultMaxSelections = 10

// SelectionEventPublisher announces committed selection replacements to the
// rest of the system.
type SelectionEventPublisher interface {
	PublishSelectionsReplaced(ctx context.Context, userID uuid.UUID, technologyIDs []uuid.UUID) error
}

// SelectTechnologiesUseCase performs the atomic selection replace: validate
// everything first, then swap the whole set in one transaction. No mutation
// happens on invalid input.
type SelectTechnologiesUseCase struct {
	techRepo      technology.Repository
	userTechRepo  technology.UserTechnologyRepository
	events        SelectionEventPublisher
	maxSelections int
	logger        logger.Logger
}

func NewSelectTechnologiesUseCase(
	tr technology.Repository,
	utr technology.UserTechnologyRepository,
	events SelectionEventPublisher,
	maxSelections int,
	log logger.Logger,
) *SelectTechnologiesUseCase {
	if maxSelections <= 0 {
		maxSelections = DefaultMaxSelections
	}
	return &SelectTechnologiesUseCase{
		techRepo:      tr,
		userTechRepo:  utr,
		events:        events,
		maxSelections: maxSelections,
		logger:        log,
	}
}

type SelectTechnologiesInput struct {
	UserID     uuid.UUID
	Selections []technology.Selection
}

func (uc *SelectTechnologiesUseCase) Execute(ctx context.Context, in SelectTechnologiesInput) ([]*technology.UserTechnology, error) {
	if err := uc.validate(ctx, in.Selections); err != nil {
		return nil, err
	}

	if err := uc.userTechRepo.ReplaceForUser(ctx, in.UserID, in.Selections); err != nil {
		return nil, err
	}

	if uc.events != nil {
		ids := make([]uuid.UUID, len(in.Selections))
		for i, sel := range in.Selections {
			ids[i] = sel.TechnologyID
		}
		if err := uc.events.PublishSelectionsReplaced(ctx, in.UserID, ids); err != nil {
			uc.logger.Warn("Failed to publish selection event",
				zap.String("user_id", in.UserID.String()), zap.Error(err))
		}
	}

	return uc.userTechRepo.ListByUser(ctx, in.UserID)
}

func (uc *SelectTechnologiesUseCase) validate(ctx context.Context, selections []technology.Selection) error {
	if len(selections) > uc.maxSelections {
		return apperror.NewInvalidInput(
			fmt.Sprintf("at most %d selections are allowed, got %d", uc.maxSelections, len(selections)), nil)
	}

	seen := make(map[uuid.UUID]bool, len(selections))
	ids := make([]uuid.UUID, 0, len(selections))
	for i, sel := range selections {
		if err := sel.Validate(); err != nil {
			return apperror.NewInvalidInput(fmt.Sprintf("selections[%d]: %v", i, err), err)
		}
		if seen[sel.TechnologyID] {
			return apperror.NewInvalidInput(
				fmt.Sprintf("selections[%d]: duplicate technology id %s", i, sel.TechnologyID), nil)
		}
		seen[sel.TechnologyID] = true
		ids = append(ids, sel.TechnologyID)
	}

	missing, err := uc.techRepo.MissingIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		parts := make([]string, len(missing))
		for i, id := range missing {
			parts[i] = id.String()
		}
		return apperror.NewInvalidInput(
			fmt.Sprintf("unknown technology ids: %s", strings.Join(parts, ", ")), technology.ErrTechnologyNotFound)
	}
	return nil
}

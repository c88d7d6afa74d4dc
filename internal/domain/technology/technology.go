package technology

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	CategoryLanguage  = "language"
	CategoryFramework = "framework"
	CategoryTool      = "tool"
	CategoryDomain    = "domain"
)

const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

var (
	ErrTechnologyNotFound = errors.New("technology not found")
	ErrInvalidSkillLevel  = errors.New("invalid skill level")
	ErrInvalidCategory    = errors.New("invalid technology category")
)

// Technology is a catalog entry. The catalog is seeded once and read-only at
// runtime.
type Technology struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	PopularityScore int       `json:"popularity_score"`
	IconURL         *string   `json:"icon_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (t *Technology) Validate() error {
	if t.Name == "" {
		return errors.New("name is required")
	}
	switch t.Category {
	case CategoryLanguage, CategoryFramework, CategoryTool, CategoryDomain:
	default:
		return ErrInvalidCategory
	}
	return nil
}

// UserTechnology associates one user with one catalog technology at a
// declared skill level. At most one association exists per (user,
// technology) pair.
type UserTechnology struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"user_id"`
	TechnologyID uuid.UUID   `json:"technology_id"`
	SkillLevel   string      `json:"skill_level"`
	Technology   *Technology `json:"technology,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Selection is one (technology, skill level) pair in a submission.
type Selection struct {
	TechnologyID uuid.UUID
	SkillLevel   string
}

func (s Selection) Validate() error {
	if s.TechnologyID == uuid.Nil {
		return errors.New("technology id is required")
	}
	if !ValidSkillLevel(s.SkillLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidSkillLevel, s.SkillLevel)
	}
	return nil
}

func ValidSkillLevel(level string) bool {
	switch level {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

// WithSelection annotates a catalog entry with the requesting user's
// selection state.
type WithSelection struct {
	Technology
	Selected   bool
	SkillLevel *string
}

type Repository interface {
	// ListAll returns the whole catalog ordered by popularity score
	// descending, then name ascending.
	ListAll(ctx context.Context) ([]*Technology, error)
	// MissingIDs reports which of the given ids have no catalog entry.
	MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type UserTechnologyRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*UserTechnology, error)
	// ReplaceForUser deletes every association the user has, inserts the
	// given set, and marks onboarding complete, all in one transaction.
	// A failure anywhere rolls the whole operation back.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, selections []Selection) error
}

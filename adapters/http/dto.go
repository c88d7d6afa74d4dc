package http

import (
	"time"

	"github.com/stackhunt/stackhunt/internal/domain/dashboard"
	"github.com/stackhunt/stackhunt/internal/domain/technology"
)

// Wire shapes follow the original dashboard client: camelCase keys,
// lastUpdated in epoch milliseconds.

// Technology DTOs

type TechnologyDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	PopularityScore int       `json:"popularityScore"`
	IconURL         *string   `json:"iconUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type TechnologyWithSelectionDTO struct {
	TechnologyDTO
	Selected   bool    `json:"selected"`
	SkillLevel *string `json:"skillLevel"`
}

type UserTechnologyDTO struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	TechnologyID string         `json:"technologyId"`
	SkillLevel   string         `json:"skillLevel"`
	Technology   *TechnologyDTO `json:"technology,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func ToTechnologyDTO(t *technology.Technology) TechnologyDTO {
	return TechnologyDTO{
		ID:              t.ID.String(),
		Name:            t.Name,
		Category:        t.Category,
		Description:     t.Description,
		PopularityScore: t.PopularityScore,
		IconURL:         t.IconURL,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func ToTechnologyWithSelectionDTO(ws technology.WithSelection) TechnologyWithSelectionDTO {
	return TechnologyWithSelectionDTO{
		TechnologyDTO: ToTechnologyDTO(&ws.Technology),
		Selected:      ws.Selected,
		SkillLevel:    ws.SkillLevel,
	}
}

func ToUserTechnologyDTO(ut *technology.UserTechnology) UserTechnologyDTO {
	dto := UserTechnologyDTO{
		ID:           ut.ID.String(),
		UserID:       ut.UserID.String(),
		TechnologyID: ut.TechnologyID.String(),
		SkillLevel:   ut.SkillLevel,
		CreatedAt:    ut.CreatedAt,
		UpdatedAt:    ut.UpdatedAt,
	}
	if ut.Technology != nil {
		t := ToTechnologyDTO(ut.Technology)
		dto.Technology = &t
	}
	return dto
}

func ToUserTechnologyDTOs(uts []*technology.UserTechnology) []UserTechnologyDTO {
	dtos := make([]UserTechnologyDTO, len(uts))
	for i, ut := range uts {
		dtos[i] = ToUserTechnologyDTO(ut)
	}
	return dtos
}

// Request bodies

type TechnologySelectionRequest struct {
	TechnologyID string `json:"technologyId" binding:"required"`
	SkillLevel   string `json:"skillLevel" binding:"required,oneof=beginner intermediate advanced"`
}

type UpdateUserTechnologiesRequest struct {
	Selections []TechnologySelectionRequest `json:"selections" binding:"required,dive"`
}

// Dashboard DTOs

type DashboardUserDTO struct {
	ID                  string  `json:"id"`
	Name                *string `json:"name"`
	Email               *string `json:"email"`
	Image               *string `json:"image"`
	OnboardingCompleted bool    `json:"onboardingCompleted"`
}

type DashboardTechnologiesDTO struct {
	Selected    []UserTechnologyDTO `json:"selected"`
	Count       int                 `json:"count"`
	LastUpdated *int64              `json:"lastUpdated"`
}

type DashboardGitHubDTO struct {
	Connected              bool       `json:"connected"`
	Username               *string    `json:"username,omitempty"`
	RepositoriesDiscovered int        `json:"repositoriesDiscovered"`
	RepositoriesFound      int        `json:"repositoriesFound"`
	LastSync               *time.Time `json:"lastSync"`
	SyncInProgress         bool       `json:"syncInProgress"`
}

type DashboardDiscoveryDTO struct {
	Status            string `json:"status"`
	IssuesFound       int    `json:"issuesFound"`
	RepositoriesFound int    `json:"repositoriesFound"`
	CanTrigger        bool   `json:"canTrigger"`
}

type IssueRepositoryDTO struct {
	Name     string  `json:"name"`
	URL      string  `json:"url"`
	Language *string `json:"language"`
	Stars    int     `json:"stars"`
}

type IssueLabelDTO struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type IssueDTO struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	URL              string             `json:"url"`
	Repository       IssueRepositoryDTO `json:"repository"`
	Labels           []IssueLabelDTO    `json:"labels"`
	MatchScore       float64            `json:"matchScore"`
	MatchReasons     []string           `json:"matchReasons"`
	IsGoodFirstIssue bool               `json:"isGoodFirstIssue"`
	Difficulty       int                `json:"difficulty"`
	CreatedAt        time.Time          `json:"createdAt"`
	DiscoveredAt     time.Time          `json:"discoveredAt"`
}

type DashboardIssuesDTO struct {
	Items   []IssueDTO `json:"items"`
	Total   int        `json:"total"`
	HasMore bool       `json:"hasMore"`
}

type DashboardSnapshotDTO struct {
	User           DashboardUserDTO         `json:"user"`
	Technologies   DashboardTechnologiesDTO `json:"technologies"`
	GitHub         DashboardGitHubDTO       `json:"github"`
	Discovery      DashboardDiscoveryDTO    `json:"discovery"`
	Issues         DashboardIssuesDTO       `json:"issues"`
	DashboardState string                   `json:"dashboardState"`
}

func ToDashboardSnapshotDTO(s *dashboard.Snapshot) DashboardSnapshotDTO {
	var lastUpdated *int64
	if s.Technologies.LastUpdated != nil {
		ms := s.Technologies.LastUpdated.UnixMilli()
		lastUpdated = &ms
	}

	items := make([]IssueDTO, len(s.Issues.Items))
	for i, issue := range s.Issues.Items {
		items[i] = toIssueDTO(issue)
	}

	return DashboardSnapshotDTO{
		User: DashboardUserDTO{
			ID:                  s.User.ID.String(),
			Name:                s.User.Name,
			Email:               s.User.Email,
			Image:               s.User.Image,
			OnboardingCompleted: s.User.OnboardingCompleted,
		},
		Technologies: DashboardTechnologiesDTO{
			Selected:    ToUserTechnologyDTOs(s.Technologies.Selected),
			Count:       s.Technologies.Count,
			LastUpdated: lastUpdated,
		},
		GitHub: DashboardGitHubDTO{
			Connected:              s.GitHub.Connected,
			Username:               s.GitHub.Username,
			RepositoriesDiscovered: s.GitHub.RepositoriesFound,
			RepositoriesFound:      s.GitHub.RepositoriesFound,
			LastSync:               s.GitHub.LastSync,
			SyncInProgress:         s.GitHub.SyncInProgress,
		},
		Discovery: DashboardDiscoveryDTO{
			Status:            s.Discovery.Status,
			IssuesFound:       s.Discovery.IssuesFound,
			RepositoriesFound: s.Discovery.RepositoriesFound,
			CanTrigger:        s.Discovery.CanTrigger,
		},
		Issues: DashboardIssuesDTO{
			Items:   items,
			Total:   s.Issues.Total,
			HasMore: s.Issues.HasMore,
		},
		DashboardState: string(s.State),
	}
}

func toIssueDTO(issue dashboard.Issue) IssueDTO {
	labels := make([]IssueLabelDTO, len(issue.Labels))
	for i, l := range issue.Labels {
		labels[i] = IssueLabelDTO{Name: l.Name, Color: l.Color}
	}
	return IssueDTO{
		ID:    issue.ID,
		Title: issue.Title,
		URL:   issue.URL,
		Repository: IssueRepositoryDTO{
			Name:     issue.Repository.Name,
			URL:      issue.Repository.URL,
			Language: issue.Repository.Language,
			Stars:    issue.Repository.Stars,
		},
		Labels:           labels,
		MatchScore:       issue.MatchScore,
		MatchReasons:     issue.MatchReasons,
		IsGoodFirstIssue: issue.IsGoodFirstIssue,
		Difficulty:       issue.Difficulty,
		CreatedAt:        issue.CreatedAt,
		DiscoveredAt:     issue.DiscoveredAt,
	}
}

// Layout DTOs

type BannerMetricsDTO struct {
	TechnologiesSelected *int `json:"technologiesSelected,omitempty"`
	RepositoriesFound    *int `json:"repositoriesFound,omitempty"`
	IssuesAvailable      *int `json:"issuesAvailable,omitempty"`
}

type NextActionDTO struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type StatusBannerDTO struct {
	State      string            `json:"state"`
	Message    string            `json:"message"`
	Metrics    *BannerMetricsDTO `json:"metrics,omitempty"`
	NextAction *NextActionDTO    `json:"nextAction,omitempty"`
}

type DashboardLayoutDTO struct {
	LayoutState  string          `json:"layoutState"`
	StatusBanner StatusBannerDTO `json:"statusBanner"`
	MainContent  []string        `json:"mainContent"`
	Sidebar      []string        `json:"sidebar"`
}

func ToDashboardLayoutDTO(state dashboard.LayoutState, layout dashboard.Layout) DashboardLayoutDTO {
	banner := StatusBannerDTO{
		State:   string(layout.StatusBanner.State),
		Message: layout.StatusBanner.Message,
	}
	if m := layout.StatusBanner.Metrics; m != nil {
		banner.Metrics = &BannerMetricsDTO{
			TechnologiesSelected: m.TechnologiesSelected,
			RepositoriesFound:    m.RepositoriesFound,
			IssuesAvailable:      m.IssuesAvailable,
		}
	}
	if a := layout.StatusBanner.NextAction; a != nil {
		banner.NextAction = &NextActionDTO{Label: a.Label, Href: a.Href}
	}
	return DashboardLayoutDTO{
		LayoutState:  string(state),
		StatusBanner: banner,
		MainContent:  layout.MainContent,
		Sidebar:      layout.Sidebar,
	}
}

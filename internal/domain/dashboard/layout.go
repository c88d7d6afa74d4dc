package dashboard

import "fmt"

// LayoutState is the enumerated UI mode the dashboard should render. It is a
// closed set; DeriveLayoutState is the only producer.
type LayoutState string

const (
	LayoutOnboardingIncomplete LayoutState = "onboarding_incomplete"
	LayoutPostOnboarding       LayoutState = "post_onboarding"
	LayoutGitHubConnecting     LayoutState = "github_connecting"
	LayoutActive               LayoutState = "active"
)

type BannerMetrics struct {
	TechnologiesSelected *int
	RepositoriesFound    *int
	IssuesAvailable      *int
}

type NextAction struct {
	Label string
	Href  string
}

type StatusBanner struct {
	State      LayoutState
	Message    string
	Metrics    *BannerMetrics
	NextAction *NextAction
}

type Layout struct {
	StatusBanner StatusBanner
	MainContent  []string
	Sidebar      []string
}

// DeriveLayoutState maps a snapshot onto a layout state. Rules are evaluated
// in order; the first match wins.
func DeriveLayoutState(s *Snapshot) LayoutState {
	if !s.User.OnboardingCompleted || s.Technologies.Count == 0 {
		return LayoutOnboardingIncomplete
	}
	if s.State == StateDiscovering {
		return LayoutGitHubConnecting
	}
	if s.State == StateActive && s.Issues.Total > 0 {
		return LayoutActive
	}
	if s.State == StateReady {
		return LayoutPostOnboarding
	}
	return LayoutPostOnboarding
}

// DeriveStatusBanner builds the banner for the snapshot's layout state. Pure
// and total: every input yields a banner, unknown states fall back to the
// getting-started default.
func DeriveStatusBanner(s *Snapshot) StatusBanner {
	switch DeriveLayoutState(s) {
	case LayoutOnboardingIncomplete:
		return StatusBanner{
			State:   LayoutOnboardingIncomplete,
			Message: "Complete your setup to start discovering issues",
			NextAction: &NextAction{
				Label: "Complete Setup",
				Href:  "/onboarding",
			},
		}

	case LayoutPostOnboarding:
		return StatusBanner{
			State:   LayoutPostOnboarding,
			Message: "Ready to Discover Issues",
			Metrics: &BannerMetrics{
				TechnologiesSelected: intPtr(s.Technologies.Count),
			},
			NextAction: &NextAction{
				Label: "Discover My Issues",
				Href:  "#discover-issues",
			},
		}

	case LayoutGitHubConnecting:
		return StatusBanner{
			State:   LayoutGitHubConnecting,
			Message: "Finding perfect issues for you... This may take a few seconds",
			Metrics: &BannerMetrics{
				TechnologiesSelected: intPtr(s.Technologies.Count),
				RepositoriesFound:    intPtr(s.GitHub.RepositoriesFound),
			},
		}

	case LayoutActive:
		return StatusBanner{
			State: LayoutActive,
			Message: fmt.Sprintf("%d issues discovered, %d repositories monitored",
				s.Issues.Total, s.GitHub.RepositoriesFound),
			Metrics: &BannerMetrics{
				TechnologiesSelected: intPtr(s.Technologies.Count),
				RepositoriesFound:    intPtr(s.GitHub.RepositoriesFound),
				IssuesAvailable:      intPtr(s.Issues.Total),
			},
		}

	default:
		return StatusBanner{
			State:   LayoutOnboardingIncomplete,
			Message: "Getting started...",
		}
	}
}

// widgetTable is the static widget assignment per layout state. Widgets are
// selected, never computed.
var widgetTable = map[LayoutState]struct {
	mainContent []string
	sidebar     []string
}{
	LayoutOnboardingIncomplete: {
		mainContent: []string{"getting-started-card", "user-info-card"},
		sidebar:     []string{"progress-tracker"},
	},
	LayoutPostOnboarding: {
		mainContent: []string{"technology-profile-widget", "github-connection-widget"},
		sidebar:     []string{"user-info-card"},
	},
	LayoutGitHubConnecting: {
		mainContent: []string{"repository-discovery-feed"},
		sidebar:     []string{"technologies-collapsed", "github-status"},
	},
	LayoutActive: {
		mainContent: []string{"issues-feed"},
		sidebar:     []string{"technologies-widget", "stats-widget", "filters-widget"},
	},
}

// DeriveLayout assembles the full layout descriptor. Re-derived on every
// call; it depends only on the snapshot.
func DeriveLayout(s *Snapshot) Layout {
	state := DeriveLayoutState(s)
	widgets, ok := widgetTable[state]
	if !ok {
		return Layout{
			StatusBanner: DeriveStatusBanner(s),
			MainContent:  []string{"getting-started-card"},
			Sidebar:      []string{},
		}
	}
	return Layout{
		StatusBanner: DeriveStatusBanner(s),
		MainContent:  widgets.mainContent,
		Sidebar:      widgets.sidebar,
	}
}

func intPtr(v int) *int {
	return &v
}

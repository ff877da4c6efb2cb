// Package app holds the per-session application state and the pure update
// function that moves it between views. Every transition returns a new State
// plus the events the view layer reacts to; nothing here touches storage.
package app

import (
	"errors" // Sentinel errors

	"sthira/internal/domain" // Roles
)

// View is the page currently shown to the session
type View string

const (
	ViewLanding          View = "landing"
	ViewOnboarding       View = "onboarding"
	ViewUserDashboard    View = "user-dashboard"
	ViewTrainerDashboard View = "trainer-dashboard"
)

// DefaultSection is active when a dashboard opens
const DefaultSection = "overview"

var sections = map[domain.Role][]string{
	domain.RoleUser:    {"overview", "health-ai", "asana-analysis", "diet-plan", "recipes", "kids-yoga", "trainers", "community"},
	domain.RoleTrainer: {"overview", "profile", "requests", "courses", "workshops", "community"},
}

// Sections returns the dashboard sections available to role
func Sections(role domain.Role) []string {
	return append([]string(nil), sections[role]...)
}

var (
	ErrNotSignedIn    = errors.New("not signed in")
	ErrNotInWizard    = errors.New("onboarding is not in progress")
	ErrNotOnDashboard = errors.New("no dashboard is open")
	ErrUnknownSection = errors.New("unknown dashboard section")
	ErrUnknownAction  = errors.New("unknown action")
)

// State is one immutable snapshot of a session
type State struct {
	Role      domain.Role `json:"role,omitempty"`
	AccountID int64       `json:"account_id,omitempty"`
	Name      string      `json:"name,omitempty"`
	View      View        `json:"view"`
	Wizard    *Wizard     `json:"wizard,omitempty"`
	Section   string      `json:"section,omitempty"`
}

// Landing is the unauthenticated initial state
func Landing() State {
	return State{View: ViewLanding}
}

// SignedIn reports whether the state belongs to an authenticated account
func (s State) SignedIn() bool {
	return s.AccountID != 0 && s.View != ViewLanding
}

// Banner is the greeting shown next to the account name
func (s State) Banner() string {
	if !s.SignedIn() {
		return ""
	}
	return "Welcome, " + s.Name + "!"
}

// Snapshot is the client-facing rendering of a State
type Snapshot struct {
	State
	Banner       string      `json:"banner,omitempty"`
	Navigation   *Navigation `json:"navigation,omitempty"`
	Progress     float64     `json:"progress,omitempty"`
	ProgressText string      `json:"progress_text,omitempty"`
	StepFields   []Field     `json:"step_fields,omitempty"`
	Sections     []string    `json:"sections,omitempty"`
}

// Render derives everything the view layer needs from s
func Render(s State) Snapshot {
	snap := Snapshot{State: s, Banner: s.Banner()}
	switch s.View {
	case ViewOnboarding:
		if s.Wizard != nil {
			nav := NavigationFor(s.Wizard.Step)
			snap.Navigation = &nav
			snap.Progress = Progress(s.Wizard.Step)
			snap.ProgressText = ProgressText(s.Wizard.Step)
			snap.StepFields = append([]Field(nil), Steps[s.Wizard.Step-1]...)
		}
	case ViewUserDashboard, ViewTrainerDashboard:
		snap.Sections = Sections(s.Role)
	}
	return snap
}

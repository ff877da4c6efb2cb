package app

import (
	"slices" // Section lookup
	"time"   // Completion timestamp

	"sthira/internal/domain" // Accounts and onboarding data
)

// Action is an input to Update
type Action interface{ action() }

// SignIn opens a session for an account
type SignIn struct {
	Role    domain.Role
	Account domain.Account
}

// SignOut returns to the landing page
type SignOut struct{}

// Advance submits the current step's fields and moves forward
type Advance struct {
	Fields map[string]string
	At     time.Time // Completion time if this advance finishes the wizard
}

// Retreat moves the wizard one step back
type Retreat struct{}

// Complete submits the final step and finishes onboarding
type Complete struct {
	Fields map[string]string
	At     time.Time
}

// ShowSection activates one dashboard section
type ShowSection struct {
	Name string
}

// ProfileUpdated refreshes the name shown in the banner
type ProfileUpdated struct {
	Name string
}

func (SignIn) action()         {}
func (SignOut) action()        {}
func (Advance) action()        {}
func (Retreat) action()        {}
func (Complete) action()       {}
func (ShowSection) action()    {}
func (ProfileUpdated) action() {}

// Event is a notification produced by a transition
type Event interface{ EventName() string }

// SessionChanged fires when the signed-in identity or its display name changes
type SessionChanged struct {
	Role      domain.Role `json:"role,omitempty"`
	AccountID int64       `json:"account_id,omitempty"`
	Name      string      `json:"name,omitempty"`
	Banner    string      `json:"banner,omitempty"`
}

// StepChanged fires when the wizard opens or changes step
type StepChanged struct {
	Step         int        `json:"step"`
	Total        int        `json:"total"`
	Progress     float64    `json:"progress"`
	ProgressText string     `json:"progress_text"`
	Navigation   Navigation `json:"navigation"`
}

// SectionChanged fires when a dashboard section becomes active
type SectionChanged struct {
	Role    domain.Role `json:"role"`
	Section string      `json:"section"`
}

// OnboardingCompleted carries the snapshot the caller must attach to the account
type OnboardingCompleted struct {
	AccountID int64                 `json:"account_id"`
	Data      domain.OnboardingData `json:"data"`
}

func (SessionChanged) EventName() string      { return "session_changed" }
func (StepChanged) EventName() string         { return "step_changed" }
func (SectionChanged) EventName() string      { return "section_changed" }
func (OnboardingCompleted) EventName() string { return "onboarding_completed" }

// Update applies a to s. On error the returned state is s unchanged and no events are emitted.
func Update(s State, a Action) (State, []Event, error) {
	switch a := a.(type) {
	case SignIn:
		return signIn(a)
	case SignOut:
		return Landing(), []Event{SessionChanged{}}, nil
	case Advance:
		return advance(s, a)
	case Retreat:
		return retreat(s)
	case Complete:
		return complete(s, a.Fields, a.At)
	case ShowSection:
		return showSection(s, a.Name)
	case ProfileUpdated:
		if !s.SignedIn() {
			return s, nil, ErrNotSignedIn
		}
		next := s
		next.Name = a.Name
		return next, []Event{sessionChanged(next)}, nil
	}
	return s, nil, ErrUnknownAction
}

func sessionChanged(s State) SessionChanged {
	return SessionChanged{Role: s.Role, AccountID: s.AccountID, Name: s.Name, Banner: s.Banner()}
}

func stepChanged(step int) StepChanged {
	return StepChanged{
		Step:         step,
		Total:        TotalSteps,
		Progress:     Progress(step),
		ProgressText: ProgressText(step),
		Navigation:   NavigationFor(step),
	}
}

func signIn(a SignIn) (State, []Event, error) {
	next := State{Role: a.Role, AccountID: a.Account.ID, Name: a.Account.Name}
	switch {
	case a.Role == domain.RoleTrainer:
		next.View = ViewTrainerDashboard
		next.Section = DefaultSection
	case a.Account.Onboarded():
		next.View = ViewUserDashboard
		next.Section = DefaultSection
	default:
		next.View = ViewOnboarding
		next.Wizard = &Wizard{Step: 1, Fields: map[string]string{}}
	}
	events := []Event{sessionChanged(next)}
	if next.Wizard != nil {
		events = append(events, stepChanged(1))
	} else {
		events = append(events, SectionChanged{Role: next.Role, Section: next.Section})
	}
	return next, events, nil
}

func advance(s State, a Advance) (State, []Event, error) {
	if s.View != ViewOnboarding || s.Wizard == nil {
		return s, nil, ErrNotInWizard
	}
	if s.Wizard.Step >= TotalSteps {
		return complete(s, a.Fields, a.At)
	}
	draft := s.Wizard.merge(a.Fields)
	if err := draft.validateStep(draft.Step); err != nil {
		return s, nil, err
	}
	draft.Step++
	next := s
	next.Wizard = &draft
	return next, []Event{stepChanged(draft.Step)}, nil
}

func retreat(s State) (State, []Event, error) {
	if s.View != ViewOnboarding || s.Wizard == nil {
		return s, nil, ErrNotInWizard
	}
	if s.Wizard.Step <= 1 {
		return s, nil, nil
	}
	draft := s.Wizard.merge(nil)
	draft.Step--
	next := s
	next.Wizard = &draft
	return next, []Event{stepChanged(draft.Step)}, nil
}

func complete(s State, fields map[string]string, at time.Time) (State, []Event, error) {
	if s.View != ViewOnboarding || s.Wizard == nil || s.Wizard.Step != TotalSteps {
		return s, nil, ErrNotInWizard
	}
	draft := s.Wizard.merge(fields)
	if err := draft.validateStep(TotalSteps); err != nil {
		return s, nil, err
	}
	if at.IsZero() {
		at = time.Now()
	}
	data, err := draft.snapshot(at)
	if err != nil {
		return s, nil, err
	}
	next := State{
		Role:      s.Role,
		AccountID: s.AccountID,
		Name:      s.Name,
		View:      ViewUserDashboard,
		Section:   DefaultSection,
	}
	return next, []Event{
		OnboardingCompleted{AccountID: s.AccountID, Data: data},
		SectionChanged{Role: next.Role, Section: next.Section},
	}, nil
}

func showSection(s State, name string) (State, []Event, error) {
	if s.View != ViewUserDashboard && s.View != ViewTrainerDashboard {
		return s, nil, ErrNotOnDashboard
	}
	if !slices.Contains(sections[s.Role], name) {
		return s, nil, ErrUnknownSection
	}
	next := s
	next.Section = name
	return next, []Event{SectionChanged{Role: s.Role, Section: name}}, nil
}

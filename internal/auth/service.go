// Package auth implements signup, login and logout against the account
// repository and opens or closes the matching Redis session.
package auth

import (
	"context"      // Context for persistence and Redis
	"errors"       // Sentinel errors
	"fmt"          // Error wrapping
	"strings"      // Input trimming
	"time"         // Token lifetime
	"unicode/utf8" // Password length in characters

	"sthira/internal/accounts" // Account repository
	"sthira/internal/app"      // Session state machine
	"sthira/internal/domain"   // Account models
	"sthira/internal/session"  // Session store
	"sthira/internal/utils"    // JWT helpers

	"github.com/google/uuid"     // Session ids
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// MinPasswordLength is counted in characters
const MinPasswordLength = 6

var (
	ErrMissingFields      = errors.New("Please fill in all fields")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters long")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailTaken         = accounts.ErrEmailTaken
)

// SignupInput is the signup form
type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Result is an opened session
type Result struct {
	Token     string         // Bearer token for the session
	SessionID string         // Redis session id
	Account   domain.Account // Signed-in account
	State     app.State      // State after SignIn
	Events    []app.Event    // Events emitted by SignIn
}

// Service wires the repository, session store and token settings together
type Service struct {
	repo     *accounts.Repository
	sessions session.Store
	secret   string
	ttl      time.Duration
}

// NewService creates an auth service issuing tokens valid for ttl
func NewService(repo *accounts.Repository, sessions session.Store, secret string, ttl time.Duration) *Service {
	return &Service{repo: repo, sessions: sessions, secret: secret, ttl: ttl}
}

// Signup validates the form, creates the account in the role's list and signs it in
func (s *Service) Signup(ctx context.Context, role domain.Role, in SignupInput) (Result, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || strings.TrimSpace(in.Password) == "" || strings.TrimSpace(in.ConfirmPassword) == "" {
		return Result{}, ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return Result{}, ErrPasswordMismatch
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return Result{}, ErrPasswordTooShort
	}
	if _, taken := s.repo.FindByEmail(role, email); taken {
		return Result{}, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, fmt.Errorf("hash password: %w", err)
	}
	acc, err := s.repo.Create(ctx, role, domain.Account{Name: name, Email: email, PasswordHash: string(hash)})
	if err != nil {
		return Result{}, err
	}
	logrus.WithFields(logrus.Fields{
		"role":       role,   // Account role
		"account_id": acc.ID, // New account id
	}).Info("Account created")
	return s.open(ctx, role, acc)
}

// Login checks the credentials against the role's list and signs the account in
func (s *Service) Login(ctx context.Context, role domain.Role, email, password string) (Result, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Result{}, ErrMissingFields
	}
	acc, ok := s.repo.FindByEmail(role, email)
	if !ok {
		return Result{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return Result{}, ErrInvalidCredentials
	}
	return s.open(ctx, role, acc)
}

// Logout ends the session and returns the landing state
func (s *Service) Logout(ctx context.Context, sessionID string, current app.State) (app.State, []app.Event, error) {
	next, events, err := app.Update(current, app.SignOut{})
	if err != nil {
		return current, nil, err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return current, nil, err
	}
	logrus.WithFields(logrus.Fields{
		"role":       current.Role,      // Account role
		"account_id": current.AccountID, // Signed-out account
	}).Info("Signed out")
	return next, events, nil
}

func (s *Service) open(ctx context.Context, role domain.Role, acc domain.Account) (Result, error) {
	state, events, err := app.Update(app.Landing(), app.SignIn{Role: role, Account: acc})
	if err != nil {
		return Result{}, err
	}
	id := uuid.NewString()
	if err := s.sessions.Put(ctx, id, state); err != nil {
		return Result{}, err
	}
	token, err := utils.GenerateJWT(id, acc.ID, string(role), s.secret, s.ttl)
	if err != nil {
		_ = s.sessions.Delete(ctx, id)
		return Result{}, fmt.Errorf("sign token: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"role":       role,       // Account role
		"account_id": acc.ID,     // Account id
		"view":       state.View, // Landing view after sign in
	}).Info("Signed in")
	return Result{Token: token, SessionID: id, Account: acc, State: state, Events: events}, nil
}

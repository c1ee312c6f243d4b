package services

import (
	"context"
	"strings"

	"luxride/internal/domain"
	"luxride/internal/domain/models"
	"luxride/internal/repositories"
	"luxride/internal/utils"
)

// DriverLoginMessage is shown when a driver page is opened without a driver session.
const DriverLoginMessage = "Please login as a driver to access this page"

type SessionService struct {
	Repo      repositories.SessionRepository
	RequestID string
}

func (s SessionService) Current(ctx context.Context) (models.Session, error) {
	sess, err := s.Repo.Get(ctx)
	if err != nil {
		return models.Session{}, domain.InternalError{Msg: "failed to load session", Err: err}
	}
	return sess, nil
}

// Login stores the user record and type flag that gate the driver pages.
func (s SessionService) Login(ctx context.Context, sess models.Session) (models.Session, error) {
	if sess.User == nil || strings.TrimSpace(sess.User.Email) == "" {
		return models.Session{}, domain.ValidationError{Field: "user", Msg: "user with email is required"}
	}
	ut := strings.ToLower(utils.FirstNonEmpty(utils.TrimOrEmpty(sess.UserType), utils.TrimOrEmpty(sess.User.UserType)))
	switch domain.UserType(ut) {
	case domain.UserTypeDriver, domain.UserTypeRider:
	default:
		return models.Session{}, domain.ValidationError{Field: "userType", Msg: "userType must be rider or driver"}
	}
	sess.UserType = ut
	sess.User.UserType = ut
	if err := s.Repo.Save(ctx, sess); err != nil {
		return models.Session{}, domain.InternalError{Msg: "failed to save session", Err: err}
	}
	utils.LogEvent(s.RequestID, "session", "login", "user_type="+ut)
	return sess, nil
}

func (s SessionService) Logout(ctx context.Context) error {
	if err := s.Repo.Clear(ctx); err != nil {
		return domain.InternalError{Msg: "failed to clear session", Err: err}
	}
	utils.LogEvent(s.RequestID, "session", "logout", "")
	return nil
}

// IsDriver reports whether a driver is signed in. Both the record and the flag must agree.
func (s SessionService) IsDriver(ctx context.Context) (bool, error) {
	sess, err := s.Current(ctx)
	if err != nil {
		return false, err
	}
	return sess.User != nil && sess.UserType == string(domain.UserTypeDriver), nil
}

// RequireDriver returns an UnauthorizedError unless a driver is signed in.
func (s SessionService) RequireDriver(ctx context.Context) error {
	ok, err := s.IsDriver(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return domain.UnauthorizedError{Msg: DriverLoginMessage}
	}
	return nil
}

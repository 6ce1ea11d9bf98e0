package service

import (
	"context"
	"net/http"

	"oj_client/internal/api"
	"oj_client/internal/domain/model"
)

// AuthService covers login, registration, profile and session endpoints.
type AuthService struct {
	dispatcher Dispatcher
}

func NewAuthService(d Dispatcher) *AuthService {
	return &AuthService{dispatcher: d}
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPost, "login", &api.Options{Body: req})
}

func (s *AuthService) CheckUsernameOrEmail(ctx context.Context, username, email string) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPost, "check_username_or_email", &api.Options{
		Body: map[string]string{"username": username, "email": email},
	})
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPost, "register", &api.Options{Body: req})
}

func (s *AuthService) Logout(ctx context.Context) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "logout", nil)
}

func (s *AuthService) GetCaptcha(ctx context.Context) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "captcha", nil)
}

// GetUserInfo fetches the profile of username, or of the current user when
// username is empty.
func (s *AuthService) GetUserInfo(ctx context.Context, username string) (*api.Response, error) {
	params := api.Params{}
	if username != "" {
		params["username"] = username
	}
	return s.dispatcher.Do(ctx, http.MethodGet, "profile", &api.Options{Params: params})
}

func (s *AuthService) UpdateProfile(ctx context.Context, profile model.Fields) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPut, "profile", &api.Options{Body: profile})
}

func (s *AuthService) FreshDisplayID(ctx context.Context, userID int64) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "profile/fresh_display_id", &api.Options{
		Params: api.Params{"user_id": userID},
	})
}

// TwoFactorAuth talks to the 2FA endpoint; method picks the action
// (GET for the QR code, POST to enable, PUT to disable).
func (s *AuthService) TwoFactorAuth(ctx context.Context, method string, req model.TwoFactorAuthRequest) (*api.Response, error) {
	return s.dispatcher.Do(ctx, method, "two_factor_auth", &api.Options{Body: req})
}

func (s *AuthService) TFARequiredCheck(ctx context.Context, username string) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPost, "tfa_required", &api.Options{
		Body: map[string]string{"username": username},
	})
}

func (s *AuthService) GetSessions(ctx context.Context) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodGet, "sessions", nil)
}

func (s *AuthService) DeleteSession(ctx context.Context, sessionKey string) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodDelete, "sessions", &api.Options{
		Params: api.Params{"session_key": sessionKey},
	})
}

func (s *AuthService) ApplyResetPassword(ctx context.Context, req model.ApplyResetPasswordRequest) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPost, "apply_reset_password", &api.Options{Body: req})
}

func (s *AuthService) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPost, "reset_password", &api.Options{Body: req})
}

func (s *AuthService) ChangePassword(ctx context.Context, req model.ChangePasswordRequest) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPost, "change_password", &api.Options{Body: req})
}

func (s *AuthService) ChangeEmail(ctx context.Context, req model.ChangeEmailRequest) (*api.Response, error) {
	return s.dispatcher.Do(ctx, http.MethodPost, "change_email", &api.Options{Body: req})
}

package model

import (
	"time"
)

const (
	AdminTypeRegular = "Regular User"
	AdminTypeAdmin   = "Admin"
	AdminTypeSuper   = "Super Admin"
)

// Fields is a free-form request body, sent as-is.
type Fields map[string]interface{}

type User struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	AdminType     string    `json:"admin_type"`
	CreateTime    time.Time `json:"create_time"`
	LastLogin     time.Time `json:"last_login"`
	TwoFactorAuth bool      `json:"two_factor_auth"`
	OpenAPI       bool      `json:"open_api"`
	IsDisabled    bool      `json:"is_disabled"`
}

func (u User) IsAdmin() bool {
	return u.AdminType == AdminTypeAdmin || u.AdminType == AdminTypeSuper
}

type UserProfile struct {
	ID               int64  `json:"id"`
	User             User   `json:"user"`
	RealName         string `json:"real_name"`
	Avatar           string `json:"avatar"`
	Blog             string `json:"blog"`
	Mood             string `json:"mood"`
	Github           string `json:"github"`
	School           string `json:"school"`
	Major            string `json:"major"`
	Language         string `json:"language"`
	AcceptedNumber   int    `json:"accepted_number"`
	TotalScore       int    `json:"total_score"`
	SubmissionNumber int    `json:"submission_number"`
}

type Session struct {
	SessionKey     string    `json:"session_key"`
	IP             string    `json:"ip"`
	UserAgent      string    `json:"user_agent"`
	LastActivity   time.Time `json:"last_activity"`
	CurrentSession bool      `json:"current_session"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TFACode  string `json:"tfa_code,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Captcha  string `json:"captcha"`
}

type ApplyResetPasswordRequest struct {
	Email   string `json:"email"`
	Captcha string `json:"captcha"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
	TFACode     string `json:"tfa_code,omitempty"`
}

type ChangeEmailRequest struct {
	Password string `json:"password"`
	NewEmail string `json:"new_email"`
	TFACode  string `json:"tfa_code,omitempty"`
}

type TwoFactorAuthRequest struct {
	Code string `json:"code"`
}

type UsernameOrEmailCheck struct {
	Username bool `json:"username"`
	Email    bool `json:"email"`
}

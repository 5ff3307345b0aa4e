package service

import (
	"github.com/lightwind/auth-service/internal/config"
	"github.com/lightwind/auth-service/internal/model"
	"github.com/lightwind/auth-service/internal/repository"
	"github.com/lightwind/auth-service/internal/utils"
)

// TokenPair bundles a short-lived access token and a long-lived refresh
// token. ExpiresIn is the access token lifetime in seconds, echoed to
// clients so they can schedule refreshes.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// UserInfo is the public identity projection returned by CurrentUser. It
// never carries the password verifier.
type UserInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// AuthService composes the credential store, password policy, token
// helpers and the refresh-token ledger into the operations callers
// actually invoke. One instance is built at startup and shared across
// requests; all state lives in the injected stores.
type AuthService struct {
	cfg      config.Config
	policy   utils.PasswordPolicy
	users    *repository.UserStore
	ledger   *repository.TokenLedger
	sessions *repository.SessionStore
}

func NewAuthService(cfg config.Config, policy utils.PasswordPolicy,
	users *repository.UserStore, ledger *repository.TokenLedger,
	sessions *repository.SessionStore) *AuthService {
	return &AuthService{
		cfg:      cfg,
		policy:   policy,
		users:    users,
		ledger:   ledger,
		sessions: sessions,
	}
}

// RegisterUser creates an account without issuing tokens. The session
// variant uses it directly; the token variant goes through Register.
// Returns repository.ErrUserExists when the username is taken.
func (s *AuthService) RegisterUser(username, password, email string) (model.User, error) {
	verifier, err := s.policy.Encode(password)
	if err != nil {
		return model.User{}, err
	}
	return s.users.Create(username, email, verifier)
}

// Register creates an account and immediately issues an initial token
// pair, recording the refresh token in the ledger.
func (s *AuthService) Register(username, password, email string) (model.User, *TokenPair, error) {
	u, err := s.RegisterUser(username, password, email)
	if err != nil {
		return model.User{}, nil, err
	}
	pair, err := s.issuePair(u)
	if err != nil {
		return model.User{}, nil, err
	}
	return u, pair, nil
}

// Login verifies the credentials and issues a fresh token pair. Absent
// user and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (model.User, *TokenPair, error) {
	u, ok := s.users.FindByUsername(username)
	if !ok || !s.policy.Matches(password, u.Verifier) {
		return model.User{}, nil, ErrInvalidCredentials
	}
	pair, err := s.issuePair(u)
	if err != nil {
		return model.User{}, nil, err
	}
	return u, pair, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated. Signature validity alone is not
// enough: the ledger must hold a live record for exactly this token and
// user id — that check is what makes logout effective.
func (s *AuthService) Refresh(refreshToken string) (string, int, error) {
	claims, err := utils.VerifyToken(s.cfg.JWTSecret, refreshToken)
	if err != nil {
		return "", 0, ErrInvalidToken
	}
	if !s.ledger.IsValid(refreshToken, claims.UserID) {
		return "", 0, ErrInvalidToken
	}
	access, err := utils.NewToken(s.cfg.JWTSecret, claims.Subject, claims.UserID, s.cfg.AccessTTLSec)
	if err != nil {
		return "", 0, err
	}
	return access, s.cfg.AccessTTLSec, nil
}

// Logout revokes every outstanding refresh token for the owner of the
// presented access token and returns that user. The token may already be
// expired — it only has to carry a valid signature so the embedded
// username can be trusted.
func (s *AuthService) Logout(accessToken string) (model.User, error) {
	username, err := utils.ExtractUsername(s.cfg.JWTSecret, accessToken)
	if err != nil {
		return model.User{}, ErrInvalidToken
	}
	u, ok := s.users.FindByUsername(username)
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	s.ledger.InvalidateAllForUser(u.ID)
	return u, nil
}

// CurrentUser resolves a username to its public projection.
func (s *AuthService) CurrentUser(username string) (UserInfo, error) {
	u, ok := s.users.FindByUsername(username)
	if !ok {
		return UserInfo{}, ErrUserNotFound
	}
	return UserInfo{ID: u.ID, Username: u.Username}, nil
}

// LoginSession verifies the credentials and establishes a server-side
// session, displacing any previous session for the same user.
func (s *AuthService) LoginSession(username, password string) (model.Session, error) {
	u, ok := s.users.FindByUsername(username)
	if !ok || !s.policy.Matches(password, u.Verifier) {
		return model.Session{}, ErrInvalidCredentials
	}
	return s.sessions.Create(u)
}

// SessionUser resolves a session id to the public identity of its owner.
func (s *AuthService) SessionUser(sessionID string) (UserInfo, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return UserInfo{}, ErrInvalidToken
	}
	return s.CurrentUser(sess.Username)
}

// LogoutSession destroys the session; unknown ids are tolerated.
func (s *AuthService) LogoutSession(sessionID string) {
	s.sessions.Destroy(sessionID)
}

func (s *AuthService) issuePair(u model.User) (*TokenPair, error) {
	access, err := utils.NewToken(s.cfg.JWTSecret, u.Username, u.ID, s.cfg.AccessTTLSec)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.NewToken(s.cfg.JWTSecret, u.Username, u.ID, s.cfg.RefreshTTLSec)
	if err != nil {
		return nil, err
	}
	s.ledger.Save(refresh, u.ID)
	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresIn: s.cfg.AccessTTLSec}, nil
}

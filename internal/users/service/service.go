package service

import (
	"context"
	"errors"

	"pitchside_backend/internal/email"
	"pitchside_backend/internal/users/repository"
	"pitchside_backend/internal/users/token"
	"pitchside_backend/internal/users/transport"
	"pitchside_backend/platform/apperr"
	"pitchside_backend/platform/config"
	"pitchside_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// RoleUser and RoleAdmin are the only two valid role values.
	RoleUser  = "user"
	RoleAdmin = "admin"

	defaultProfileImage = "/default-profile.png"

	msgInvalidCredentials = "Invalid email or password"
	msgDuplicateUser      = "Username or email already exists. Please choose another."
	msgDuplicateUsername  = "Username already exists. Please choose another."
	msgUserNotFound       = "User not found"
)

// Repository is the persistence surface the user service needs.
type Repository interface {
	Create(ctx context.Context, username, email, passwordHash, role string, profileImage *string) (repository.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.User, error)
	GetByEmail(ctx context.Context, email string) (repository.User, error)
	List(ctx context.Context) ([]repository.User, error)
	UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error)
	UsernameTakenByOther(ctx context.Context, username string, selfID uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, username, passwordHash, profileImage string) (repository.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
	cfg  config.AuthServiceConfig
	mail email.Sender
	log  *logger.Logger
}

func New(repo Repository, cfg config.AuthServiceConfig, mail email.Sender, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, mail: mail, log: log}
}

// Register creates a user with a bcrypt-hashed password. Username and email
// must both be free (exact, case-sensitive match).
func (s *Service) Register(ctx context.Context, req transport.RegisterRequest) (transport.UserResponse, error) {
	exists, err := s.repo.UsernameOrEmailExists(ctx, req.Username, req.Email)
	if err != nil {
		s.log.DatabaseError("users.Register", err)
		return transport.UserResponse{}, apperr.Wrap(apperr.KindInternal, "could not create user", err)
	}
	if exists {
		return transport.UserResponse{}, apperr.BadRequest(msgDuplicateUser)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return transport.UserResponse{}, apperr.Wrap(apperr.KindInternal, "could not hash password", err)
	}

	var profileImage *string
	if req.ProfileImage != "" {
		profileImage = &req.ProfileImage
	}

	user, err := s.repo.Create(ctx, req.Username, req.Email, string(hash), RoleUser, profileImage)
	if err != nil {
		s.log.DatabaseError("users.Register", err)
		return transport.UserResponse{}, apperr.Wrap(apperr.KindInternal, "could not create user", err)
	}

	s.log.AuthEvent("register", user.Email, true, "")

	// Best effort; registration never fails on mail delivery.
	if err := s.mail.SendWelcomeEmail(ctx, user.Email, user.Username); err != nil {
		s.log.Warn("welcome email failed", "email", user.Email, "error", err)
	}

	return toUserResponse(user), nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password produce the identical response; only the log lines differ.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		s.log.AuthEvent("login", req.Email, false, "user not found")
		return transport.LoginResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.log.AuthEvent("login", req.Email, false, "password mismatch")
		return transport.LoginResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	raw, err := token.Sign(s.cfg.GetJWTSecret(), user.ID, user.Email, user.Role, s.cfg.GetTokenTTL())
	if err != nil {
		return transport.LoginResponse{}, apperr.Wrap(apperr.KindInternal, "could not issue token", err)
	}

	s.log.AuthEvent("login", user.Email, true, "")

	resp := toUserResponse(user)
	if resp.ProfileImage == "" {
		resp.ProfileImage = defaultProfileImage
	}

	return transport.LoginResponse{
		Token:   raw,
		Message: "Login successful",
		User:    resp,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]transport.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.DatabaseError("users.List", err)
		return nil, apperr.Wrap(apperr.KindInternal, "could not list users", err)
	}

	responses := make([]transport.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}
	return responses, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.UserResponse{}, apperr.NotFound(msgUserNotFound)
		}
		return transport.UserResponse{}, apperr.Wrap(apperr.KindInternal, "could not fetch user", err)
	}
	return toUserResponse(user), nil
}

// Update changes the caller's own profile. The ownership check compares the
// token subject with the target id; a mismatch is forbidden regardless of role.
func (s *Service) Update(ctx context.Context, callerID, targetID uuid.UUID, req transport.UpdateUserRequest) (transport.UpdatedUserResponse, error) {
	if callerID != targetID {
		return transport.UpdatedUserResponse{}, apperr.Forbidden("Forbidden: You can only update your own profile")
	}

	if req.Username != "" {
		taken, err := s.repo.UsernameTakenByOther(ctx, req.Username, targetID)
		if err != nil {
			return transport.UpdatedUserResponse{}, apperr.Wrap(apperr.KindInternal, "could not update user", err)
		}
		if taken {
			return transport.UpdatedUserResponse{}, apperr.BadRequest(msgDuplicateUsername)
		}
	}

	passwordHash := ""
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return transport.UpdatedUserResponse{}, apperr.Wrap(apperr.KindInternal, "could not hash password", err)
		}
		passwordHash = string(hash)
	}

	user, err := s.repo.Update(ctx, targetID, req.Username, passwordHash, req.ProfileImage)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.UpdatedUserResponse{}, apperr.NotFound(msgUserNotFound)
		}
		s.log.DatabaseError("users.Update", err)
		return transport.UpdatedUserResponse{}, apperr.Wrap(apperr.KindInternal, "could not update user", err)
	}

	resp := transport.UpdatedUserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
	}
	if user.ProfileImage != nil {
		resp.ProfileImage = *user.ProfileImage
	}
	return resp, nil
}

// Delete removes a user. Allowed for the user themselves or an admin.
func (s *Service) Delete(ctx context.Context, callerID uuid.UUID, callerRole string, targetID uuid.UUID) error {
	if callerRole != RoleAdmin && callerID != targetID {
		return apperr.Forbidden("Unauthorized to delete this user")
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(msgUserNotFound)
		}
		s.log.DatabaseError("users.Delete", err)
		return apperr.Wrap(apperr.KindInternal, "could not delete user", err)
	}
	return nil
}

func toUserResponse(user repository.User) transport.UserResponse {
	resp := transport.UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	if user.ProfileImage != nil {
		resp.ProfileImage = *user.ProfileImage
	}
	return resp
}

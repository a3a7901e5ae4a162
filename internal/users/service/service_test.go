package service

import (
	"context"
	"testing"
	"time"

	"pitchside_backend/internal/users/repository"
	"pitchside_backend/internal/users/token"
	"pitchside_backend/internal/users/transport"
	"pitchside_backend/platform/apperr"
	"pitchside_backend/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	users []repository.User
}

func (f *fakeRepo) Create(_ context.Context, username, email, passwordHash, role string, profileImage *string) (repository.User, error) {
	user := repository.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		ProfileImage: profileImage,
		CreatedAt:    time.Now(),
	}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrNotFound
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (repository.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]repository.User, error) {
	return f.users, nil
}

func (f *fakeRepo) UsernameOrEmailExists(_ context.Context, username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) UsernameTakenByOther(_ context.Context, username string, selfID uuid.UUID) (bool, error) {
	for _, u := range f.users {
		if u.Username == username && u.ID != selfID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Update(_ context.Context, id uuid.UUID, username, passwordHash, profileImage string) (repository.User, error) {
	for i, u := range f.users {
		if u.ID != id {
			continue
		}
		if username != "" {
			f.users[i].Username = username
		}
		if passwordHash != "" {
			f.users[i].PasswordHash = passwordHash
		}
		if profileImage != "" {
			f.users[i].ProfileImage = &profileImage
		}
		return f.users[i], nil
	}
	return repository.User{}, repository.ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeAuthConfig struct{}

func (fakeAuthConfig) GetJWTSecret() string       { return "test-secret" }
func (fakeAuthConfig) GetTokenTTL() time.Duration { return time.Hour }

type noopMailer struct{}

func (noopMailer) SendWelcomeEmail(context.Context, string, string) error { return nil }

func newTestService(repo *fakeRepo) *Service {
	return New(repo, fakeAuthConfig{}, noopMailer{}, logger.New("development"))
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), transport.RegisterRequest{
		Username: "tiger",
		Email:    "tiger@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Role != RoleUser {
		t.Errorf("role = %q, want %q", resp.Role, RoleUser)
	}

	stored := repo.users[0]
	if stored.PasswordHash == "supersecret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterRejectsDuplicateUsernameOrEmail(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, transport.RegisterRequest{Username: "tiger", Email: "tiger@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	cases := []transport.RegisterRequest{
		{Username: "tiger", Email: "other@example.com", Password: "supersecret"},
		{Username: "other", Email: "tiger@example.com", Password: "supersecret"},
	}
	for _, req := range cases {
		_, err := svc.Register(ctx, req)
		if apperr.GetKind(err) != apperr.KindBadRequest {
			t.Errorf("Register(%q/%q) kind = %v, want bad request", req.Username, req.Email, apperr.GetKind(err))
		}
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, transport.RegisterRequest{Username: "tiger", Email: "tiger@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Login(ctx, transport.LoginRequest{Email: "tiger@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Message != "Login successful" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.User.ProfileImage != defaultProfileImage {
		t.Errorf("profile image = %q, want default", resp.User.ProfileImage)
	}

	claims, err := token.Parse("test-secret", resp.Token)
	if err != nil {
		t.Fatalf("Parse issued token: %v", err)
	}
	if claims.Email != "tiger@example.com" || claims.Role != RoleUser {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, transport.RegisterRequest{Username: "tiger", Email: "tiger@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, errUnknown := svc.Login(ctx, transport.LoginRequest{Email: "nobody@example.com", Password: "supersecret"})
	_, errWrongPw := svc.Login(ctx, transport.LoginRequest{Email: "tiger@example.com", Password: "wrongpass"})

	if errUnknown == nil || errWrongPw == nil {
		t.Fatal("expected both logins to fail")
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Errorf("failure messages differ: %q vs %q", errUnknown, errWrongPw)
	}
	if apperr.GetKind(errUnknown) != apperr.KindUnauthorized || apperr.GetKind(errWrongPw) != apperr.KindUnauthorized {
		t.Error("expected unauthorized kind for both failures")
	}
}

func TestUpdateRejectsOtherUsersProfile(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, transport.RegisterRequest{Username: "tiger", Email: "tiger@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	target := repo.users[0].ID

	_, err := svc.Update(ctx, uuid.New(), target, transport.UpdateUserRequest{Username: "sneaky"})
	if apperr.GetKind(err) != apperr.KindForbidden {
		t.Fatalf("kind = %v, want forbidden", apperr.GetKind(err))
	}
}

func TestUpdateRejectsUsernameTakenByOther(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	for _, u := range []string{"tiger", "lion"} {
		if _, err := svc.Register(ctx, transport.RegisterRequest{Username: u, Email: u + "@example.com", Password: "supersecret"}); err != nil {
			t.Fatalf("Register %s: %v", u, err)
		}
	}
	lion := repo.users[1].ID

	_, err := svc.Update(ctx, lion, lion, transport.UpdateUserRequest{Username: "tiger"})
	if apperr.GetKind(err) != apperr.KindBadRequest {
		t.Fatalf("kind = %v, want bad request", apperr.GetKind(err))
	}

	// Keeping one's own username is not a conflict.
	if _, err := svc.Update(ctx, lion, lion, transport.UpdateUserRequest{Username: "lion"}); err != nil {
		t.Fatalf("self-rename to same name: %v", err)
	}
}

func TestDeleteAuthorization(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, transport.RegisterRequest{Username: "tiger", Email: "tiger@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	target := repo.users[0].ID

	if err := svc.Delete(ctx, uuid.New(), RoleUser, target); apperr.GetKind(err) != apperr.KindForbidden {
		t.Fatalf("stranger delete kind = %v, want forbidden", apperr.GetKind(err))
	}
	if err := svc.Delete(ctx, uuid.New(), RoleAdmin, target); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatal("user still present after admin delete")
	}

	if err := svc.Delete(ctx, uuid.New(), RoleAdmin, target); apperr.GetKind(err) != apperr.KindNotFound {
		t.Errorf("second delete kind = %v, want not found", apperr.GetKind(err))
	}
}

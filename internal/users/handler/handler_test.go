package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pitchside_backend/internal/users/transport"
	"pitchside_backend/platform/apperr"
	"pitchside_backend/platform/httpkit"
	"pitchside_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type fakeService struct {
	registered transport.RegisterRequest
}

func (f *fakeService) Register(_ context.Context, req transport.RegisterRequest) (transport.UserResponse, error) {
	f.registered = req
	return transport.UserResponse{ID: uuid.NewString(), Username: req.Username, Email: req.Email, Role: "user"}, nil
}

func (f *fakeService) Login(context.Context, transport.LoginRequest) (transport.LoginResponse, error) {
	return transport.LoginResponse{}, apperr.Unauthorized("Invalid email or password")
}

func (f *fakeService) List(context.Context) ([]transport.UserResponse, error) {
	return []transport.UserResponse{}, nil
}

func (f *fakeService) GetByID(context.Context, uuid.UUID) (transport.UserResponse, error) {
	return transport.UserResponse{}, apperr.NotFound("User not found")
}

func (f *fakeService) Update(context.Context, uuid.UUID, uuid.UUID, transport.UpdateUserRequest) (transport.UpdatedUserResponse, error) {
	return transport.UpdatedUserResponse{}, nil
}

func (f *fakeService) Delete(context.Context, uuid.UUID, string, uuid.UUID) error {
	return nil
}

func newTestRouter(svc UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, validator.New())

	r := gin.New()
	r.POST("/api/user", h.Register)
	r.GET("/api/user/protected", h.Protected)
	r.GET("/api/user/:id", func(c *gin.Context) {
		c.Set(httpkit.ContextUserIDKey, uuid.New())
		h.GetByID(c)
	})
	return r
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r := newTestRouter(&fakeService{})

	body := `{"username":"tiger","email":"tiger@example.com","password":"abc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRegisterReturnsCreated(t *testing.T) {
	svc := &fakeService{}
	r := newTestRouter(svc)

	body := `{"username":"tiger","email":"tiger@example.com","password":"supersecret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if svc.registered.Username != "tiger" {
		t.Errorf("service saw username %q", svc.registered.Username)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Error("response leaks a password field")
	}
}

func TestProtectedWithoutIdentityIsUnauthorized(t *testing.T) {
	r := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestGetByIDRejectsMalformedID(t *testing.T) {
	r := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetByIDMapsNotFound(t *testing.T) {
	r := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

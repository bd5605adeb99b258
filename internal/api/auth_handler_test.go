package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetrow/salon-backend/internal/auth"
	"github.com/velvetrow/salon-backend/internal/user"
)

type fakeUserService struct {
	registerFn func(ctx context.Context, req user.RegisterRequest) (*user.User, error)
	loginFn    func(ctx context.Context, email, password string) (*user.User, error)
	getByIDFn  func(ctx context.Context, id string) (*user.User, error)
}

func (f *fakeUserService) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (*user.User, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	return f.getByIDFn(ctx, id)
}

const testCookieName = "auth_token"

func setupAuthRouter(t *testing.T, svc user.Service) (*gin.Engine, *auth.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	handler := NewAuthHandler(svc, jwtManager, testCookieName, false)

	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/logout", handler.Logout)

	users := r.Group("/users")
	users.Use(auth.AuthRequired(jwtManager, testCookieName))
	users.GET("/me", handler.Me)

	return r, jwtManager
}

func testUser(role user.Role) *user.User {
	return &user.User{
		ID:       uuid.NewString(),
		Name:     "Amy",
		Email:    "amy@example.com",
		Role:     role,
		IsActive: true,
	}
}

func TestRegisterEndpoint(t *testing.T) {
	var gotReq user.RegisterRequest
	svc := &fakeUserService{
		registerFn: func(_ context.Context, req user.RegisterRequest) (*user.User, error) {
			gotReq = req
			u := testUser(req.Role)
			u.Name = req.Name
			u.Email = req.Email
			return u, nil
		},
	}
	r, _ := setupAuthRouter(t, svc)

	// Role in the payload is ignored; self-registration is always a customer.
	payload := `{"name":"Amy","email":"amy@example.com","password":"supersecret","role":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, user.RoleCustomer, gotReq.Role)

	var body RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "customer", body.User.Role)
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	svc := &fakeUserService{
		registerFn: func(_ context.Context, _ user.RegisterRequest) (*user.User, error) {
			return nil, user.ErrEmailAlreadyUsed
		},
	}
	r, _ := setupAuthRouter(t, svc)

	payload := `{"name":"Amy","email":"amy@example.com","password":"supersecret"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterEndpointBadPayload(t *testing.T) {
	svc := &fakeUserService{}
	r, _ := setupAuthRouter(t, svc)

	tests := []struct {
		name    string
		payload string
	}{
		{"missing password", `{"name":"Amy","email":"amy@example.com"}`},
		{"bad email", `{"name":"Amy","email":"not-an-email","password":"supersecret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginEndpointSetsCookie(t *testing.T) {
	u := testUser(user.RoleCustomer)
	svc := &fakeUserService{
		loginFn: func(_ context.Context, email, password string) (*user.User, error) {
			if email == "amy@example.com" && password == "supersecret" {
				return u, nil
			}
			return nil, user.ErrInvalidCredentials
		},
	}
	r, jwtManager := setupAuthRouter(t, svc)

	payload := `{"email":"amy@example.com","password":"supersecret"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "login must set the auth cookie")
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	claims, err := jwtManager.ParseAndValidate(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "customer", claims.Role)

	// The token is also echoed in the body for non-browser clients.
	var body LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, cookie.Value, body.AccessToken)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	svc := &fakeUserService{
		loginFn: func(_ context.Context, _, _ string) (*user.User, error) {
			return nil, user.ErrInvalidCredentials
		},
	}
	r, _ := setupAuthRouter(t, svc)

	payload := `{"email":"amy@example.com","password":"wrong"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies(), "failed login must not set a cookie")
}

func TestLogoutEndpointClearsCookie(t *testing.T) {
	svc := &fakeUserService{}
	r, _ := setupAuthRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "cookie must be expired")
}

func TestMeEndpoint(t *testing.T) {
	u := testUser(user.RoleCustomer)
	svc := &fakeUserService{
		getByIDFn: func(_ context.Context, id string) (*user.User, error) {
			if id == u.ID {
				return u, nil
			}
			return nil, user.ErrNotFound
		},
	}
	r, jwtManager := setupAuthRouter(t, svc)

	token, err := jwtManager.GenerateAccessToken(u.ID, string(u.Role))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, u.ID, body.User.ID)
	assert.Equal(t, "amy@example.com", body.User.Email)

	// No cookie, no identity.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

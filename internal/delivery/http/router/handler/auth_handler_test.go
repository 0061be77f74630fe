package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"runclub/config"
	httpmiddleware "runclub/internal/delivery/http/middleware"
	"runclub/internal/delivery/http/validator"
	"runclub/internal/domain/entity"
	domainerrors "runclub/internal/domain/errors"
	"runclub/internal/domain/repository"
	"runclub/internal/infra/auth"
	"runclub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memUserRepo is an in-memory credential store for handler tests. It
// enforces email uniqueness the way the postgres repository does.
type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.Email] = &copied

	return nil
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.SecretKey.JWT = "handler_test_secret_key_very_long_for_testing"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	uc := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     newMemUserRepo(),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Logger:       logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAuthHandler(uc, logger)
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
	e.GET("/health", HealthCheck)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler_SignupThenLogin(t *testing.T) {
	e := newTestServer(t)

	// 1. Fresh signup succeeds with 201 and no token.
	rec := doJSON(e, http.MethodPost, "/signup",
		`{"email":"a@x.com","password":"pw123","nickname":"runner1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "회원가입 완료", body["message"])
	assert.NotContains(t, body, "token")

	// 2. Same email again is a conflict regardless of other fields.
	rec = doJSON(e, http.MethodPost, "/signup",
		`{"email":"a@x.com","password":"other","nickname":"someone_else"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "이미 가입된 이메일입니다.", body["message"])

	// 3. Wrong password is rejected.
	rec = doJSON(e, http.MethodPost, "/login",
		`{"email":"a@x.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// 4. Correct credentials log in with a token and the public profile.
	rec = doJSON(e, http.MethodPost, "/login",
		`{"email":"a@x.com","password":"pw123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "로그인 성공", body["message"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "runner1", user["nickname"])

	// The password hash never reaches the client.
	assert.NotContains(t, rec.Body.String(), "password_hash")
	assert.NotContains(t, user, "password_hash")
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	e := newTestServer(t)

	for _, body := range []string{
		`{"password":"pw123","nickname":"runner1"}`,
		`{"email":"a@x.com","nickname":"runner1"}`,
		`{"email":"a@x.com","password":"pw123"}`,
		`{"email":"","password":"pw123","nickname":"runner1"}`,
		`{}`,
	} {
		rec := doJSON(e, http.MethodPost, "/signup", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		decoded := decodeBody(t, rec)
		assert.Equal(t, false, decoded["success"])
		assert.Equal(t, "이메일, 비밀번호, 닉네임은 필수입니다.", decoded["message"])
	}
}

func TestAuthHandler_Signup_OptionalProfileFields(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/signup", `{
		"email":"b@x.com","password":"pw123","nickname":"runner2",
		"full_name":"Kim Runner","birth_year":1990,"gender":"F","city":"Seoul",
		"running_level":"INTERMEDIATE","preferred_distance_km":10.5,"weekly_goal_runs":3
	}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/login", `{"email":"b@x.com","password":"pw123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INTERMEDIATE", user["running_level"])
	assert.Equal(t, "Seoul", user["city"])
	// Fields outside the public projection stay server-side.
	assert.NotContains(t, user, "full_name")
	assert.NotContains(t, user, "birth_year")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newTestServer(t)

	for _, body := range []string{
		`{"password":"pw123"}`,
		`{"email":"a@x.com"}`,
		`{"email":"","password":""}`,
		`{}`,
	} {
		rec := doJSON(e, http.MethodPost, "/login", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		decoded := decodeBody(t, rec)
		assert.Equal(t, false, decoded["success"])
		assert.Equal(t, "이메일과 비밀번호를 입력해주세요.", decoded["message"])
	}
}

func TestAuthHandler_Login_UnknownEmailMatchesWrongPassword(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/signup",
		`{"email":"a@x.com","password":"pw123","nickname":"runner1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	unknown := doJSON(e, http.MethodPost, "/login",
		`{"email":"nobody@x.com","password":"pw123"}`)
	wrong := doJSON(e, http.MethodPost, "/login",
		`{"email":"a@x.com","password":"wrong"}`)

	// Status and body must be indistinguishable between the two cases.
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.JSONEq(t, unknown.Body.String(), wrong.Body.String())
	assert.Equal(t, "이메일 또는 비밀번호가 올바르지 않습니다.",
		decodeBody(t, unknown)["message"])
}

func TestAuthHandler_Login_TokenClaims(t *testing.T) {
	e := newTestServer(t)

	cfg := &config.Config{}
	cfg.SecretKey.JWT = "handler_test_secret_key_very_long_for_testing"
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	rec := doJSON(e, http.MethodPost, "/signup",
		`{"email":"a@x.com","password":"pw123","nickname":"runner1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/login",
		`{"email":"a@x.com","password":"pw123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok)

	claims, err := tokenService.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	user := body["user"].(map[string]any)
	assert.EqualValues(t, user["id"], claims.UserID)

	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

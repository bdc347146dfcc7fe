package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fleamart/internal/model"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) FindByIDAndUsername(ctx context.Context, id uint, username string) (*model.User, error) {
	args := m.Called(ctx, id, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newContextWithToken(claims jwtv5.MapClaims) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("user", &jwtv5.Token{Claims: claims})
	}
	return c
}

func TestCurrentUser_ResolvesUser(t *testing.T) {
	repo := new(mockUserRepo)
	user := &model.User{ID: 1, Username: "alice", Tier: model.UserTierFree}
	repo.On("FindByIDAndUsername", mock.Anything, uint(1), "alice").Return(user, nil)

	c := newContextWithToken(jwtv5.MapClaims{
		"user_id":  float64(1),
		"username": "alice",
	})

	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	err := CurrentUser(repo)(next)(c)
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, user, c.Get(ContextUserKey))
	repo.AssertExpectations(t)
}

func TestCurrentUser_RejectsStaleIdentity(t *testing.T) {
	// Token minted for a username the account no longer carries.
	repo := new(mockUserRepo)
	repo.On("FindByIDAndUsername", mock.Anything, uint(1), "old-name").Return(nil, gorm.ErrRecordNotFound)

	c := newContextWithToken(jwtv5.MapClaims{
		"user_id":  float64(1),
		"username": "old-name",
	})

	err := CurrentUser(repo)(func(c echo.Context) error { return nil })(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Nil(t, c.Get(ContextUserKey))
	repo.AssertExpectations(t)
}

func TestCurrentUser_RejectsMissingToken(t *testing.T) {
	c := newContextWithToken(nil)

	err := CurrentUser(new(mockUserRepo))(func(c echo.Context) error { return nil })(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestCurrentUser_RejectsMalformedClaims(t *testing.T) {
	c := newContextWithToken(jwtv5.MapClaims{
		"user_id": "not-a-number",
	})

	err := CurrentUser(new(mockUserRepo))(func(c echo.Context) error { return nil })(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

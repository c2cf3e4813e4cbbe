package service

import (
	"context"
	"testing"
	"time"

	"commerce_api/internal/model"
	"commerce_api/internal/repository"
	"commerce_api/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	users  map[int]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	cp.PasswordHash = ""
	return &cp, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		cp := *u
		cp.PasswordHash = ""
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id int, role string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	u.Role = role
	cp := *u
	cp.PasswordHash = ""
	return &cp, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	u, ok := f.users[user.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Name = user.Name
	u.Email = user.Email
	u.Role = user.Role
	u.PasswordHash = user.PasswordHash
	return nil
}

func (f *fakeUserRepo) UpdateLoginState(_ context.Context, id int, verified, isLoggedIn bool) error {
	u, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Verified = verified
	u.IsLoggedIn = isLoggedIn
	return nil
}

func (f *fakeUserRepo) SetLoggedIn(_ context.Context, id int, loggedIn bool) error {
	u, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.IsLoggedIn = loggedIn
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

func newAuthServiceForTest() (AuthService, *fakeUserRepo, *utils.JWTUtil) {
	repo := newFakeUserRepo()
	jwtUtil := utils.NewJWTUtil("test-secret", 2)
	return NewAuthService(repo, jwtUtil), repo, jwtUtil
}

func TestAuthService_Register(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest()

	user, err := svc.Register(context.Background(), "Ann", "ann@x.com", "Passw0rd!")

	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, model.RoleEmployee, user.Role)
	assert.False(t, user.Verified)
	assert.False(t, user.IsLoggedIn)
	assert.NotEqual(t, "Passw0rd!", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("Passw0rd!", user.PasswordHash))
	assert.Len(t, repo.users, 1)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "Passw0rd!")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Ann Again", "ann@x.com", "0therPass!")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Len(t, repo.users, 1)
}

func TestAuthService_Login(t *testing.T) {
	svc, repo, jwtUtil := newAuthServiceForTest()

	registered, err := svc.Register(context.Background(), "Ann", "ann@x.com", "Passw0rd!")
	require.NoError(t, err)
	require.False(t, registered.Verified)

	user, token, err := svc.Login(context.Background(), "ann@x.com", "Passw0rd!")

	require.NoError(t, err)
	assert.True(t, user.Verified, "first login verifies the account")
	assert.True(t, user.IsLoggedIn)
	assert.True(t, repo.users[user.ID].Verified)
	assert.True(t, repo.users[user.ID].IsLoggedIn)

	// The token must decode to claims matching the identity
	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.Equal(t, model.RoleEmployee, claims.Role)
	assert.True(t, claims.Verified)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest()

	registered, err := svc.Register(context.Background(), "Ann", "ann@x.com", "Passw0rd!")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "ann@x.com", "wrong-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Empty(t, token)
	// A failed login must not touch the session flags
	assert.False(t, repo.users[registered.ID].Verified)
	assert.False(t, repo.users[registered.ID].IsLoggedIn)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	user, token, err := svc.Login(context.Background(), "nobody@x.com", "Passw0rd!")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestAuthService_Logout(t *testing.T) {
	svc, repo, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), "Ann", "ann@x.com", "Passw0rd!")
	require.NoError(t, err)
	user, _, err := svc.Login(context.Background(), "ann@x.com", "Passw0rd!")
	require.NoError(t, err)
	require.True(t, repo.users[user.ID].IsLoggedIn)

	err = svc.Logout(context.Background(), user.ID)

	require.NoError(t, err)
	assert.False(t, repo.users[user.ID].IsLoggedIn)
	// Verified stays set after logout
	assert.True(t, repo.users[user.ID].Verified)
}

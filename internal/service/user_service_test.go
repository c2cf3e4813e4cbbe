package service

import (
	"context"
	"testing"

	"commerce_api/internal/model"
	"commerce_api/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(t *testing.T) (UserService, *fakeUserRepo, *model.User) {
	repo := newFakeUserRepo()
	authSvc := NewAuthService(repo, utils.NewJWTUtil("test-secret", 2))
	user, err := authSvc.Register(context.Background(), "Ann", "ann@x.com", "Passw0rd!")
	require.NoError(t, err)
	return NewUserService(repo), repo, user
}

func strptr(s string) *string { return &s }

func TestUserService_GetByID(t *testing.T) {
	svc, _, user := newUserServiceForTest(t)

	got, err := svc.GetByID(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", got.Email)
	assert.Empty(t, got.PasswordHash)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateRole(t *testing.T) {
	svc, repo, user := newUserServiceForTest(t)

	updated, err := svc.UpdateRole(context.Background(), user.ID, model.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
	assert.Equal(t, model.RoleAdmin, repo.users[user.ID].Role)
}

func TestUserService_Modify_WithoutPassword(t *testing.T) {
	svc, repo, user := newUserServiceForTest(t)
	storedHash := repo.users[user.ID].PasswordHash
	require.NotEmpty(t, storedHash)

	updated, err := svc.Modify(context.Background(), user.ID, model.ModifyUserRequest{
		Name: strptr("Ann Renamed"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ann Renamed", updated.Name)
	assert.Equal(t, "ann@x.com", updated.Email)
	// A modification without a password keeps the stored hash intact
	assert.Equal(t, storedHash, repo.users[user.ID].PasswordHash)
	assert.True(t, utils.CheckPasswordHash("Passw0rd!", repo.users[user.ID].PasswordHash))
	// The response never carries the hash
	assert.Empty(t, updated.PasswordHash)
}

func TestUserService_Modify_WithPassword(t *testing.T) {
	svc, repo, user := newUserServiceForTest(t)
	oldHash := repo.users[user.ID].PasswordHash

	updated, err := svc.Modify(context.Background(), user.ID, model.ModifyUserRequest{
		Password: strptr("N3w-Passw0rd"),
	})

	require.NoError(t, err)
	assert.Empty(t, updated.PasswordHash)
	// A supplied password is re-hashed; the old hash no longer verifies
	assert.NotEqual(t, oldHash, repo.users[user.ID].PasswordHash)
	assert.True(t, utils.CheckPasswordHash("N3w-Passw0rd", repo.users[user.ID].PasswordHash))
	assert.False(t, utils.CheckPasswordHash("Passw0rd!", repo.users[user.ID].PasswordHash))
}

func TestUserService_Modify_EmailChangeKeepsHash(t *testing.T) {
	svc, repo, user := newUserServiceForTest(t)
	storedHash := repo.users[user.ID].PasswordHash

	_, err := svc.Modify(context.Background(), user.ID, model.ModifyUserRequest{
		Email: strptr("ann.new@x.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "ann.new@x.com", repo.users[user.ID].Email)
	assert.Equal(t, storedHash, repo.users[user.ID].PasswordHash)
}

func TestUserService_Modify_NotFound(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)

	_, err := svc.Modify(context.Background(), 99, model.ModifyUserRequest{Name: strptr("Ghost")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	svc, repo, user := newUserServiceForTest(t)

	err := svc.Delete(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Empty(t, repo.users)

	err = svc.Delete(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

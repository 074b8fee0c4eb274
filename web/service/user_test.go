package service

import (
	"testing"

	"github.com/enkonix/web/database/model"

	"github.com/stretchr/testify/assert"
)

func countByEmail(users []model.User, email string) int {
	n := 0
	for _, u := range users {
		if u.Email == email {
			n++
		}
	}
	return n
}

func TestRegisterThenLogin(t *testing.T) {
	setupTestDB(t)

	userService := UserService{}

	user, err := userService.Register("Asha", "Verma", "a@x.com", "p1", false)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "p1", user.Password, "password must be stored hashed")
	assert.False(t, user.IsAdmin)
	assert.Equal(t, 1, countByEmail(userService.AllUsers(), "a@x.com"))

	logged, err := userService.CheckUser("a@x.com", "p1")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, logged.Id)

	err = userService.MarkLogin(logged, "127.0.0.1")
	assert.NoError(t, err)

	stored, err := userService.GetUser(logged.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusLogin, stored.Status)
	assert.Greater(t, stored.LoginTime, int64(0))
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)

	userService := UserService{}

	_, err := userService.Register("", "", "a@x.com", "p1", false)
	assert.NoError(t, err)

	user, err := userService.CheckUser("a@x.com", "wrong")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	stored, err := userService.GetUser(2)
	assert.NoError(t, err)
	assert.Empty(t, stored.Status, "failed login must not touch the record")
}

func TestLoginUnknownAccount(t *testing.T) {
	setupTestDB(t)

	userService := UserService{}

	user, err := userService.CheckUser("nobody@x.com", "p1")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	userService := UserService{}

	_, err := userService.Register("", "", "a@x.com", "p1", false)
	assert.NoError(t, err)

	_, err = userService.Register("", "", "a@x.com", "p2", false)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, countByEmail(userService.AllUsers(), "a@x.com"), "table must be unchanged")

	// Case only differs; comparison is case-insensitive.
	_, err = userService.Register("", "", "A@X.com", "p2", false)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterMissingFields(t *testing.T) {
	setupTestDB(t)

	userService := UserService{}

	_, err := userService.Register("", "", "", "p1", false)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = userService.Register("", "", "a@x.com", "", false)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestEmailNormalization(t *testing.T) {
	setupTestDB(t)

	userService := UserService{}

	user, err := userService.Register("", "", "  Mixed@Case.COM ", "p1", false)
	assert.NoError(t, err)
	assert.Equal(t, "mixed@case.com", user.Email)

	logged, err := userService.CheckUser("MIXED@case.com", "p1")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, logged.Id)
}

func TestMarkLogout(t *testing.T) {
	setupTestDB(t)

	userService := UserService{}

	user, err := userService.Register("", "", "a@x.com", "p1", false)
	assert.NoError(t, err)

	err = userService.MarkLogin(user, "")
	assert.NoError(t, err)
	err = userService.MarkLogout(user, "")
	assert.NoError(t, err)

	stored, err := userService.GetUser(user.Id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusLogout, stored.Status)
	assert.Greater(t, stored.LogoutTime, int64(0))
}

func TestResetPassword(t *testing.T) {
	setupTestDB(t)

	userService := UserService{}

	_, err := userService.Register("", "", "a@x.com", "old", false)
	assert.NoError(t, err)

	err = userService.ResetPassword("a@x.com", "new")
	assert.NoError(t, err)

	_, err = userService.CheckUser("a@x.com", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	logged, err := userService.CheckUser("a@x.com", "new")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", logged.Email)

	err = userService.ResetPassword("nobody@x.com", "new")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDefaultAdminSeeded(t *testing.T) {
	setupTestDB(t)

	userService := UserService{}

	admin, err := userService.CheckUser("admin@enkonix.com", "admin123")
	assert.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}

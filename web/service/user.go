package service

import (
	"errors"
	"strings"
	"time"

	"github.com/enkonix/web/database"
	"github.com/enkonix/web/database/model"
	"github.com/enkonix/web/logger"
	"github.com/enkonix/web/util/crypto"

	"gorm.io/gorm"
)

// Errors returned to the login and registration forms. Guards never see
// these; they only consult the session.
var (
	ErrMissingField       = errors.New("email and password are required")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserService owns every authentication decision made against the users
// table: registration, credential checks and the login/logout bookkeeping
// that feeds the audit trail.
type UserService struct {
	auditService AuditLogService
}

// NormalizeEmail lowercases and trims an email address. Email comparison is
// case-insensitive throughout.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. It does not create a session; the caller
// redirects to the login page afterwards.
func (s *UserService) Register(firstName, lastName, email, password string, isAdmin bool) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingField
	}

	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     email,
		Password:  hash,
		IsAdmin:   isAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}

	if err := s.auditService.Log(user.Id, user.Email, model.ActionRegister, ""); err != nil {
		logger.Warning("record register audit entry failed:", err)
	}
	return user, nil
}

// CheckUser verifies credentials. Both unknown-account and wrong-password
// return ErrInvalidCredentials so the form leaks nothing; the distinction is
// only logged.
func (s *UserService) CheckUser(email, password string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingField
	}

	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		logger.Debugf("login attempt for unknown account: %s", email)
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		logger.Debugf("wrong password for account: %s", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// MarkLogin records a successful login on the user row and appends an audit
// entry. The caller writes the session; a login while already logged in just
// overwrites the session slot (last login wins).
func (s *UserService) MarkLogin(user *model.User, ip string) error {
	db := database.GetDB()

	user.Status = model.StatusLogin
	user.LoginTime = time.Now().UnixMilli()
	err := db.Model(model.User{}).
		Where("id = ?", user.Id).
		Updates(map[string]any{"status": user.Status, "login_time": user.LoginTime}).
		Error
	if err != nil {
		return err
	}

	if err := s.auditService.Log(user.Id, user.Email, model.ActionLogin, ip); err != nil {
		logger.Warning("record login audit entry failed:", err)
	}
	return nil
}

// MarkLogout records a logout. Callers invoke it only when a session exists,
// so logging out without one is a no-op upstream.
func (s *UserService) MarkLogout(user *model.User, ip string) error {
	db := database.GetDB()

	user.Status = model.StatusLogout
	user.LogoutTime = time.Now().UnixMilli()
	err := db.Model(model.User{}).
		Where("id = ?", user.Id).
		Updates(map[string]any{"status": user.Status, "logout_time": user.LogoutTime}).
		Error
	if err != nil {
		return err
	}

	if err := s.auditService.Log(user.Id, user.Email, model.ActionLogout, ip); err != nil {
		logger.Warning("record logout audit entry failed:", err)
	}
	return nil
}

// ResetPassword sets a new password for an existing account (forgot-password
// flow). Unknown accounts report ErrInvalidCredentials.
func (s *UserService) ResetPassword(email, newPassword string) error {
	email = NormalizeEmail(email)
	if email == "" || newPassword == "" {
		return ErrMissingField
	}

	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).Where("email = ?", email).First(user).Error
	if err == gorm.ErrRecordNotFound {
		return ErrInvalidCredentials
	} else if err != nil {
		return err
	}

	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}
	return db.Model(model.User{}).
		Where("id = ?", user.Id).
		Update("password", hash).
		Error
}

// GetUser fetches one user by id, for refreshing session snapshots.
func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).Where("id = ?", id).First(user).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// AllUsers returns the registered-users table for the admin dashboard,
// ordered by id. A read failure degrades to an empty list.
func (s *UserService) AllUsers() []model.User {
	db := database.GetDB()

	var users []model.User
	err := db.Model(model.User{}).Order("id asc").Find(&users).Error
	if err != nil {
		logger.Warning("load users failed:", err)
		return nil
	}
	return users
}

// Package model defines the database entities for enkonix-web.
package model

import (
	"strings"
	"time"
)

// User status values recording the most recent session transition.
const (
	StatusLogin  = "login"
	StatusLogout = "logout"
)

// Audit trail actions.
const (
	ActionLogin    = "login"
	ActionLogout   = "logout"
	ActionRegister = "register"
)

// User is a registered visitor account. Email is the login key and is stored
// lowercased. Password holds the bcrypt hash, never the plain text.
type User struct {
	Id         int    `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName  string `json:"firstName" form:"firstName"`
	LastName   string `json:"lastName" form:"lastName"`
	Email      string `json:"email" form:"email" gorm:"uniqueIndex;not null"`
	Password   string `json:"-"`
	IsAdmin    bool   `json:"isAdmin"`
	Status     string `json:"status"`
	LoginTime  int64  `json:"loginTime"`  // unix millis, 0 = never
	LogoutTime int64  `json:"logoutTime"` // unix millis, 0 = never
}

// FullName joins the optional first and last names for display.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Initials derives the avatar initials, falling back to "U" when the user
// has no name on record.
func (u *User) Initials() string {
	initials := ""
	if u.FirstName != "" {
		initials += string([]rune(u.FirstName)[0])
	}
	if u.LastName != "" {
		initials += string([]rune(u.LastName)[0])
	}
	if initials == "" {
		return "U"
	}
	return strings.ToUpper(initials)
}

type Setting struct {
	Id    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}

// AuditEntry is one row of the login/logout audit trail.
type AuditEntry struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId    int       `json:"userId"`
	Email     string    `json:"email"`
	Action    string    `json:"action"` // login, logout, register
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
}

// ContactMessage is a persisted contact-form submission.
type ContactMessage struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Reference string    `json:"reference" gorm:"uniqueIndex"`
	Name      string    `json:"name" form:"name"`
	Email     string    `json:"email" form:"email"`
	Subject   string    `json:"subject" form:"subject"`
	Body      string    `json:"body" form:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

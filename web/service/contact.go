package service

import (
	"strings"
	"time"

	"github.com/enkonix/web/database"
	"github.com/enkonix/web/database/model"
	"github.com/enkonix/web/logger"

	"github.com/google/uuid"
)

// ContactService persists contact-form submissions. No mail is sent; the
// admin reads messages from the database.
type ContactService struct{}

// Submit stores a message and returns its reference for the acknowledgment
// shown to the visitor.
func (s *ContactService) Submit(name, email, subject, body string) (string, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || strings.TrimSpace(body) == "" {
		return "", ErrMissingField
	}

	db := database.GetDB()

	msg := model.ContactMessage{
		Reference: uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(subject),
		Body:      strings.TrimSpace(body),
		CreatedAt: time.Now(),
	}
	if err := db.Create(&msg).Error; err != nil {
		return "", err
	}

	logger.Infof("contact message %s received from %s", msg.Reference, msg.Email)
	return msg.Reference, nil
}

// AllMessages returns stored messages newest first for the admin dashboard.
func (s *ContactService) AllMessages() ([]model.ContactMessage, error) {
	db := database.GetDB()

	var messages []model.ContactMessage
	err := db.Model(&model.ContactMessage{}).
		Order("created_at DESC").
		Find(&messages).
		Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

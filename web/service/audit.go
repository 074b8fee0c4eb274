package service

import (
	"time"

	"github.com/enkonix/web/database"
	"github.com/enkonix/web/database/model"
	"github.com/enkonix/web/logger"
	"github.com/enkonix/web/util/common"
)

// AuditLogService appends and reads the login/logout audit trail.
type AuditLogService struct{}

// Log appends one audit entry. Failures are reported to the caller but never
// block the operation being audited.
func (s *AuditLogService) Log(userId int, email, action, ip string) error {
	db := database.GetDB()

	entry := model.AuditEntry{
		UserId:    userId,
		Email:     email,
		Action:    action,
		IP:        ip,
		Timestamp: time.Now(),
	}
	if err := db.Create(&entry).Error; err != nil {
		logger.Warningf("failed to create audit entry: user=%d, action=%s, error=%v", userId, action, err)
		return err
	}
	return nil
}

// GetEntries returns audit entries newest first, with the total count for
// pagination.
func (s *AuditLogService) GetEntries(limit, offset int) ([]model.AuditEntry, int64, error) {
	db := database.GetDB()

	var total int64
	if err := db.Model(&model.AuditEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.AuditEntry
	err := db.Model(&model.AuditEntry{}).
		Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).
		Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// CleanOldEntries removes audit entries older than the given number of days.
func (s *AuditLogService) CleanOldEntries(days int) error {
	if days <= 0 {
		return common.NewError("days must be greater than 0")
	}

	db := database.GetDB()
	cutoff := time.Now().AddDate(0, 0, -days)

	result := db.Where("timestamp < ?", cutoff).Delete(&model.AuditEntry{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		logger.Infof("Cleaned %d audit entries older than %d days", result.RowsAffected, days)
	}
	return nil
}

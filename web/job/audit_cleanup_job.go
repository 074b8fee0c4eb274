// Package job contains the scheduled maintenance jobs run by the web server.
package job

import (
	"github.com/enkonix/web/logger"
	"github.com/enkonix/web/web/service"
)

// AuditCleanupJob prunes the audit trail down to the configured retention.
type AuditCleanupJob struct {
	auditService   service.AuditLogService
	settingService service.SettingService
}

func NewAuditCleanupJob() *AuditCleanupJob {
	return &AuditCleanupJob{}
}

func (j *AuditCleanupJob) Run() {
	retentionDays, err := j.settingService.GetAuditRetentionDays()
	if err != nil || retentionDays <= 0 {
		retentionDays = 90
	}

	if err := j.auditService.CleanOldEntries(retentionDays); err != nil {
		logger.Warning("Failed to clean old audit entries:", err)
	}
}

package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/enkonix/web/logger"
	"github.com/enkonix/web/util/common"
	"github.com/enkonix/web/web/entity"
	"github.com/enkonix/web/web/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// auditRow is one display row of the dashboard users table.
type auditRow struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	LoginTime  string `json:"loginTime"`
	LogoutTime string `json:"logoutTime"`
}

// AdminController serves the admin dashboard. Its router group is wrapped by
// the admin guard.
type AdminController struct {
	BaseController

	userService    service.UserService
	auditService   service.AuditLogService
	contactService service.ContactService
	settingService service.SettingService
}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.dashboard)
	g.GET("/audit", a.audit)
	g.GET("/messages", a.messages)
	g.GET("/users/export", a.exportUsers)
	g.GET("/logs", a.logs)
	g.GET("/settings", a.getSetting)
	g.POST("/settings", a.updateSetting)
}

// dashboard renders the registered-users table: id, name, email, last login
// and logout times.
func (a *AdminController) dashboard(c *gin.Context) {
	users := a.userService.AllUsers()

	rows := make([]auditRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, auditRow{
			Id:         u.Id,
			Name:       u.FullName(),
			Email:      u.Email,
			Status:     u.Status,
			LoginTime:  common.FormatTimestamp(u.LoginTime),
			LogoutTime: common.FormatTimestamp(u.LogoutTime),
		})
	}

	html(c, "admin.html", I18nWeb(c, "pages.admin.title"), gin.H{
		"rows": rows,
	})
}

// audit returns the audit trail as JSON, newest first, paginated by the
// pageSize setting.
func (a *AdminController) audit(c *gin.Context) {
	pageSize, err := a.settingService.GetPageSize()
	if err != nil || pageSize <= 0 {
		pageSize = 50
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	entries, total, err := a.auditService.GetEntries(pageSize, (page-1)*pageSize)
	if err != nil {
		jsonMsg(c, I18nWeb(c, "pages.admin.auditLoadFailed"), err)
		return
	}
	jsonObj(c, gin.H{
		"entries": entries,
		"total":   total,
		"page":    page,
	}, nil)
}

// messages returns the stored contact-form submissions as JSON.
func (a *AdminController) messages(c *gin.Context) {
	msgs, err := a.contactService.AllMessages()
	if err != nil {
		jsonMsg(c, I18nWeb(c, "pages.admin.messagesLoadFailed"), err)
		return
	}
	jsonObj(c, msgs, nil)
}

// exportUsers downloads the registered-users table as a JSON document.
func (a *AdminController) exportUsers(c *gin.Context) {
	users := a.userService.AllUsers()

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		logger.Warning("export users failed:", err)
		jsonMsg(c, I18nWeb(c, "pages.admin.exportFailed"), err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "users.json"))
	c.Data(http.StatusOK, "application/json", data)
}

// getSetting returns the current web settings as JSON.
func (a *AdminController) getSetting(c *gin.Context) {
	allSetting, err := a.settingService.GetAllSetting()
	if err != nil {
		jsonMsg(c, I18nWeb(c, "pages.admin.settingsLoadFailed"), err)
		return
	}
	jsonObj(c, allSetting, nil)
}

// updateSetting validates and persists a settings update. Listen address,
// port and base path changes apply on the next restart.
func (a *AdminController) updateSetting(c *gin.Context) {
	allSetting := &entity.AllSetting{}
	if err := c.ShouldBind(allSetting); err != nil {
		jsonMsg(c, I18nWeb(c, "pages.admin.settingsUpdateFailed"), err)
		return
	}
	if err := a.settingService.UpdateAllSetting(allSetting); err != nil {
		jsonMsg(c, I18nWeb(c, "pages.admin.settingsUpdateFailed"), err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.admin.settingsUpdated"), nil)
}

// logs returns recent server log lines for the dashboard.
func (a *AdminController) logs(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "50"))
	if err != nil || count <= 0 {
		count = 50
	}
	level := c.DefaultQuery("level", "INFO")
	jsonObj(c, logger.GetLogs(count, level), nil)
}

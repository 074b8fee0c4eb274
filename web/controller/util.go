package controller

import (
	"net"
	"net/http"

	"github.com/enkonix/web/config"
	"github.com/enkonix/web/logger"
	"github.com/enkonix/web/web/entity"
	"github.com/enkonix/web/web/session"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// getRemoteIp extracts the real client IP from proxy headers or the remote
// address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		return value
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

func jsonMsg(c *gin.Context, msg string, err error) {
	jsonMsgObj(c, msg, nil, err)
}

func jsonObj(c *gin.Context, obj any, err error) {
	jsonMsgObj(c, "", obj, err)
}

func jsonMsgObj(c *gin.Context, msg string, obj any, err error) {
	m := entity.Msg{
		Obj: obj,
	}
	if err == nil {
		m.Success = true
		if msg != "" {
			m.Msg = msg
		}
	} else {
		m.Success = false
		m.Msg = msg + " (" + err.Error() + ")"
		logger.Warning(msg+" "+I18nWeb(c, "fail")+": ", err)
	}
	c.JSON(http.StatusOK, m)
}

func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// html renders a template with the shared context: title, base path, theme
// and the session user (for avatar initials); pages never re-derive auth
// decisions from it.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["base_path"] = c.GetString("base_path")
	data["theme"] = currentTheme(c)
	data["loc"] = requestLocalizer(c)
	if user := session.GetLoginUser(c); user != nil {
		data["user"] = user
	}
	c.HTML(http.StatusOK, name, getContext(data))
}

// requestLocalizer returns the localizer the locale middleware stored for
// this request, or nil before the middleware has run.
func requestLocalizer(c *gin.Context) *i18n.Localizer {
	if value, ok := c.Get("localizer"); ok {
		if localizer, ok := value.(*i18n.Localizer); ok {
			return localizer
		}
	}
	return nil
}

// currentTheme reads the theme cookie; every page renders from the same
// template with the theme as a parameter.
func currentTheme(c *gin.Context) string {
	if cookie, err := c.Request.Cookie("theme"); err == nil && cookie.Value == "dark" {
		return "dark"
	}
	return "light"
}

func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}

func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// Package controller provides the HTTP handlers for the enkonix-web site:
// the login gate, the content pages and the admin dashboard.
package controller

import (
	"github.com/enkonix/web/logger"
	"github.com/enkonix/web/web/locale"

	"github.com/gin-gonic/gin"
)

// BaseController provides functionality shared by all controllers.
type BaseController struct{}

// I18nWeb retrieves an internationalized message for the current locale.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	anyfunc, funcExists := c.Get("I18n")
	if !funcExists {
		logger.Warning("I18n function not exists in gin context!")
		return ""
	}
	i18nFunc, _ := anyfunc.(func(i18nType locale.I18nType, key string, keyParams ...string) string)
	msg := i18nFunc(locale.Web, name, params...)
	return msg
}

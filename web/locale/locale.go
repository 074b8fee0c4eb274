// Package locale provides translation-string lookup for templates and
// controllers, backed by embedded TOML message files.
package locale

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/enkonix/web/logger"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

var i18nBundle *i18n.Bundle

type I18nType string

const Web I18nType = "web"

func InitLocalizer(i18nFS embed.FS) error {
	i18nBundle = i18n.NewBundle(language.MustParse("en-US"))
	i18nBundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	return parseTranslationFiles(i18nFS, i18nBundle)
}

// NewLocalizer builds a localizer for one language preference string.
func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(i18nBundle, lang)
}

func createTemplateData(params []string, seperator ...string) map[string]any {
	sep := "=="
	if len(seperator) > 0 {
		sep = seperator[0]
	}

	templateData := make(map[string]any)
	for _, param := range params {
		parts := strings.SplitN(param, sep, 2)
		templateData[parts[0]] = parts[1]
	}

	return templateData
}

// Localize resolves a message with the given request localizer. A nil
// localizer falls back to the message key so templates still render.
func Localize(localizer *i18n.Localizer, key string, params ...string) string {
	if localizer == nil {
		return key
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: createTemplateData(params),
	})
	if err != nil {
		logger.Errorf("Failed to localize message: %v", err)
		return ""
	}

	return msg
}

// LocalizerMiddleware resolves the request language from the lang cookie or
// the Accept-Language header. The localizer is request-scoped, so concurrent
// requests cannot bleed each other's language.
func LocalizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if cookie, err := c.Request.Cookie("lang"); err == nil {
			lang = cookie.Value
		} else {
			lang = c.GetHeader("Accept-Language")
		}

		localizer := NewLocalizer(lang)

		c.Set("localizer", localizer)
		c.Set("I18n", func(i18nType I18nType, key string, params ...string) string {
			if i18nType != Web {
				logger.Errorf("Invalid type for I18n: %s", i18nType)
				return ""
			}
			return Localize(localizer, key, params...)
		})
		c.Next()
	}
}

func parseTranslationFiles(i18nFS embed.FS, i18nBundle *i18n.Bundle) error {
	return fs.WalkDir(i18nFS, "translation",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			data, err := i18nFS.ReadFile(path)
			if err != nil {
				return err
			}

			_, err = i18nBundle.ParseMessageFileBytes(data, path)
			return err
		})
}

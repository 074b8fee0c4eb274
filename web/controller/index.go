package controller

import (
	"errors"
	"net/http"

	"github.com/enkonix/web/logger"
	"github.com/enkonix/web/web/service"
	"github.com/enkonix/web/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm is the login request body.
type LoginForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterForm is the registration request body.
type RegisterForm struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
}

// ForgotPasswordForm is the password-reset request body.
type ForgotPasswordForm struct {
	Email       string `json:"email" form:"email"`
	NewPassword string `json:"newPassword" form:"newPassword"`
}

// IndexController handles the unguarded routes: login, registration,
// forgot-password and logout.
type IndexController struct {
	BaseController

	settingService service.SettingService
	userService    service.UserService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("login", a.loginPage)
	g.POST("login", a.login)
	g.GET("register", a.registerPage)
	g.POST("register", a.register)
	g.GET("forgot-password", a.forgotPasswordPage)
	g.POST("forgot-password", a.forgotPassword)
	g.GET("logout", a.logout)
}

// index redirects to the home page for authenticated users, otherwise to
// the login page.
func (a *IndexController) index(c *gin.Context) {
	base := c.GetString("base_path")
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, base+"home")
		return
	}
	c.Redirect(http.StatusFound, base+"login")
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, c.GetString("base_path")+"home")
		return
	}
	html(c, "login.html", I18nWeb(c, "pages.login.title"), nil)
}

// login authenticates the credentials, records the transition and writes the
// session. A login over an existing session simply replaces it.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		a.loginFailed(c, I18nWeb(c, "pages.login.invalidFormData"))
		return
	}
	if form.Email == "" || form.Password == "" {
		a.loginFailed(c, I18nWeb(c, "pages.login.emptyEmailOrPassword"))
		return
	}

	user, err := a.userService.CheckUser(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrMissingField) {
			logger.Warningf("wrong credentials for %q, IP: %q", form.Email, getRemoteIp(c))
			a.loginFailed(c, I18nWeb(c, "pages.login.wrongEmailOrPassword"))
		} else {
			a.loginFailed(c, I18nWeb(c, "pages.login.storageError"))
		}
		return
	}

	if err := a.userService.MarkLogin(user, getRemoteIp(c)); err != nil {
		logger.Warning("mark login failed:", err)
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("Unable to get session's max age from DB")
	}
	if sessionMaxAge > 0 {
		if err := session.SetMaxAge(c, sessionMaxAge*60); err != nil {
			logger.Warning("Unable to set session's max age:", err)
		}
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
		a.loginFailed(c, I18nWeb(c, "pages.login.storageError"))
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Email, getRemoteIp(c))

	base := c.GetString("base_path")
	target := base + "home"
	if user.IsAdmin {
		target = base + "admin-dashboard"
	}
	if isAjax(c) {
		jsonObj(c, gin.H{"redirect": target}, nil)
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (a *IndexController) loginFailed(c *gin.Context, msg string) {
	if isAjax(c) {
		pureJsonMsg(c, http.StatusOK, false, msg)
		return
	}
	html(c, "login.html", I18nWeb(c, "pages.login.title"), gin.H{"error": msg})
}

func (a *IndexController) registerPage(c *gin.Context) {
	html(c, "register.html", I18nWeb(c, "pages.register.title"), nil)
}

// register creates the account and sends the visitor to the login page; it
// never logs the new account in.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm

	if err := c.ShouldBind(&form); err != nil {
		a.registerFailed(c, I18nWeb(c, "pages.register.invalidFormData"))
		return
	}

	user, err := a.userService.Register(form.FirstName, form.LastName, form.Email, form.Password, false)
	switch {
	case errors.Is(err, service.ErrMissingField):
		a.registerFailed(c, I18nWeb(c, "pages.register.emptyEmailOrPassword"))
		return
	case errors.Is(err, service.ErrDuplicateEmail):
		a.registerFailed(c, I18nWeb(c, "pages.register.duplicateEmail"))
		return
	case err != nil:
		a.registerFailed(c, I18nWeb(c, "pages.register.storageError"))
		return
	}

	logger.Infof("new account registered: %s", user.Email)

	base := c.GetString("base_path")
	if isAjax(c) {
		jsonObj(c, gin.H{"redirect": base + "login"}, nil)
		return
	}
	c.Redirect(http.StatusSeeOther, base+"login")
}

func (a *IndexController) registerFailed(c *gin.Context, msg string) {
	if isAjax(c) {
		pureJsonMsg(c, http.StatusOK, false, msg)
		return
	}
	html(c, "register.html", I18nWeb(c, "pages.register.title"), gin.H{"error": msg})
}

func (a *IndexController) forgotPasswordPage(c *gin.Context) {
	html(c, "forgot_password.html", I18nWeb(c, "pages.forgotPassword.title"), nil)
}

func (a *IndexController) forgotPassword(c *gin.Context) {
	var form ForgotPasswordForm

	if err := c.ShouldBind(&form); err != nil {
		a.forgotFailed(c, I18nWeb(c, "pages.forgotPassword.invalidFormData"))
		return
	}

	err := a.userService.ResetPassword(form.Email, form.NewPassword)
	switch {
	case errors.Is(err, service.ErrMissingField):
		a.forgotFailed(c, I18nWeb(c, "pages.forgotPassword.emptyEmailOrPassword"))
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		a.forgotFailed(c, I18nWeb(c, "pages.forgotPassword.unknownAccount"))
		return
	case err != nil:
		a.forgotFailed(c, I18nWeb(c, "pages.forgotPassword.storageError"))
		return
	}

	base := c.GetString("base_path")
	if isAjax(c) {
		jsonObj(c, gin.H{"redirect": base + "login"}, nil)
		return
	}
	c.Redirect(http.StatusSeeOther, base+"login")
}

func (a *IndexController) forgotFailed(c *gin.Context, msg string) {
	if isAjax(c) {
		pureJsonMsg(c, http.StatusOK, false, msg)
		return
	}
	html(c, "forgot_password.html", I18nWeb(c, "pages.forgotPassword.title"), gin.H{"error": msg})
}

// logout records the transition for the session user, if any, and clears the
// session. Logging out without a session is a no-op.
func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		if err := a.userService.MarkLogout(user, getRemoteIp(c)); err != nil {
			logger.Warning("mark logout failed:", err)
		}
		logger.Infof("%s logged out successfully", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"login")
}

package controller

import (
	"errors"
	"net/http"

	"github.com/enkonix/web/web/service"

	"github.com/gin-gonic/gin"
)

// servicePages maps the service-detail slugs to their i18n key prefix.
var servicePages = map[string]string{
	"website-development": "pages.services.websiteDevelopment",
	"ecommerce-solutions": "pages.services.ecommerceSolutions",
	"branding-design":     "pages.services.brandingDesign",
	"content-copywriting": "pages.services.contentCopywriting",
	"digital-marketing":   "pages.services.digitalMarketing",
	"ongoing-support":     "pages.services.ongoingSupport",
}

var blogPostIds = map[string]bool{"1": true, "2": true, "3": true}

// ContactForm is the contact submission body.
type ContactForm struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Body    string `json:"body" form:"body"`
}

// PagesController renders the informational pages. Its router group is
// wrapped by the login guard; the handlers themselves never re-check auth.
type PagesController struct {
	BaseController

	contactService service.ContactService
}

func NewPagesController(g *gin.RouterGroup) *PagesController {
	a := &PagesController{}
	a.initRouter(g)
	return a
}

func (a *PagesController) initRouter(g *gin.RouterGroup) {
	g.GET("home", a.home)
	g.GET("home2", a.home2)
	g.GET("about", a.about)
	g.GET("services", a.services)
	g.GET("services/:slug", a.serviceDetail)
	g.GET("blog", a.blog)
	g.GET("blog/:id", a.blogPost)
	g.GET("contact", a.contactPage)
	g.POST("contact", a.contact)
}

func (a *PagesController) home(c *gin.Context) {
	html(c, "home.html", I18nWeb(c, "pages.home.title"), nil)
}

func (a *PagesController) home2(c *gin.Context) {
	html(c, "home2.html", I18nWeb(c, "pages.home2.title"), nil)
}

func (a *PagesController) about(c *gin.Context) {
	html(c, "about.html", I18nWeb(c, "pages.about.title"), nil)
}

func (a *PagesController) services(c *gin.Context) {
	html(c, "services.html", I18nWeb(c, "pages.services.title"), nil)
}

func (a *PagesController) serviceDetail(c *gin.Context) {
	slug := c.Param("slug")
	keyPrefix, ok := servicePages[slug]
	if !ok {
		NotFound(c)
		return
	}
	html(c, "service_detail.html", I18nWeb(c, keyPrefix+".title"), gin.H{
		"slug":      slug,
		"keyPrefix": keyPrefix,
	})
}

func (a *PagesController) blog(c *gin.Context) {
	html(c, "blog.html", I18nWeb(c, "pages.blog.title"), nil)
}

func (a *PagesController) blogPost(c *gin.Context) {
	id := c.Param("id")
	if !blogPostIds[id] {
		NotFound(c)
		return
	}
	keyPrefix := "pages.blog.post" + id
	html(c, "blog_post.html", I18nWeb(c, keyPrefix+".title"), gin.H{
		"postId":    id,
		"keyPrefix": keyPrefix,
	})
}

func (a *PagesController) contactPage(c *gin.Context) {
	html(c, "contact.html", I18nWeb(c, "pages.contact.title"), nil)
}

// contact persists the submission and renders the acknowledgment with the
// message reference.
func (a *PagesController) contact(c *gin.Context) {
	var form ContactForm

	if err := c.ShouldBind(&form); err != nil {
		a.contactFailed(c, I18nWeb(c, "pages.contact.invalidFormData"))
		return
	}

	reference, err := a.contactService.Submit(form.Name, form.Email, form.Subject, form.Body)
	switch {
	case errors.Is(err, service.ErrMissingField):
		a.contactFailed(c, I18nWeb(c, "pages.contact.missingFields"))
		return
	case err != nil:
		a.contactFailed(c, I18nWeb(c, "pages.contact.storageError"))
		return
	}

	if isAjax(c) {
		jsonObj(c, gin.H{"reference": reference}, nil)
		return
	}
	html(c, "contact.html", I18nWeb(c, "pages.contact.title"), gin.H{
		"reference": reference,
	})
}

func (a *PagesController) contactFailed(c *gin.Context, msg string) {
	if isAjax(c) {
		pureJsonMsg(c, http.StatusOK, false, msg)
		return
	}
	html(c, "contact.html", I18nWeb(c, "pages.contact.title"), gin.H{"error": msg})
}

// NotFound renders the not-found page with a 404 status for unmatched and
// unknown detail routes alike.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", getContext(gin.H{
		"title":     "404",
		"base_path": c.GetString("base_path"),
		"theme":     currentTheme(c),
		"loc":       requestLocalizer(c),
	}))
}

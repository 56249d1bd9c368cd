package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/M0hammad-yasin/portfolio/internal/contact"
	"github.com/M0hammad-yasin/portfolio/internal/content"
	"github.com/M0hammad-yasin/portfolio/internal/navigation"
	"github.com/M0hammad-yasin/portfolio/internal/session"
	"github.com/M0hammad-yasin/portfolio/internal/tracker"
)

const themeCookie = "theme"

// pageData is the model of the full page template.
type pageData struct {
	Site   *content.Portfolio
	Order  []tracker.SectionID
	Nav    []navigation.Item
	Home   tracker.SectionID
	Active tracker.SectionID
	Theme  session.Theme
	Form   contact.Form
	Ack    *contact.Acknowledgement
	Year   int
}

func themeFrom(c *gin.Context) session.Theme {
	v, _ := c.Cookie(themeCookie)
	return session.ParseTheme(v)
}

// page builds the model for a freshly mounted page: the first section is
// active and the contact form is empty.
func (s *Server) page(c *gin.Context) pageData {
	tr := s.newTracker()
	nav := navigation.New(tr.Order())
	return pageData{
		Site:   s.store.Current(),
		Order:  tr.Order(),
		Nav:    nav.Items(tr.Active()),
		Home:   nav.Home(),
		Active: tr.Active(),
		Theme:  themeFrom(c),
		Form:   contact.Empty(),
		Year:   time.Now().Year(),
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page(c))
}

// handleContactForm returns just the form HTML for HTMX.
func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", contact.Empty())
}

// handleContact acknowledges a contact submission. Nothing is stored or
// sent; only field sizes are logged.
func (s *Server) handleContact(c *gin.Context) {
	var sub contact.Submission
	err := c.Request.ParseForm()
	if err == nil {
		err = binding.MapFormWithTag(&sub, c.Request.PostForm, "form")
	}
	if err == nil {
		sub.Normalize()
		err = binding.Validator.ValidateStruct(&sub)
	}

	res := s.contact.Submit(sub, err)
	if res.Accepted() {
		log.Printf("Contact form acknowledged (name=%d email=%d subject=%d message=%d bytes)",
			len(sub.Name), len(sub.Email), len(sub.Subject), len(sub.Message))
	}

	if c.GetHeader("HX-Request") == "true" {
		c.HTML(http.StatusOK, "contact-result.html", gin.H{
			"Form": res.Form,
			"Ack":  res.Ack,
		})
		return
	}

	status := http.StatusOK
	if !res.Accepted() {
		status = http.StatusUnprocessableEntity
	}
	data := s.page(c)
	data.Form = res.Form
	data.Ack = res.Ack
	c.HTML(status, "index.html", data)
}

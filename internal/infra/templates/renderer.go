package templates

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/aymerick/raymond"

	"github.com/openlluna/website/internal/entity"
)

//go:embed email/*.hbs
var emailFS embed.FS

const (
	notificationHTML    = "notification.html.hbs"
	notificationText    = "notification.txt.hbs"
	acknowledgementHTML = "acknowledgement.html.hbs"
	acknowledgementText = "acknowledgement.txt.hbs"
)

// Site is the branding shared by every contact email.
type Site struct {
	Name       string
	URL        string
	LogoURL    string
	BrandColor string
}

// Renderer renders the contact emails from embedded Handlebars templates.
// Double-stash interpolations are HTML-escaped; the plain text templates use
// triple-stash and are never interpreted as markup.
type Renderer struct {
	site      Site
	templates map[string]*raymond.Template
	now       func() time.Time
}

func NewRenderer(site Site) (*Renderer, error) {
	r := &Renderer{
		site:      site,
		templates: make(map[string]*raymond.Template),
		now:       time.Now,
	}

	for _, name := range []string{notificationHTML, notificationText, acknowledgementHTML, acknowledgementText} {
		source, err := emailFS.ReadFile("email/" + name)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		tpl, err := raymond.Parse(string(source))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tpl
	}

	return r, nil
}

func (r *Renderer) Notification(inquiry *entity.Inquiry) (entity.EmailContent, error) {
	ctx := r.context(map[string]interface{}{
		"name":    inquiry.Name,
		"email":   inquiry.Email,
		"phone":   inquiry.Phone,
		"message": inquiry.Message,
	})

	content, err := r.render(notificationHTML, notificationText, ctx)
	if err != nil {
		return entity.EmailContent{}, err
	}
	content.Subject = "New inquiry from " + headerSafe(inquiry.Name)
	return content, nil
}

// Acknowledgement only ever receives the submitter's name.
func (r *Renderer) Acknowledgement(inquiry *entity.Inquiry) (entity.EmailContent, error) {
	ctx := r.context(map[string]interface{}{
		"name": inquiry.Name,
	})

	content, err := r.render(acknowledgementHTML, acknowledgementText, ctx)
	if err != nil {
		return entity.EmailContent{}, err
	}
	content.Subject = "We received your message — " + headerSafe(r.site.Name)
	return content, nil
}

func (r *Renderer) render(htmlName, textName string, ctx map[string]interface{}) (entity.EmailContent, error) {
	html, err := r.templates[htmlName].Exec(ctx)
	if err != nil {
		return entity.EmailContent{}, fmt.Errorf("render %s: %w", htmlName, err)
	}
	text, err := r.templates[textName].Exec(ctx)
	if err != nil {
		return entity.EmailContent{}, fmt.Errorf("render %s: %w", textName, err)
	}
	return entity.EmailContent{HTML: html, Text: text}, nil
}

func (r *Renderer) context(fields map[string]interface{}) map[string]interface{} {
	fields["site"] = map[string]interface{}{
		"name":        r.site.Name,
		"url":         r.site.URL,
		"servicesUrl": r.site.URL + "/services",
		"logoUrl":     r.site.LogoURL,
		"brandColor":  r.site.BrandColor,
	}
	fields["year"] = r.now().Year()
	return fields
}

// headerSafe keeps user input on a single header line.
func headerSafe(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

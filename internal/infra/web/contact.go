package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactData is what the contact page needs from configuration.
type ContactData struct {
	SiteName     string
	SiteURL      string
	ContactEmail string
	BrandColor   string
	Endpoint     string
}

// ContactPage renders the contact form. The required attributes on name,
// email and message block submission in the browser before any request.
func ContactPage(data ContactData) g.Node {
	if data.Endpoint == "" {
		data.Endpoint = "/api/contact"
	}

	return Layout(
		PageConfig{
			Title:       "Contact — " + data.SiteName,
			Description: "Tell us about your project and goals. We typically reply within 24–48 hours.",
			SiteName:    data.SiteName,
			SiteURL:     data.SiteURL,
			Path:        "/contact",
			BrandColor:  data.BrandColor,
		},
		Main(
			Section(
				Class("contact-hero"),
				P(Class("eyebrow"), g.Text("We’d love to hear from you")),
				H1(g.Text("Get in "), Span(Style("color:var(--brand)"), g.Text("Touch"))),
				P(g.Text("Tell us about your project and goals. We typically reply within 24–48 hours.")),
			),
			Section(
				Class("contact-form"),
				H2(g.Text("Tell us about your project")),
				P(g.Text("A quick brief is enough — we’ll follow up for details.")),
				contactForm(data),
			),
			Section(
				Class("contact-direct"),
				P(
					g.Text("Prefer email? Write to "),
					mailto(data.ContactEmail),
					g.Text("."),
				),
			),
			ResultModal(data.ContactEmail),
		),
		Script(Src("/static/js/contact.js"), g.Attr("defer")),
	)
}

func contactForm(data ContactData) g.Node {
	return FormEl(
		ID("contact-form"),
		Action(data.Endpoint),
		Method("post"),
		field(Input(Type("text"), Name("name"), ID("contact-name"), Required(), Placeholder("Full Name"), g.Attr("autocomplete", "name"))),
		field(Input(Type("email"), Name("email"), ID("contact-email"), Required(), Placeholder("Email"), g.Attr("autocomplete", "email"))),
		field(Input(Type("tel"), Name("phone"), ID("contact-phone"), Placeholder("Phone (optional)"), g.Attr("autocomplete", "tel"))),
		field(Textarea(Name("message"), ID("contact-message"), Required(), g.Attr("rows", "5"), Placeholder("Project description, timelines, goals…"))),
		Div(
			Class("contact-actions"),
			P(
				Class("legal"),
				g.Text("By submitting, you agree to our "),
				A(Href("/privacy"), g.Text("Privacy Policy")),
				g.Text("."),
			),
			Button(Type("submit"), ID("contact-submit"), Style("background-color:var(--brand)"), g.Text("Send Message")),
		),
	)
}

func field(control g.Node) g.Node {
	return Div(Class("field"), control)
}

func mailto(address string) g.Node {
	return A(Href("mailto:"+address), Style("color:var(--brand)"), g.Text(address))
}

package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ResultModal is the shell contact.js fills in after a submit. The fallback
// address is shown for both outcomes.
func ResultModal(contactEmail string) g.Node {
	return Div(
		ID("contact-modal"),
		Class("modal"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-labelledby", "contact-modal-title"),
		g.Attr("hidden"),
		Div(
			Class("modal-panel"),
			Div(ID("contact-modal-bar"), Class("modal-bar")),
			H3(ID("contact-modal-title")),
			P(ID("contact-modal-body")),
			P(
				ID("contact-modal-success-tip"),
				Class("modal-tip"),
				g.Text("Tip: Feel free to also email us at "),
				mailto(contactEmail),
				g.Text(" if it’s time-sensitive."),
			),
			P(
				ID("contact-modal-error-tip"),
				Class("modal-tip"),
				g.Text("If this keeps happening, email us at "),
				mailto(contactEmail),
				g.Text(" and we’ll jump on it."),
			),
			Button(Type("button"), ID("contact-modal-close"), g.Attr("aria-label", "Close modal"), g.Text("Close")),
		),
	)
}

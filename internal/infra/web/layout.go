package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	SiteName    string
	SiteURL     string
	Path        string
	BrandColor  string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = config.SiteName
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Link(Rel("canonical"), Href(config.SiteURL+config.Path)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:url"), Content(config.SiteURL+config.Path)),
				Meta(g.Attr("property", "og:site_name"), Content(config.SiteName)),

				StyleEl(g.Raw(":root{--brand:"+config.BrandColor+"}")),
			),
			Body(
				g.Group(content),
			),
		),
	})
}

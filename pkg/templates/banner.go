package templates

import "html/template"

type bannerVars struct {
	Theme    Theme
	Tag      string
	Headline string
	Text     template.HTML
	Time     string
}

var bannerTemplate = template.Must(template.New("banner").Parse(`<div class="template-banner" data-theme="{{.Theme}}">
  {{- if .Tag}}
  <div class="tag">{{.Tag}}</div>
  {{- end}}
  {{- if .Headline}}
  <div class="headline">{{.Headline}}</div>
  {{- end}}
  <div class="text">{{.Text}}</div>
  {{- if .Time}}
  <div class="time">{{.Time}}</div>
  {{- end}}
</div>
`))

func renderBanner(rec BannerRecord) (string, error) {
	return execute(bannerTemplate, bannerVars{
		Theme:    rec.Theme.normalize(),
		Tag:      rec.Tag,
		Headline: rec.Headline,
		Text:     richText(rec.Text),
		Time:     rec.Time,
	})
}

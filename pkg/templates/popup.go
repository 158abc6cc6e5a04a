package templates

import (
	"html/template"
	"strings"
)

// ButtonSeparator separates popup button labels.
const ButtonSeparator = "|"

type popupButton struct {
	Label   string
	Primary bool
}

type popupVars struct {
	Theme   Theme
	Title   string
	Tag     string
	Text    template.HTML
	Buttons []popupButton
}

var popupTemplate = template.Must(template.New("popup").Parse(`<div class="template-popup" data-theme="{{.Theme}}">
  {{- if .Title}}
  <div class="title">{{.Title}}</div>
  {{- end}}
  {{- if .Tag}}
  <div class="tag">{{.Tag}}</div>
  {{- end}}
  <div class="body">{{.Text}}</div>
  <div class="buttons">
    {{- range .Buttons}}
    <button class="btn {{if .Primary}}primary{{else}}secondary{{end}}">{{.Label}}</button>
    {{- end}}
  </div>
</div>
`))

// ParseButtons splits a "|" separated label list. Blank entries are
// dropped; an empty list yields a single "OK".
func ParseButtons(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ButtonSeparator) {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return []string{"OK"}
	}
	return labels
}

func renderPopup(rec PopupRecord) (string, error) {
	vars := popupVars{
		Theme: rec.Theme.normalize(),
		Title: rec.Title,
		Tag:   rec.Tag,
		Text:  richText(rec.Text),
	}
	for i, label := range ParseButtons(rec.Buttons) {
		vars.Buttons = append(vars.Buttons, popupButton{Label: label, Primary: i == 0})
	}
	return execute(popupTemplate, vars)
}

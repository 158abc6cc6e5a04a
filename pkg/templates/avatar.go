package templates

import "html/template"

// avatarVars feeds the shared "avatar" partial.
// URL is trusted as-is so data: and file: avatars reach the engine.
type avatarVars struct {
	URL     template.URL
	Alt     string
	Initial string
}

// avatarPartial emits the primary image (when a URL is set) and the
// fallback badge. The stylesheet hides a badge that follows an image; a
// failed load swaps them through the onerror handler.
const avatarPartial = `{{define "avatar"}}
    {{- if .URL}}
    <img src="{{.URL}}" alt="{{.Alt}}" class="avatar avatar-img" onerror="this.style.display='none'; this.nextElementSibling.style.display='flex';">
    {{- end}}
    <div class="avatar avatar-fallback">{{.Initial}}</div>
{{- end}}`

// parseWithAvatar parses a variant template together with the avatar partial.
func parseWithAvatar(name, text string) *template.Template {
	return template.Must(template.Must(template.New(name).Parse(avatarPartial)).Parse(text))
}

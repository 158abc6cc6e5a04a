package templates

import "html/template"

// postStat is one entry of the engagement row.
type postStat struct {
	Name  string
	Icon  string
	Value string
}

type postVars struct {
	Theme       Theme
	Avatar      avatarVars
	DisplayName string
	Handle      string
	Tag         string
	Text        template.HTML
	Time        string
	Stats       []postStat
}

var postTemplate = parseWithAvatar("post", `<div class="template-xpost" data-theme="{{.Theme}}">
  <div class="header">
    {{- template "avatar" .Avatar}}
    <div class="user-info">
      <div class="name">{{.DisplayName}}</div>
      <div class="handle">@{{.Handle}}</div>
    </div>
    <div class="verified-badge">✓</div>
  </div>
  {{- if .Tag}}
  <div class="tag">{{.Tag}}</div>
  {{- end}}
  <div class="content">{{.Text}}</div>
  <div class="footer">
    {{- if .Time}}
    <div class="time">{{.Time}}</div>
    {{- end}}
    {{- if .Stats}}
    <div class="stats">
      {{- range .Stats}}
      <div class="stat stat-{{.Name}}"><span class="stat-icon">{{.Icon}}</span> {{.Value}}</div>
      {{- end}}
    </div>
    {{- end}}
  </div>
</div>
`)

func renderPost(rec PostRecord) (string, error) {
	vars := postVars{
		Theme: rec.Theme.normalize(),
		Avatar: avatarVars{
			URL:     template.URL(rec.AvatarURL),
			Alt:     orDefault(rec.DisplayName, "User"),
			Initial: initial(rec.DisplayName, "U"),
		},
		DisplayName: rec.DisplayName,
		Handle:      rec.Handle,
		Tag:         rec.Tag,
		Text:        richText(rec.Text),
		Time:        rec.Time,
	}

	// Absent counts are skipped; "0" is a value like any other.
	for _, s := range []postStat{
		{Name: "likes", Icon: "❤️", Value: rec.Likes},
		{Name: "reposts", Icon: "🔄", Value: rec.Reposts},
		{Name: "replies", Icon: "💬", Value: rec.Replies},
	} {
		if s.Value != "" {
			vars.Stats = append(vars.Stats, s)
		}
	}

	return execute(postTemplate, vars)
}

package templates

import "html/template"

type chatVars struct {
	Theme  Theme
	Avatar avatarVars
	Sender string
	Tag    string
	Text   template.HTML
	Time   string
}

var chatTemplate = parseWithAvatar("chat", `<div class="template-chat" data-theme="{{.Theme}}">
  <div class="header">
    {{- template "avatar" .Avatar}}
    <div class="sender">{{.Sender}}</div>
  </div>
  {{- if .Tag}}
  <div class="tag">{{.Tag}}</div>
  {{- end}}
  <div class="message">{{.Text}}</div>
  {{- if .Time}}
  <div class="time">{{.Time}}</div>
  {{- end}}
</div>
`)

func renderChat(rec ChatRecord) (string, error) {
	sender := orDefault(rec.SenderName, "User")
	return execute(chatTemplate, chatVars{
		Theme: rec.Theme.normalize(),
		Avatar: avatarVars{
			URL:     template.URL(rec.AvatarURL),
			Alt:     sender,
			Initial: initial(rec.SenderName, "U"),
		},
		Sender: sender,
		Tag:    rec.Tag,
		Text:   richText(rec.Text),
		Time:   rec.Time,
	})
}

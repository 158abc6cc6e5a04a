package templates

import "html/template"

type messengerMessageVars struct {
	Text       template.HTML
	FromSelf   bool
	Time       string
	SenderName string
}

type messengerVars struct {
	ContactName string
	Avatar      avatarVars
	IsOnline    bool
	IsTyping    bool
	Messages    []messengerMessageVars
}

var messengerTemplate = template.Must(template.New("messenger").Parse(`<div class="template-messenger" data-theme="light" style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #FFFFFF; min-height: 100%;">
  <div class="ms-header" style="background: #1877F2; color: white; padding: 12px 16px; display: flex; align-items: center; gap: 12px; position: relative;">
    {{- if .Avatar.URL}}
    <img class="contact-avatar" src="{{.Avatar.URL}}" alt="{{.Avatar.Alt}}" style="width: 36px; height: 36px; border-radius: 50%; object-fit: cover;">
    {{- else}}
    <div class="contact-avatar avatar-fallback" style="width: 36px; height: 36px; border-radius: 50%; background: #1877F2; display: flex; align-items: center; justify-content: center; color: white; font-weight: bold; font-size: 16px;">{{.Avatar.Initial}}</div>
    {{- end}}
    <div style="flex: 1;">
      <div class="contact-name" style="font-weight: 600; font-size: 16px;">{{.ContactName}}</div>
      <div class="presence" style="font-size: 13px; opacity: 0.9;">{{if .IsOnline}}Active now{{else}}Active 2h ago{{end}}</div>
    </div>
    {{- if .IsOnline}}
    <div class="online-dot" style="width: 12px; height: 12px; background: #31A24C; border: 2px solid white; border-radius: 50%; position: absolute; bottom: 0; right: 0;"></div>
    {{- end}}
    <div style="display: flex; gap: 16px; color: white;">
      <span style="font-size: 20px;">📞</span>
      <span style="font-size: 20px;">📹</span>
      <span style="font-size: 20px;">ℹ️</span>
    </div>
  </div>
  <div class="ms-messages" style="padding: 16px; background: #FFFFFF; min-height: 300px;">
    {{- range .Messages}}
    {{- if .FromSelf}}
    <div class="ms-message from-self" style="display: flex; margin: 8px 0; justify-content: flex-end;">
      <div style="max-width: 70%; background: #0084FF; color: white; margin-left: auto; margin-right: 8px; padding: 8px 12px; border-radius: 18px; box-shadow: 0 1px 2px rgba(0,0,0,0.1);">
    {{- else}}
    <div class="ms-message from-other" style="display: flex; margin: 8px 0; justify-content: flex-start;">
      <div style="max-width: 70%; background: #E4E6EB; color: #050505; margin-right: auto; margin-left: 8px; padding: 8px 12px; border-radius: 18px; box-shadow: 0 1px 2px rgba(0,0,0,0.1);">
      {{- if .SenderName}}
        <div class="sender-name" style="font-size: 12px; font-weight: 600; color: #65676B; margin-bottom: 2px;">{{.SenderName}}</div>
      {{- end}}
    {{- end}}
        <div class="ms-text" style="font-size: 14px; line-height: 1.4; margin-bottom: 4px;">{{.Text}}</div>
        <div class="ms-time" style="font-size: 11px; opacity: 0.7; text-align: {{if .FromSelf}}right{{else}}left{{end}};">{{.Time}}</div>
      </div>
    </div>
    {{- end}}
    {{- if .IsTyping}}
    <div class="typing-indicator" style="display: flex; margin: 8px 0; justify-content: flex-start;">
      <div style="background: #E4E6EB; padding: 8px 12px; border-radius: 18px; display: flex; align-items: center; gap: 4px;">
        <div style="width: 8px; height: 8px; background: #65676B; border-radius: 50%; animation: typing 1.4s infinite ease-in-out;"></div>
        <div style="width: 8px; height: 8px; background: #65676B; border-radius: 50%; animation: typing 1.4s infinite ease-in-out 0.2s;"></div>
        <div style="width: 8px; height: 8px; background: #65676B; border-radius: 50%; animation: typing 1.4s infinite ease-in-out 0.4s;"></div>
      </div>
    </div>
    {{- end}}
  </div>
  <div class="ms-input" style="background: #F0F2F5; padding: 12px 16px; display: flex; align-items: center; gap: 12px;">
    <span style="font-size: 20px; color: #65676B;">😊</span>
    <div style="flex: 1; background: white; border-radius: 20px; padding: 8px 16px; display: flex; align-items: center; gap: 8px; border: 1px solid #E4E6EB;">
      <span style="font-size: 18px; color: #65676B;">📎</span>
      <input type="text" placeholder="Aa" style="border: none; outline: none; flex: 1; font-size: 14px;" readonly>
      <span style="font-size: 18px; color: #65676B;">🎤</span>
    </div>
    <span style="font-size: 20px; color: #1877F2;">📤</span>
  </div>
  <style>
    @keyframes typing {
      0%, 60%, 100% { transform: translateY(0); }
      30% { transform: translateY(-10px); }
    }
  </style>
</div>
`))

func renderMessenger(rec MessengerRecord) (string, error) {
	vars := messengerVars{
		ContactName: rec.ContactName,
		Avatar: avatarVars{
			URL:     template.URL(rec.AvatarURL),
			Alt:     rec.ContactName,
			Initial: initial(rec.ContactName, "U"),
		},
		IsOnline: rec.IsOnline,
		IsTyping: rec.IsTyping,
	}

	vars.Messages = make([]messengerMessageVars, 0, len(rec.Messages))
	for _, m := range rec.Messages {
		vars.Messages = append(vars.Messages, messengerMessageVars{
			Text:       richText(m.Text),
			FromSelf:   m.FromSelf,
			Time:       m.Time,
			SenderName: m.SenderName,
		})
	}

	return execute(messengerTemplate, vars)
}

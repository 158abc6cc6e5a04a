package templates

import "html/template"

type whatsAppMessageVars struct {
	Text     template.HTML
	FromSelf bool
	Time     string
	Status   DeliveryStatus
}

type whatsAppVars struct {
	ContactName string
	Avatar      avatarVars
	Presence    string
	IsOnline    bool
	Messages    []whatsAppMessageVars
}

var whatsAppTemplate = template.Must(template.New("whatsapp").Parse(`<div class="template-whatsapp" data-theme="light" style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #E5DDD5; min-height: 100%;">
  <div class="wa-header" style="background: #075E54; color: white; padding: 10px 16px; display: flex; align-items: center; gap: 12px; position: relative;">
    {{- if .Avatar.URL}}
    <img class="contact-avatar" src="{{.Avatar.URL}}" alt="{{.Avatar.Alt}}" style="width: 40px; height: 40px; border-radius: 50%; object-fit: cover;">
    {{- else}}
    <div class="contact-avatar avatar-fallback" style="width: 40px; height: 40px; border-radius: 50%; background: #25D366; display: flex; align-items: center; justify-content: center; color: white; font-weight: bold; font-size: 18px;">{{.Avatar.Initial}}</div>
    {{- end}}
    <div style="flex: 1;">
      <div class="contact-name" style="font-weight: 600; font-size: 16px;">{{.ContactName}}</div>
      <div class="presence" style="font-size: 13px; opacity: 0.8;">{{.Presence}}</div>
    </div>
    {{- if .IsOnline}}
    <div class="online-dot" style="width: 12px; height: 12px; background: #25D366; border: 2px solid white; border-radius: 50%; position: absolute; bottom: 0; right: 0;"></div>
    {{- end}}
    <div style="display: flex; gap: 16px; color: white;">
      <span style="font-size: 20px;">📞</span>
      <span style="font-size: 20px;">📹</span>
      <span style="font-size: 20px;">⋮</span>
    </div>
  </div>
  <div class="wa-messages" style="padding: 16px; background: #E5DDD5; min-height: 300px;">
    {{- range .Messages}}
    {{- if .FromSelf}}
    <div class="wa-message from-self" style="display: flex; margin: 8px 0; justify-content: flex-end;">
      <div style="max-width: 70%; background: #DCF8C6; margin-left: auto; margin-right: 10px; padding: 8px 12px; border-radius: 18px; box-shadow: 0 1px 2px rgba(0,0,0,0.1);">
    {{- else}}
    <div class="wa-message from-other" style="display: flex; margin: 8px 0; justify-content: flex-start;">
      <div style="max-width: 70%; background: white; margin-right: auto; margin-left: 10px; padding: 8px 12px; border-radius: 18px; box-shadow: 0 1px 2px rgba(0,0,0,0.1);">
    {{- end}}
        <div class="wa-text" style="color: #333; font-size: 14px; line-height: 1.4; margin-bottom: 4px;">{{.Text}}</div>
        <div style="display: flex; align-items: center; justify-content: flex-end; gap: 4px; font-size: 11px; color: #667781;">
          <span class="wa-time">{{.Time}}</span>
          {{- if .FromSelf}}
          {{- if eq .Status "sent"}}
          <span class="status status-sent" style="margin-left: 4px; color: #667781;">✓</span>
          {{- else if eq .Status "delivered"}}
          <span class="status status-delivered" style="margin-left: 4px; color: #667781;">✓✓</span>
          {{- else if eq .Status "read"}}
          <span class="status status-read" style="margin-left: 4px; color: #667781;">✓✓ <span class="status-read-tick" style="color: #34B7F1;">✓</span></span>
          {{- end}}
          {{- end}}
        </div>
      </div>
    </div>
    {{- end}}
  </div>
  <div class="wa-input" style="background: #F0F0F0; padding: 12px 16px; display: flex; align-items: center; gap: 12px;">
    <span style="font-size: 20px; color: #919191;">😊</span>
    <div style="flex: 1; background: white; border-radius: 20px; padding: 8px 16px; display: flex; align-items: center; gap: 8px;">
      <span style="font-size: 18px; color: #919191;">📎</span>
      <input type="text" placeholder="Type a message" style="border: none; outline: none; flex: 1; font-size: 14px;" readonly>
      <span style="font-size: 18px; color: #919191;">🎤</span>
    </div>
    <span style="font-size: 20px; color: #25D366;">📤</span>
  </div>
</div>
`))

func renderWhatsApp(rec WhatsAppRecord) (string, error) {
	vars := whatsAppVars{
		ContactName: rec.ContactName,
		Avatar: avatarVars{
			URL:     template.URL(rec.AvatarURL),
			Alt:     rec.ContactName,
			Initial: initial(rec.ContactName, "U"),
		},
		IsOnline: rec.IsOnline,
	}

	// Online wins over the last-seen text.
	switch {
	case rec.IsOnline:
		vars.Presence = "online"
	case rec.LastSeen != "":
		vars.Presence = "last seen " + rec.LastSeen
	}

	vars.Messages = make([]whatsAppMessageVars, 0, len(rec.Messages))
	for _, m := range rec.Messages {
		vars.Messages = append(vars.Messages, whatsAppMessageVars{
			Text:     richText(m.Text),
			FromSelf: m.FromSelf,
			Time:     m.Time,
			Status:   m.Status,
		})
	}

	return execute(whatsAppTemplate, vars)
}

package state

import (
	"strings"

	"github.com/user/tagshot/pkg/templates"
)

// Record builds the variant record for the selected template.
//
// Message lists are "|" separated; even positions are sent by the local
// user. Every message carries the shared Time.
func (s AppState) Record() (templates.Record, error) {
	kind, err := s.Kind()
	if err != nil {
		return nil, err
	}
	theme := templates.Theme(s.Theme)

	switch kind {
	case templates.KindPost:
		return templates.PostRecord{
			Text:        s.Text,
			DisplayName: s.Name,
			Handle:      s.Handle,
			Theme:       theme,
			Tag:         s.Tag,
			AvatarURL:   s.Avatar,
			Likes:       s.Likes,
			Reposts:     s.Reposts,
			Replies:     s.Replies,
			Time:        s.Time,
		}, nil

	case templates.KindBanner:
		return templates.BannerRecord{
			Text:     s.Text,
			Theme:    theme,
			Tag:      s.Tag,
			Headline: s.Headline,
			Time:     s.Time,
		}, nil

	case templates.KindChat:
		return templates.ChatRecord{
			Text:       s.Text,
			Theme:      theme,
			Tag:        s.Tag,
			SenderName: s.ChatName,
			AvatarURL:  s.ChatAvatar,
			Time:       s.Time,
		}, nil

	case templates.KindPopup:
		return templates.PopupRecord{
			Text:    s.Text,
			Theme:   theme,
			Tag:     s.Tag,
			Title:   s.PopupTitle,
			Buttons: s.Buttons,
		}, nil

	case templates.KindWhatsApp:
		rec := templates.WhatsAppRecord{
			ContactName: s.WhatsAppContact,
			AvatarURL:   s.Avatar,
			LastSeen:    s.WhatsAppLastSeen,
			IsOnline:    s.WhatsAppIsOnline,
		}
		for i, text := range splitMessages(s.WhatsAppMessages) {
			msg := templates.WhatsAppMessage{Text: text, FromSelf: i%2 == 0, Time: s.Time}
			if msg.FromSelf {
				msg.Status = templates.StatusRead
			}
			rec.Messages = append(rec.Messages, msg)
		}
		return rec, nil

	case templates.KindMessenger:
		rec := templates.MessengerRecord{
			ContactName: s.MessengerContact,
			AvatarURL:   s.Avatar,
			IsTyping:    s.MessengerIsTyping,
			IsOnline:    s.MessengerIsOnline,
		}
		for i, text := range splitMessages(s.MessengerMessages) {
			msg := templates.MessengerMessage{Text: text, FromSelf: i%2 == 0, Time: s.Time}
			if !msg.FromSelf {
				msg.SenderName = s.MessengerContact
			}
			rec.Messages = append(rec.Messages, msg)
		}
		return rec, nil

	default:
		rec := templates.AssistantRecord{
			Model:       s.AssistantModel,
			IsStreaming: s.AssistantIsStreaming,
		}
		for i, text := range splitMessages(s.AssistantMessages) {
			msg := templates.AssistantMessage{Text: text, FromUser: i%2 == 0, Timestamp: s.Time}
			if strings.Contains(text, "code") {
				msg.CodeLanguage = "javascript"
			}
			rec.Messages = append(rec.Messages, msg)
		}
		return rec, nil
	}
}

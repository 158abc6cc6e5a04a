// Package state holds the host application state that drives a render:
// the selected template, every user field, the theme and the export size.
package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/user/tagshot/pkg/templates"
)

// Defaults shared by the query codec and the builder.
const (
	DefaultWidth      = 1080
	DefaultHeight     = 1350
	DefaultBackground = "#ffffff"
	DefaultTemplate   = "xpost"
)

// ErrInvalidState is returned by Validate.
var ErrInvalidState = errors.New("state: invalid")

// AppState is everything the user can edit.
type AppState struct {
	Tag      string `yaml:"tag"`
	Template string `yaml:"template"`
	Text     string `yaml:"text"`
	Theme    string `yaml:"theme"`
	Bg       string `yaml:"bg"`

	// Post
	Name    string `yaml:"name"`
	Handle  string `yaml:"handle"`
	Avatar  string `yaml:"avatar"`
	Likes   string `yaml:"likes"`
	Reposts string `yaml:"reposts"`
	Replies string `yaml:"replies"`
	Time    string `yaml:"time"`

	// Banner
	Headline string `yaml:"headline"`

	// Chat
	ChatName   string `yaml:"chat_name"`
	ChatAvatar string `yaml:"chat_avatar"`

	// Popup
	PopupTitle string `yaml:"popup_title"`
	Buttons    string `yaml:"buttons"`

	// WhatsApp
	WhatsAppContact  string `yaml:"whatsapp_contact"`
	WhatsAppMessages string `yaml:"whatsapp_messages"`
	WhatsAppLastSeen string `yaml:"whatsapp_last_seen"`
	WhatsAppIsOnline bool   `yaml:"whatsapp_is_online"`

	// Messenger
	MessengerContact  string `yaml:"messenger_contact"`
	MessengerMessages string `yaml:"messenger_messages"`
	MessengerIsTyping bool   `yaml:"messenger_is_typing"`
	MessengerIsOnline bool   `yaml:"messenger_is_online"`

	// Assistant
	AssistantMessages    string `yaml:"assistant_messages"`
	AssistantModel       string `yaml:"assistant_model"`
	AssistantIsStreaming bool   `yaml:"assistant_is_streaming"`

	// OG is a source page URL kept for the share link; nothing fetches it.
	OG string `yaml:"og"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Defaults returns the state a fresh session starts with.
func Defaults() AppState {
	return AppState{
		Tag:      "#BREAKING",
		Template: DefaultTemplate,
		Text:     "We turned tags into screenshots. Open source!",
		Theme:    string(templates.ThemeLight),
		Bg:       DefaultBackground,

		Name:    "Elon Musk",
		Handle:  "elonmusk",
		Likes:   "124k",
		Reposts: "31k",
		Replies: "9,102",
		Time:    "2:34 PM · Aug 13, 2025",

		Headline: "Massive latency drop across the fleet",

		ChatName:   "John Doe",
		PopupTitle: "System Alert",
		Buttons:    "OK|Cancel",

		WhatsAppContact:  "John Doe",
		WhatsAppMessages: "Hey there!|How are you?|I'm doing great, thanks!",
		WhatsAppLastSeen: "2 minutes ago",
		WhatsAppIsOnline: true,

		MessengerContact:  "Jane Smith",
		MessengerMessages: "Hi!|Hello there!|How's it going?",
		MessengerIsOnline: true,

		AssistantMessages: "Hello, how can I help you today?|I can assist with coding, writing, and more!",
		AssistantModel:    templates.DefaultAssistantModel,

		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Kind resolves Template to a variant kind.
func (s AppState) Kind() (templates.Kind, error) {
	return templates.ParseKind(s.Template)
}

// Validate reports a state that cannot be rendered or exported.
func (s AppState) Validate() error {
	if _, err := s.Kind(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidState, s.Width, s.Height)
	}
	switch templates.Theme(s.Theme) {
	case "", templates.ThemeLight, templates.ThemeDark:
	default:
		return fmt.Errorf("%w: theme %q", ErrInvalidState, s.Theme)
	}
	return nil
}

// splitMessages splits a "|" separated message list, trimming entries and
// dropping empty ones.
func splitMessages(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

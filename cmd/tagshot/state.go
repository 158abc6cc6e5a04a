package main

import (
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/tagshot/pkg/state"
)

type stringField struct {
	name  string
	usage string
	field func(*state.AppState) *string
}

type boolField struct {
	name  string
	usage string
	field func(*state.AppState) *bool
}

var stringFields = []stringField{
	{"template", "Template (post, banner, chat, popup, whatsapp, messenger, assistant)", func(s *state.AppState) *string { return &s.Template }},
	{"tag", "Hashtag shown by the template", func(s *state.AppState) *string { return &s.Tag }},
	{"text", "Main text", func(s *state.AppState) *string { return &s.Text }},
	{"theme", "Theme (light, dark)", func(s *state.AppState) *string { return &s.Theme }},
	{"bg", "Background color", func(s *state.AppState) *string { return &s.Bg }},
	{"name", "Author name", func(s *state.AppState) *string { return &s.Name }},
	{"handle", "Author handle", func(s *state.AppState) *string { return &s.Handle }},
	{"avatar", "Author avatar URL", func(s *state.AppState) *string { return &s.Avatar }},
	{"likes", "Like count", func(s *state.AppState) *string { return &s.Likes }},
	{"reposts", "Repost count", func(s *state.AppState) *string { return &s.Reposts }},
	{"replies", "Reply count", func(s *state.AppState) *string { return &s.Replies }},
	{"time", "Timestamp", func(s *state.AppState) *string { return &s.Time }},
	{"headline", "Banner headline", func(s *state.AppState) *string { return &s.Headline }},
	{"chat-name", "Chat contact name", func(s *state.AppState) *string { return &s.ChatName }},
	{"chat-avatar", "Chat contact avatar URL", func(s *state.AppState) *string { return &s.ChatAvatar }},
	{"popup-title", "Popup title", func(s *state.AppState) *string { return &s.PopupTitle }},
	{"buttons", "Popup buttons, comma separated", func(s *state.AppState) *string { return &s.Buttons }},
	{"whatsapp-contact", "WhatsApp contact", func(s *state.AppState) *string { return &s.WhatsAppContact }},
	{"whatsapp-messages", "WhatsApp messages, one per line", func(s *state.AppState) *string { return &s.WhatsAppMessages }},
	{"whatsapp-last-seen", "WhatsApp last seen", func(s *state.AppState) *string { return &s.WhatsAppLastSeen }},
	{"messenger-contact", "Messenger contact", func(s *state.AppState) *string { return &s.MessengerContact }},
	{"messenger-messages", "Messenger messages, one per line", func(s *state.AppState) *string { return &s.MessengerMessages }},
	{"assistant-messages", "Assistant conversation, one message per line", func(s *state.AppState) *string { return &s.AssistantMessages }},
	{"assistant-model", "Assistant model name", func(s *state.AppState) *string { return &s.AssistantModel }},
	{"og", "Link preview URL", func(s *state.AppState) *string { return &s.OG }},
}

var boolFields = []boolField{
	{"whatsapp-online", "Show the WhatsApp contact as online", func(s *state.AppState) *bool { return &s.WhatsAppIsOnline }},
	{"messenger-typing", "Show the Messenger typing indicator", func(s *state.AppState) *bool { return &s.MessengerIsTyping }},
	{"messenger-online", "Show the Messenger contact as online", func(s *state.AppState) *bool { return &s.MessengerIsOnline }},
	{"assistant-streaming", "Show the assistant as streaming", func(s *state.AppState) *bool { return &s.AssistantIsStreaming }},
}

func stateFlags() []cli.Flag {
	category := l10n.T("State")
	flags := []cli.Flag{
		&cli.StringFlag{Name: "state", Aliases: []string{"s"}, Usage: l10n.T("State file (YAML)"), Category: category},
		&cli.StringFlag{Name: "query", Usage: l10n.T("Share link or query string to start from"), Category: category},
		&cli.BoolFlag{Name: "save", Usage: l10n.T("Save the resulting state to the state file"), Category: category},
		&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Export width in CSS pixels"), Category: category},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Export height in CSS pixels"), Category: category},
	}
	for _, f := range stringFields {
		flags = append(flags, &cli.StringFlag{Name: f.name, Usage: l10n.T(f.usage), Category: category})
	}
	for _, f := range boolFields {
		flags = append(flags, &cli.BoolFlag{Name: f.name, Usage: l10n.T(f.usage), Category: category})
	}
	return flags
}

func statePath(c *cli.Context, e env) string {
	if c.IsSet("state") {
		return c.String("state")
	}
	return e.cfg.StateFile
}

// loadState layers defaults, the state file, --query and explicit flags.
func loadState(c *cli.Context, e env) (state.AppState, error) {
	st := state.Defaults()
	if path := statePath(c, e); path != "" {
		loaded, err := state.NewStore(e.fs, path).Load()
		if err != nil {
			return st, fmt.Errorf("load state: %w", err)
		}
		st = loaded
	}

	if raw := c.String("query"); raw != "" {
		parsed, err := state.ParseQuery(raw, st)
		if err != nil {
			return st, fmt.Errorf("parse query: %w", err)
		}
		st = parsed
	}

	applyStateFlags(c, &st)

	b := state.From(st)
	if c.IsSet("width") || c.IsSet("height") {
		w, h := st.Width, st.Height
		if c.IsSet("width") {
			w = c.Int("width")
		}
		if c.IsSet("height") {
			h = c.Int("height")
		}
		b = b.WithSize(w, h)
	}
	st = b.Build()

	if err := st.Validate(); err != nil {
		return st, err
	}
	return st, nil
}

func applyStateFlags(c *cli.Context, st *state.AppState) {
	for _, f := range stringFields {
		if c.IsSet(f.name) {
			*f.field(st) = c.String(f.name)
		}
	}
	for _, f := range boolFields {
		if c.IsSet(f.name) {
			*f.field(st) = c.Bool(f.name)
		}
	}
}

func saveState(c *cli.Context, e env, st state.AppState) error {
	if !c.Bool("save") {
		return nil
	}
	path := statePath(c, e)
	if path == "" {
		return fmt.Errorf("--save needs --state or state_file in the config")
	}
	if err := state.NewStore(e.fs, path).Save(st); err != nil {
		return err
	}
	e.log.Info(l10n.F("State saved to %s", path))
	return nil
}

package state

// Builder provides a fluent interface for building an AppState.
type Builder struct {
	state AppState
}

// NewBuilder creates a Builder starting from Defaults.
func NewBuilder() *Builder {
	return &Builder{state: Defaults()}
}

// From creates a Builder starting from s.
func From(s AppState) *Builder {
	return &Builder{state: s}
}

// Build returns the final state. Non-positive sizes fall back to the
// defaults and an empty template selects the post variant.
func (b *Builder) Build() AppState {
	s := b.state
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	if s.Template == "" {
		s.Template = DefaultTemplate
	}
	return s
}

// WithTemplate selects the variant by name.
func (b *Builder) WithTemplate(name string) *Builder {
	b.state.Template = name
	return b
}

// WithTag sets the highlighted hashtag.
func (b *Builder) WithTag(tag string) *Builder {
	b.state.Tag = tag
	return b
}

// WithText sets the main body text.
func (b *Builder) WithText(text string) *Builder {
	b.state.Text = text
	return b
}

// WithTheme sets light or dark.
func (b *Builder) WithTheme(theme string) *Builder {
	b.state.Theme = theme
	return b
}

// WithBackground sets the export background color.
func (b *Builder) WithBackground(bg string) *Builder {
	b.state.Bg = bg
	return b
}

// WithSize sets the high-quality export size.
func (b *Builder) WithSize(width, height int) *Builder {
	b.state.Width = width
	b.state.Height = height
	return b
}

// WithAuthor sets the post author fields.
func (b *Builder) WithAuthor(name, handle, avatar string) *Builder {
	b.state.Name = name
	b.state.Handle = handle
	b.state.Avatar = avatar
	return b
}

// WithCounts sets the post engagement counts. Empty strings hide a count.
func (b *Builder) WithCounts(likes, reposts, replies string) *Builder {
	b.state.Likes = likes
	b.state.Reposts = reposts
	b.state.Replies = replies
	return b
}

// WithTime sets the timestamp shown by every variant that has one.
func (b *Builder) WithTime(t string) *Builder {
	b.state.Time = t
	return b
}

// WithHeadline sets the banner headline.
func (b *Builder) WithHeadline(headline string) *Builder {
	b.state.Headline = headline
	return b
}

// WithChat sets the chat sender.
func (b *Builder) WithChat(name, avatar string) *Builder {
	b.state.ChatName = name
	b.state.ChatAvatar = avatar
	return b
}

// WithPopup sets the dialog title and "|" separated buttons.
func (b *Builder) WithPopup(title, buttons string) *Builder {
	b.state.PopupTitle = title
	b.state.Buttons = buttons
	return b
}

// WithWhatsApp sets the WhatsApp conversation.
func (b *Builder) WithWhatsApp(contact, messages, lastSeen string, online bool) *Builder {
	b.state.WhatsAppContact = contact
	b.state.WhatsAppMessages = messages
	b.state.WhatsAppLastSeen = lastSeen
	b.state.WhatsAppIsOnline = online
	return b
}

// WithMessenger sets the Messenger conversation.
func (b *Builder) WithMessenger(contact, messages string, typing, online bool) *Builder {
	b.state.MessengerContact = contact
	b.state.MessengerMessages = messages
	b.state.MessengerIsTyping = typing
	b.state.MessengerIsOnline = online
	return b
}

// WithAssistant sets the assistant transcript.
func (b *Builder) WithAssistant(model, messages string, streaming bool) *Builder {
	b.state.AssistantModel = model
	b.state.AssistantMessages = messages
	b.state.AssistantIsStreaming = streaming
	return b
}

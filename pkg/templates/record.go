package templates

// Record is the data shown by one variant. Implementations are plain values.
type Record interface {
	Kind() Kind
}

// Theme selects the light or dark palette of the class-styled variants.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// normalize maps unknown or empty themes to light.
func (t Theme) normalize() Theme {
	if t == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// PostRecord is a social network post.
// Likes, Reposts and Replies are display strings; empty means absent, so
// "0" is still shown.
type PostRecord struct {
	Text        string
	DisplayName string
	Handle      string
	Theme       Theme

	Tag       string
	AvatarURL string
	Likes     string
	Reposts   string
	Replies   string
	Time      string
}

// BannerRecord is a breaking-news style banner.
type BannerRecord struct {
	Text  string
	Theme Theme

	Tag      string
	Headline string
	Time     string
}

// ChatRecord is a single chat bubble with its sender.
type ChatRecord struct {
	Text  string
	Theme Theme

	Tag        string
	SenderName string
	AvatarURL  string
	Time       string
}

// PopupRecord is a system dialog.
// Buttons is a "|" separated list of labels.
type PopupRecord struct {
	Text  string
	Theme Theme

	Tag     string
	Title   string
	Buttons string
}

// DeliveryStatus is the receipt state of a self-sent WhatsApp message.
type DeliveryStatus string

const (
	StatusNone      DeliveryStatus = ""
	StatusSent      DeliveryStatus = "sent"
	StatusDelivered DeliveryStatus = "delivered"
	StatusRead      DeliveryStatus = "read"
)

// WhatsAppMessage is one entry of a WhatsApp conversation.
type WhatsAppMessage struct {
	Text     string
	FromSelf bool
	Time     string
	Status   DeliveryStatus
}

// WhatsAppRecord is a WhatsApp-like conversation.
type WhatsAppRecord struct {
	ContactName string
	Messages    []WhatsAppMessage

	AvatarURL string
	LastSeen  string
	IsOnline  bool
}

// MessengerMessage is one entry of a Messenger conversation.
type MessengerMessage struct {
	Text       string
	FromSelf   bool
	Time       string
	SenderName string
}

// MessengerRecord is a Messenger-like conversation.
type MessengerRecord struct {
	ContactName string
	Messages    []MessengerMessage

	AvatarURL string
	IsTyping  bool
	IsOnline  bool
}

// AssistantMessage is one turn of an assistant conversation. A non-empty
// CodeLanguage renders Text as a code block.
type AssistantMessage struct {
	Text         string
	FromUser     bool
	Timestamp    string
	CodeLanguage string
}

// AssistantRecord is an AI assistant chat transcript.
type AssistantRecord struct {
	Messages []AssistantMessage
	Model    string

	IsStreaming bool
}

func (PostRecord) Kind() Kind      { return KindPost }
func (BannerRecord) Kind() Kind    { return KindBanner }
func (ChatRecord) Kind() Kind      { return KindChat }
func (PopupRecord) Kind() Kind     { return KindPopup }
func (WhatsAppRecord) Kind() Kind  { return KindWhatsApp }
func (MessengerRecord) Kind() Kind { return KindMessenger }
func (AssistantRecord) Kind() Kind { return KindAssistant }

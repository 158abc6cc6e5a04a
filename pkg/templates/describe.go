package templates

// Description summarizes the fields of a variant.
type Description struct {
	Kind     Kind
	Label    string
	Required []string
	Optional []string
}

var descriptions = map[Kind]Description{
	KindPost: {
		Label:    "Social post",
		Required: []string{"text", "name", "handle", "theme"},
		Optional: []string{"tag", "avatar", "likes", "reposts", "replies", "time"},
	},
	KindBanner: {
		Label:    "News banner",
		Required: []string{"text", "theme"},
		Optional: []string{"tag", "headline", "time"},
	},
	KindChat: {
		Label:    "Chat bubble",
		Required: []string{"text", "theme"},
		Optional: []string{"tag", "chatName", "chatAvatar", "time"},
	},
	KindPopup: {
		Label:    "System popup",
		Required: []string{"text", "theme"},
		Optional: []string{"tag", "popupTitle", "buttons"},
	},
	KindWhatsApp: {
		Label:    "WhatsApp-style conversation",
		Required: []string{"whatsappContact", "whatsappMessages"},
		Optional: []string{"avatar", "whatsappLastSeen", "whatsappOnline"},
	},
	KindMessenger: {
		Label:    "Messenger-style conversation",
		Required: []string{"messengerContact", "messengerMessages"},
		Optional: []string{"avatar", "messengerTyping", "messengerOnline"},
	},
	KindAssistant: {
		Label:    "Assistant chat",
		Required: []string{"assistantMessages", "assistantModel"},
		Optional: []string{"assistantStreaming"},
	},
}

// Describe returns the field summary of kind.
func Describe(kind Kind) (Description, bool) {
	d, ok := descriptions[kind]
	d.Kind = kind
	return d, ok
}

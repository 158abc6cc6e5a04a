// Package templates renders the mock UI variants as HTML markup.
//
// Every renderer is a pure function of its record: the same record always
// yields byte-identical markup, and missing optional fields omit their
// section instead of producing an error.
package templates

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one visual variant.
type Kind string

const (
	KindPost      Kind = "post"
	KindBanner    Kind = "banner"
	KindChat      Kind = "chat"
	KindPopup     Kind = "popup"
	KindWhatsApp  Kind = "whatsapp"
	KindMessenger Kind = "messenger"
	KindAssistant Kind = "assistant"
)

var (
	// ErrUnknownKind is returned for a kind outside the supported set.
	ErrUnknownKind = errors.New("templates: unknown variant kind")

	// ErrRecordMismatch is returned when a record does not belong to the
	// requested kind.
	ErrRecordMismatch = errors.New("templates: record does not match kind")
)

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindPost, KindBanner, KindChat, KindPopup, KindWhatsApp, KindMessenger, KindAssistant}
}

// aliases maps legacy names used in shared links to kinds.
var aliases = map[string]Kind{
	"xpost":   KindPost,
	"tweet":   KindPost,
	"chatgpt": KindAssistant,
}

// ParseKind parses a kind name, accepting legacy aliases.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	_, ok := registry[k]
	return ok
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

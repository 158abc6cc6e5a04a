package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// renderFunc renders a record already known to match its kind.
type renderFunc func(rec Record) (string, error)

var registry = map[Kind]renderFunc{
	KindPost:      func(r Record) (string, error) { return renderPost(r.(PostRecord)) },
	KindBanner:    func(r Record) (string, error) { return renderBanner(r.(BannerRecord)) },
	KindChat:      func(r Record) (string, error) { return renderChat(r.(ChatRecord)) },
	KindPopup:     func(r Record) (string, error) { return renderPopup(r.(PopupRecord)) },
	KindWhatsApp:  func(r Record) (string, error) { return renderWhatsApp(r.(WhatsAppRecord)) },
	KindMessenger: func(r Record) (string, error) { return renderMessenger(r.(MessengerRecord)) },
	KindAssistant: func(r Record) (string, error) { return renderAssistant(r.(AssistantRecord)) },
}

// Render renders rec as the given kind.
func Render(kind Kind, rec Record) (string, error) {
	fn, ok := registry[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if rec == nil || rec.Kind() != kind {
		return "", fmt.Errorf("%w: want %s", ErrRecordMismatch, kind)
	}
	return fn(rec)
}

// RenderRecord renders rec with its own kind.
func RenderRecord(rec Record) (string, error) {
	if rec == nil {
		return "", ErrRecordMismatch
	}
	return Render(rec.Kind(), rec)
}

// execute runs a parsed template into a string.
func execute(tmpl *template.Template, vars any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("execute template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

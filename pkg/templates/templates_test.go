package templates

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleRecords() []Record {
	return []Record{
		PostRecord{Text: "We turned tags into screenshots.", DisplayName: "Ada", Handle: "ada", Theme: ThemeLight, Tag: "#BREAKING", Likes: "124k"},
		BannerRecord{Text: "Latency dropped", Theme: ThemeDark, Headline: "Fleet update", Time: "now"},
		ChatRecord{Text: "hello", Theme: ThemeLight, SenderName: "bob"},
		PopupRecord{Text: "Disk almost full", Theme: ThemeDark, Title: "System Alert", Buttons: "OK|Cancel"},
		WhatsAppRecord{ContactName: "John", Messages: []WhatsAppMessage{{Text: "Hey", FromSelf: true, Time: "9:41", Status: StatusRead}}},
		MessengerRecord{ContactName: "Jane", Messages: []MessengerMessage{{Text: "Hi", Time: "9:41", SenderName: "Jane"}}},
		AssistantRecord{Messages: []AssistantMessage{{Text: "Hello", FromUser: true, Timestamp: "9:41"}}, Model: "GPT-4"},
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	for _, rec := range sampleRecords() {
		t.Run(string(rec.Kind()), func(t *testing.T) {
			first, err := Render(rec.Kind(), rec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			second, err := Render(rec.Kind(), rec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if first != second {
				t.Errorf("markup differs between calls:\n%s", cmp.Diff(first, second))
			}
			if strings.TrimSpace(first) == "" {
				t.Error("expected non-empty markup")
			}
		})
	}
}

func TestRender_CoversEveryKind(t *testing.T) {
	seen := map[Kind]bool{}
	for _, rec := range sampleRecords() {
		seen[rec.Kind()] = true
	}
	for _, k := range Kinds() {
		if !seen[k] {
			t.Errorf("no sample record for kind %s", k)
		}
		if !k.Valid() {
			t.Errorf("kind %s not registered", k)
		}
	}
}

func TestRender_Errors(t *testing.T) {
	_, err := Render(KindPost, BannerRecord{Text: "x"})
	if !errors.Is(err, ErrRecordMismatch) {
		t.Errorf("expected ErrRecordMismatch, got %v", err)
	}

	_, err = Render(Kind("story"), PostRecord{})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}

	_, err = RenderRecord(nil)
	if !errors.Is(err, ErrRecordMismatch) {
		t.Errorf("expected ErrRecordMismatch for nil record, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"post", KindPost, false},
		{"xpost", KindPost, false},
		{" Banner ", KindBanner, false},
		{"chatgpt", KindAssistant, false},
		{"whatsapp", KindWhatsApp, false},
		{"story", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Errorf("expected ErrUnknownKind, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestRenderPost_Stats(t *testing.T) {
	base := PostRecord{Text: "hi", DisplayName: "Ada", Handle: "ada", Theme: ThemeLight}

	tests := []struct {
		name    string
		mutate  func(*PostRecord)
		want    []string
		wantNot []string
	}{
		{
			name:    "no counts",
			mutate:  func(*PostRecord) {},
			wantNot: []string{`class="stats"`, "stat-likes", "stat-reposts", "stat-replies"},
		},
		{
			name:    "likes only",
			mutate:  func(r *PostRecord) { r.Likes = "12" },
			want:    []string{`class="stats"`, "stat-likes"},
			wantNot: []string{"stat-reposts", "stat-replies"},
		},
		{
			name:    "zero is present",
			mutate:  func(r *PostRecord) { r.Replies = "0" },
			want:    []string{`class="stats"`, "stat-replies", "</span> 0</div>"},
			wantNot: []string{"stat-likes", "stat-reposts"},
		},
		{
			name:   "all counts",
			mutate: func(r *PostRecord) { r.Likes, r.Reposts, r.Replies = "1", "2", "3" },
			want:   []string{"stat-likes", "stat-reposts", "stat-replies"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := base
			tt.mutate(&rec)
			html, err := Render(KindPost, rec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, s := range tt.want {
				if !strings.Contains(html, s) {
					t.Errorf("expected markup to contain %q", s)
				}
			}
			for _, s := range tt.wantNot {
				if strings.Contains(html, s) {
					t.Errorf("expected markup not to contain %q", s)
				}
			}
		})
	}
}

func TestRenderPost_OptionalSections(t *testing.T) {
	html, err := Render(KindPost, PostRecord{Text: "hi", DisplayName: "ada", Handle: "ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{`class="tag"`, `class="time"`, "<img"} {
		if strings.Contains(html, s) {
			t.Errorf("expected %q to be omitted", s)
		}
	}
	if !strings.Contains(html, `<div class="avatar avatar-fallback">A</div>`) {
		t.Error("expected fallback badge with uppercased initial")
	}
	if !strings.Contains(html, `data-theme="light"`) {
		t.Error("expected empty theme to default to light")
	}
}

func TestRenderChat_AvatarFallback(t *testing.T) {
	html, err := Render(KindChat, ChatRecord{Text: "hello", Theme: ThemeLight})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<img") {
		t.Error("expected no image element without an avatar URL")
	}
	if !strings.Contains(html, `<div class="avatar avatar-fallback">U</div>`) {
		t.Error("expected default fallback initial U")
	}
	if !strings.Contains(html, `<div class="sender">User</div>`) {
		t.Error("expected default sender label")
	}

	html, err = Render(KindChat, ChatRecord{Text: "hello", SenderName: "zoe", AvatarURL: "https://example.com/a.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := strings.Index(html, `<img src="https://example.com/a.png"`)
	badge := strings.Index(html, `<div class="avatar avatar-fallback">Z</div>`)
	if img < 0 || badge < 0 {
		t.Fatalf("expected both image and fallback badge, got:\n%s", html)
	}
	if img > badge {
		t.Error("expected the fallback badge to follow the image")
	}
	if !strings.Contains(html, "onerror=") {
		t.Error("expected an onerror handler on the avatar image")
	}
}

func TestRender_AvatarSchemes(t *testing.T) {
	urls := []string{
		"data:image/png;base64,iVBORw0KGgo=",
		"file:///home/me/avatar.png",
		"https://example.com/a.png",
	}
	records := map[Kind]func(string) Record{
		KindPost: func(u string) Record { return PostRecord{Text: "x", AvatarURL: u} },
		KindChat: func(u string) Record { return ChatRecord{Text: "x", AvatarURL: u} },
		KindWhatsApp: func(u string) Record {
			return WhatsAppRecord{ContactName: "John", AvatarURL: u}
		},
		KindMessenger: func(u string) Record {
			return MessengerRecord{ContactName: "Jane", AvatarURL: u}
		},
	}

	for kind, build := range records {
		for _, u := range urls {
			t.Run(kind.String()+"/"+u[:4], func(t *testing.T) {
				html, err := Render(kind, build(u))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !strings.Contains(html, `src="`+u+`"`) {
					t.Errorf("expected avatar src %q, got:\n%s", u, html)
				}
				if strings.Contains(html, "ZgotmplZ") {
					t.Error("avatar URL was filtered")
				}
			})
		}
	}
}

func TestRenderPopup_Buttons(t *testing.T) {
	html, err := Render(KindPopup, PopupRecord{Text: "Retry?", Buttons: "OK|Cancel|Retry"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	re := regexp.MustCompile(`<button class="btn (primary|secondary)">([^<]*)</button>`)
	matches := re.FindAllStringSubmatch(html, -1)

	type button struct{ Class, Label string }
	var got []button
	for _, m := range matches {
		got = append(got, button{m[1], m[2]})
	}
	want := []button{{"primary", "OK"}, {"secondary", "Cancel"}, {"secondary", "Retry"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buttons mismatch (-want +got):\n%s", diff)
	}
	if n := strings.Count(html, "<button"); n != 3 {
		t.Errorf("expected 3 buttons, got %d", n)
	}
}

func TestParseButtons(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"OK"}},
		{"  ", []string{"OK"}},
		{"Yes", []string{"Yes"}},
		{" Yes | No ", []string{"Yes", "No"}},
		{"A||B|", []string{"A", "B"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseButtons(tt.input)); diff != "" {
			t.Errorf("ParseButtons(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestRenderWhatsApp_OrderAndStatus(t *testing.T) {
	rec := WhatsAppRecord{
		ContactName: "john",
		LastSeen:    "2 minutes ago",
		Messages: []WhatsAppMessage{
			{Text: "msg-1", FromSelf: true, Time: "1", Status: StatusSent},
			{Text: "msg-2", FromSelf: false, Time: "2"},
			{Text: "msg-3", FromSelf: true, Time: "3", Status: StatusDelivered},
			{Text: "msg-4", FromSelf: true, Time: "4", Status: StatusRead},
			{Text: "msg-5", FromSelf: false, Time: "5", Status: StatusRead},
		},
	}
	html, err := Render(KindWhatsApp, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrdered(t, html, "msg-1", "msg-2", "msg-3", "msg-4", "msg-5")

	sides := regexp.MustCompile(`wa-message from-(self|other)`).FindAllStringSubmatch(html, -1)
	var got []string
	for _, m := range sides {
		got = append(got, m[1])
	}
	if diff := cmp.Diff([]string{"self", "other", "self", "self", "other"}, got); diff != "" {
		t.Errorf("alternation mismatch (-want +got):\n%s", diff)
	}

	statuses := regexp.MustCompile(`status status-(\w+)`).FindAllStringSubmatch(html, -1)
	got = got[:0]
	for _, m := range statuses {
		got = append(got, m[1])
	}
	if diff := cmp.Diff([]string{"sent", "delivered", "read"}, got); diff != "" {
		t.Errorf("status glyphs mismatch (-want +got):\n%s", diff)
	}

	read := `<span class="status status-read" style="margin-left: 4px; color: #667781;">✓✓ <span class="status-read-tick" style="color: #34B7F1;">✓</span></span>`
	if !strings.Contains(html, read) {
		t.Errorf("expected read status as two ticks plus a blue tick, got:\n%s", html)
	}

	if !strings.Contains(html, "last seen 2 minutes ago") {
		t.Error("expected last seen text when offline")
	}
	if strings.Contains(html, "online-dot") {
		t.Error("expected no online dot when offline")
	}

	rec.IsOnline = true
	html, err = Render(KindWhatsApp, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "last seen") {
		t.Error("expected online flag to override last seen")
	}
	if !strings.Contains(html, `<div class="presence" style="font-size: 13px; opacity: 0.8;">online</div>`) {
		t.Error("expected online presence text")
	}
}

func TestRenderMessenger_TypingAndSender(t *testing.T) {
	rec := MessengerRecord{
		ContactName: "jane",
		IsTyping:    true,
		Messages: []MessengerMessage{
			{Text: "msg-alpha", FromSelf: true, Time: "1", SenderName: "me"},
			{Text: "msg-beta", FromSelf: false, Time: "2", SenderName: "Jane"},
			{Text: "msg-gamma", FromSelf: false, Time: "3"},
		},
	}
	html, err := Render(KindMessenger, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrdered(t, html, "msg-alpha", "msg-beta", "msg-gamma", "typing-indicator")

	if n := strings.Count(html, `class="sender-name"`); n != 1 {
		t.Errorf("expected exactly one sender label, got %d", n)
	}
	if strings.Contains(html, ">me</div>") {
		t.Error("expected no sender label on self messages")
	}
	if !strings.Contains(html, "Active 2h ago") {
		t.Error("expected offline presence text")
	}

	rec.IsTyping = false
	html, _ = Render(KindMessenger, rec)
	if strings.Contains(html, "typing-indicator") {
		t.Error("expected no typing indicator")
	}
}

func TestRenderAssistant(t *testing.T) {
	rec := AssistantRecord{
		Messages: []AssistantMessage{
			{Text: "write some code", FromUser: true, Timestamp: "1"},
			{Text: "function add(a, b) { return a < b; }", Timestamp: "2", CodeLanguage: "javascript"},
		},
		IsStreaming: true,
	}
	html, err := Render(KindAssistant, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, ">GPT-4</div>") {
		t.Error("expected default model label")
	}
	if n := strings.Count(html, `class="code-block"`); n != 1 {
		t.Errorf("expected 1 code block, got %d", n)
	}
	if !strings.Contains(html, ">javascript</div>") {
		t.Error("expected language label")
	}
	if !strings.Contains(html, "return a &lt; b;") {
		t.Error("expected code to be escaped verbatim")
	}
	assertOrdered(t, html, "from-user", "from-assistant", "streaming-indicator")
}

func TestRichText(t *testing.T) {
	html, err := Render(KindBanner, BannerRecord{Text: `<b>bold</b><script>alert(1)</script>`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<b>bold</b>") {
		t.Error("expected inline formatting to survive")
	}
	if strings.Contains(html, "<script") || strings.Contains(html, "alert(1)") {
		t.Error("expected script to be removed")
	}

	html, _ = Render(KindBanner, BannerRecord{Text: "x", Headline: "<i>raw</i>"})
	if !strings.Contains(html, "&lt;i&gt;raw&lt;/i&gt;") {
		t.Error("expected plain fields to be escaped")
	}
}

func TestDescribe(t *testing.T) {
	for _, k := range Kinds() {
		d, ok := Describe(k)
		if !ok {
			t.Errorf("missing description for %s", k)
			continue
		}
		if d.Kind != k || d.Label == "" || len(d.Required) == 0 {
			t.Errorf("incomplete description for %s: %+v", k, d)
		}
	}
}

// assertOrdered checks that every marker appears after the previous one.
func assertOrdered(t *testing.T, html string, markers ...string) {
	t.Helper()
	pos := -1
	for _, m := range markers {
		idx := strings.Index(html[pos+1:], m)
		if idx < 0 {
			t.Fatalf("marker %q not found after position %d", m, pos)
		}
		pos += 1 + idx
	}
}

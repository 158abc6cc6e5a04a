package state

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names used by share links.
const (
	ParamTag        = "t"
	ParamTemplate   = "template"
	ParamText       = "text"
	ParamTheme      = "theme"
	ParamBg         = "bg"
	ParamName       = "name"
	ParamHandle     = "handle"
	ParamAvatar     = "avatar"
	ParamLikes      = "likes"
	ParamReposts    = "reposts"
	ParamReplies    = "replies"
	ParamTime       = "time"
	ParamHeadline   = "headline"
	ParamChatName   = "chatName"
	ParamChatAvatar = "chatAvatar"
	ParamPopupTitle = "popupTitle"
	ParamButtons    = "buttons"
	ParamOG         = "og"
	ParamWidth      = "w"
	ParamHeight     = "h"
)

// stringParams binds the plain string parameters to their fields.
func stringParams(s *AppState) []struct {
	name  string
	field *string
} {
	return []struct {
		name  string
		field *string
	}{
		{ParamTag, &s.Tag},
		{ParamTemplate, &s.Template},
		{ParamText, &s.Text},
		{ParamTheme, &s.Theme},
		{ParamName, &s.Name},
		{ParamHandle, &s.Handle},
		{ParamAvatar, &s.Avatar},
		{ParamLikes, &s.Likes},
		{ParamReposts, &s.Reposts},
		{ParamReplies, &s.Replies},
		{ParamTime, &s.Time},
		{ParamHeadline, &s.Headline},
		{ParamChatName, &s.ChatName},
		{ParamChatAvatar, &s.ChatAvatar},
		{ParamPopupTitle, &s.PopupTitle},
		{ParamButtons, &s.Buttons},
		{ParamOG, &s.OG},
	}
}

// EncodeQuery returns the share-link parameters for s. Empty fields are
// left out, as are the default background and size.
func EncodeQuery(s AppState) url.Values {
	v := url.Values{}
	for _, p := range stringParams(&s) {
		if *p.field != "" {
			v.Set(p.name, *p.field)
		}
	}
	if s.Bg != DefaultBackground {
		v.Set(ParamBg, s.Bg)
	}
	if s.Width != DefaultWidth {
		v.Set(ParamWidth, strconv.Itoa(s.Width))
	}
	if s.Height != DefaultHeight {
		v.Set(ParamHeight, strconv.Itoa(s.Height))
	}
	return v
}

// DecodeQuery overlays the parameters present in v onto base. A present but
// empty parameter clears its field. Sizes that are not integers are
// ignored.
func DecodeQuery(v url.Values, base AppState) AppState {
	s := base
	for _, p := range stringParams(&s) {
		if v.Has(p.name) {
			*p.field = v.Get(p.name)
		}
	}
	if v.Has(ParamBg) {
		s.Bg = v.Get(ParamBg)
	}
	if n, ok := intParam(v, ParamWidth); ok {
		s.Width = n
	}
	if n, ok := intParam(v, ParamHeight); ok {
		s.Height = n
	}
	return s
}

// ParseQuery decodes a raw query string, with or without a leading "?" or
// a full URL in front of it.
func ParseQuery(raw string, base AppState) (AppState, error) {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[i+1:]
	}
	v, err := url.ParseQuery(raw)
	if err != nil {
		return base, err
	}
	return DecodeQuery(v, base), nil
}

func intParam(v url.Values, name string) (int, bool) {
	if !v.Has(name) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.Get(name)))
	if err != nil {
		return 0, false
	}
	return n, true
}

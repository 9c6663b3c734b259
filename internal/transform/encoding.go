package transform

import (
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"strings"
	"unicode/utf8"
)

func toBase64(s string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(s)), nil
}

func fromBase64(s string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			return -1
		}
		return r
	}, s)
	b, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", invalidEncoding("Invalid Base64 string", err)
	}
	if !utf8.Valid(b) {
		return "", invalidEncoding("Decoded Base64 is not valid UTF-8 text", nil)
	}
	return string(b), nil
}

const upperHex = "0123456789ABCDEF"

// shouldEscape reports whether b is outside the encodeURIComponent
// unreserved set.
func shouldEscape(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return false
	}
	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}

func urlEncode(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !shouldEscape(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String(), nil
}

func urlDecode(s string) (string, error) {
	// PathUnescape leaves '+' alone, matching decodeURIComponent.
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", invalidEncoding("Malformed percent-encoding", err)
	}
	if !utf8.ValidString(out) {
		return "", invalidEncoding("Decoded URL is not valid UTF-8 text", nil)
	}
	return out, nil
}

func toHex(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(hex.EncodeToString([]byte{s[i]}))
	}
	return b.String(), nil
}

func fromHex(s string) (string, error) {
	tokens := strings.Fields(s)
	buf := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) > 2 {
			return "", invalidEncoding("Invalid hex token "+quote(tok), nil)
		}
		if len(tok) == 1 {
			tok = "0" + tok
		}
		v, err := hex.DecodeString(tok)
		if err != nil {
			return "", invalidEncoding("Invalid hex token "+quote(tok), err)
		}
		buf = append(buf, v...)
	}
	if !utf8.Valid(buf) {
		return "", invalidEncoding("Hex bytes are not valid UTF-8 text", nil)
	}
	return string(buf), nil
}

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	htmlUnescaper = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

func htmlEncode(s string) (string, error) {
	return htmlEscaper.Replace(s), nil
}

// htmlDecode handles exactly the five entities htmlEncode produces, in one
// left-to-right pass, so "&amp;lt;" decodes to "&lt;".
func htmlDecode(s string) (string, error) {
	return htmlUnescaper.Replace(s), nil
}

func quote(s string) string {
	const max = 16
	if utf8.RuneCountInString(s) > max {
		s = string([]rune(s)[:max]) + "..."
	}
	return `"` + s + `"`
}

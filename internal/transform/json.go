package transform

import (
	"bytes"
	"encoding/json"
	"strings"
)

func jsonPretty(s string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(s)), "", "  "); err != nil {
		return "", invalidInput("Invalid JSON: "+err.Error(), err)
	}
	return buf.String(), nil
}

func jsonMinify(s string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(strings.TrimSpace(s))); err != nil {
		return "", invalidInput("Invalid JSON: "+err.Error(), err)
	}
	return buf.String(), nil
}

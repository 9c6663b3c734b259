package markdown

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/presentation"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestNew_Defaults(t *testing.T) {
	r, err := New(80, "")
	require.NoError(t, err)
	require.Equal(t, 80, r.Width())
	require.Equal(t, "dark", r.Style())
}

func TestNew_Light(t *testing.T) {
	r, err := New(60, "light")
	require.NoError(t, err)
	require.Equal(t, "light", r.Style())
}

func TestRender_Reference(t *testing.T) {
	r, err := New(100, "dark")
	require.NoError(t, err)

	md := presentation.ReferenceMarkdown(presentation.FromDescriptors(operation.Default().List()))
	out, err := r.Render(md)
	require.NoError(t, err)

	plain := stripANSI(out)
	require.Contains(t, plain, "Operations")
	require.Contains(t, plain, "CRYPTO")
	require.Contains(t, plain, "Caesar Cipher")
	require.Contains(t, plain, "Compress JSON structure")
}

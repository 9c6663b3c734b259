package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestPanel_ActionKeys(t *testing.T) {
	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"execute", Panel.Execute, []string{"ctrl+r"}},
		{"copy", Panel.Copy, []string{"ctrl+y"}},
		{"save", Panel.Save, []string{"ctrl+s"}},
		{"clear", Panel.Clear, []string{"ctrl+l"}},
		{"theme", Panel.ToggleTheme, []string{"ctrl+t"}},
		{"logs", Panel.ToggleLogs, []string{"ctrl+x"}},
		{"next category", Panel.NextCategory, []string{"tab"}},
		{"prev category", Panel.PrevCategory, []string{"shift+tab"}},
		{"help", Panel.Help, []string{"?"}},
		{"quit", Panel.Quit, []string{"ctrl+c"}},
		{"escape", Panel.Escape, []string{"esc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.keys, tt.binding.Keys())
			require.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

// Every binding shown in help must carry help text, and no two bindings in
// the same group may share a key.
func TestFullHelp_NoConflicts(t *testing.T) {
	seen := map[string]string{}
	for _, group := range Panel.FullHelp() {
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key)
			for _, k := range b.Keys() {
				if prev, dup := seen[k]; dup && k != "enter" {
					t.Fatalf("key %q bound to both %q and %q", k, prev, b.Help().Desc)
				}
				seen[k] = b.Help().Desc
			}
		}
	}
}

func TestShortHelp_SubsetOfFull(t *testing.T) {
	full := map[string]bool{}
	for _, group := range Panel.FullHelp() {
		for _, b := range group {
			full[b.Help().Key] = true
		}
	}
	for _, b := range Panel.ShortHelp() {
		require.True(t, full[b.Help().Key], "%s missing from full help", b.Help().Key)
	}
}

package osutil

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "", "vim", "nano"); got != "vim" {
		t.Errorf("expected vim, got %q", got)
	}

	if got := FirstNonEmpty("", ""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestEditorPrefersVisual(t *testing.T) {
	t.Setenv("VISUAL", "hx")
	t.Setenv("EDITOR", "vim")

	if got := Editor(); got != "hx" {
		t.Errorf("expected hx, got %q", got)
	}
}

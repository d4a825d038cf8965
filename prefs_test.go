package stockmon

import (
	"testing"
)

func TestPrefsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	p, err := LoadPrefs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !p.TotalAssetVisible() {
		t.Error("default visibility must be visible")
	}
	if p.SimpleTooltip() {
		t.Error("default tooltip mode must be detailed")
	}

	p.SetTotalAssetVisible(false)
	p.SetSimpleTooltip(true)
	if err := p.Save(); err != nil {
		t.Fatal(err)
	}

	q, err := LoadPrefs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if q.TotalAssetVisible() {
		t.Error("visibility flag lost")
	}
	if !q.SimpleTooltip() {
		t.Error("tooltip flag lost")
	}
	if q.Get(VisibilityKey) != "hidden" {
		t.Errorf("stored value = %q, want %q", q.Get(VisibilityKey), "hidden")
	}
}

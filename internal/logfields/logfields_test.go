package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{"RunID", RunID("r1"), KeyRunID, "r1"},
		{"Stage", Stage("scan"), KeyStage, "scan"},
		{"Path", Path("/tmp/docs"), KeyPath, "/tmp/docs"},
		{"File", File("guide/start.md"), KeyFile, "guide/start.md"},
		{"Dir", Dir("guide"), KeyDir, "guide"},
		{"Section", Section("/guide/"), KeySection, "/guide/"},
		{"Link", Link("/guide/start"), KeyLink, "/guide/start"},
		{"ConfigHash", ConfigHash("abc123"), KeyConfigHash, "abc123"},
		{"Error", Error(errors.New("boom")), KeyError, "boom"},
		{"NilError", Error(nil), KeyError, ""},
	}
	for _, c := range cases {
		if c.attr.Key != c.wantKey {
			t.Errorf("%s: key = %q, want %q", c.name, c.attr.Key, c.wantKey)
		}
		if got := c.attr.Value.String(); got != c.wantVal {
			t.Errorf("%s: value = %q, want %q", c.name, got, c.wantVal)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if v := Count(3).Value.Int64(); v != 3 {
		t.Errorf("Count = %d, want 3", v)
	}
	if v := Depth(2).Value.Int64(); v != 2 {
		t.Errorf("Depth = %d, want 2", v)
	}
	if v := DurationMS(1.5).Value.Float64(); v != 1.5 {
		t.Errorf("DurationMS = %v, want 1.5", v)
	}
}

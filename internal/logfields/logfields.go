package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyDir        = "dir"
	KeySection    = "section"
	KeyLink       = "link"
	KeyCount      = "count"
	KeyDepth      = "depth"
	KeyError      = "error"
	KeyConfigHash = "config_hash"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Dir(d string) slog.Attr           { return slog.String(KeyDir, d) }
func Section(s string) slog.Attr       { return slog.String(KeySection, s) }
func Link(l string) slog.Attr          { return slog.String(KeyLink, l) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Depth(d int) slog.Attr            { return slog.Int(KeyDepth, d) }
func ConfigHash(h string) slog.Attr    { return slog.String(KeyConfigHash, h) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

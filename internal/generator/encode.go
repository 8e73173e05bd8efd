package generator

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/config"
	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// Encode renders r in the given format. JSON is indented with two spaces.
func Encode(r *Result, format config.OutputFormat) ([]byte, error) {
	if r == nil {
		r = &Result{}
	}
	out := *r
	if out.Nav == nil {
		out.Nav = []nav.Item{}
	}
	if out.Sidebar == nil {
		out.Sidebar = nav.Sidebar{}
	}

	switch format {
	case config.OutputFormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(&out); err != nil {
			return nil, derrors.OutputError("encode yaml").WithCause(err).Build()
		}
		if err := enc.Close(); err != nil {
			return nil, derrors.OutputError("encode yaml").WithCause(err).Build()
		}
		return buf.Bytes(), nil
	case config.OutputFormatJSON, "":
		data, err := json.MarshalIndent(&out, "", "  ")
		if err != nil {
			return nil, derrors.OutputError("encode json").WithCause(err).Build()
		}
		return append(data, '\n'), nil
	default:
		return nil, derrors.ValidationError("unsupported output format").
			WithContext("format", string(format)).
			Build()
	}
}

// Write encodes r to w.
func Write(w io.Writer, r *Result, format config.OutputFormat) error {
	data, err := Encode(r, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return derrors.WrapError(err, derrors.CategoryOutput, "write result").Build()
	}
	return nil
}

// WriteFile encodes r into path, creating parent directories as needed.
func WriteFile(path string, r *Result, format config.OutputFormat) error {
	data, err := Encode(r, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return derrors.WrapError(err, derrors.CategoryOutput, "create output directory").
				WithContext("path", dir).
				Build()
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return derrors.WrapError(err, derrors.CategoryOutput, "write result").
			WithContext("path", path).
			Build()
	}
	return nil
}

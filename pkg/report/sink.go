package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/logging"
	"github.com/spf13/afero"
)

// DefaultOutputEnv names the variable holding the CI output file
const DefaultOutputEnv = "GITHUB_OUTPUT"

// Sink receives named run outputs
type Sink interface {
	Emit(key string, value any) error
}

type nopSink struct{}

func (nopSink) Emit(string, any) error { return nil }

// Nop returns a Sink that discards everything
func Nop() Sink {
	return nopSink{}
}

// FileSink appends KEY=<json> lines to a file, the format GitHub Actions
// reads step outputs from.
type FileSink struct {
	fsys afero.Fs
	path string
}

// GitHubOutput returns a FileSink writing to path
func GitHubOutput(fsys afero.Fs, path string) *FileSink {
	return &FileSink{fsys: fsys, path: path}
}

// Emit appends one line. The value is encoded as compact JSON with <, >
// and & left unescaped.
func (s *FileSink) Emit(key string, value any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return errors.Wrap(err, errors.ErrReportWrite, "cannot encode output").
			WithDetail("key", key)
	}
	data := bytes.TrimRight(buf.Bytes(), "\n")

	f, err := s.fsys.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, errors.ErrReportWrite, "cannot open output file").
			WithDetail("path", s.path)
	}

	if _, err := fmt.Fprintf(f, "%s=%s\n", key, data); err != nil {
		_ = f.Close()
		return errors.Wrap(err, errors.ErrReportWrite, "cannot write output").
			WithDetail("path", s.path).
			WithDetail("key", key)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, errors.ErrReportWrite, "cannot close output file").
			WithDetail("path", s.path)
	}
	return nil
}

// FromEnv returns a FileSink for the file named by the environment variable
// name, or a no-op Sink when the variable is unset or empty.
func FromEnv(fsys afero.Fs, name string) Sink {
	path := os.Getenv(name)
	if path == "" {
		logger := logging.GetLogger("report")
		logger.Debug().Str("env", name).Msg("No CI output file, outputs not published")
		return Nop()
	}
	return GitHubOutput(fsys, path)
}

// Publish emits every output in key order
func Publish(sink Sink, outputs map[string]any) error {
	keys := make([]string, 0, len(outputs))
	for k := range outputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := sink.Emit(k, outputs[k]); err != nil {
			return err
		}
	}
	return nil
}

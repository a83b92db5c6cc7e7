package sinks

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatLog  = "log"
)

// TextSink prints one line per diagnostic, compiler style.
type TextSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTextSink(out io.Writer) *TextSink {
	return &TextSink{out: out}
}

func (s *TextSink) Report(diagnostic entities.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := fmt.Sprintf("%s:%d:%d: %s: dependency %s:%s version %s is outdated, latest version is %s",
		diagnostic.File, diagnostic.Anchor.Line, diagnostic.Anchor.Column, diagnostic.Severity,
		diagnostic.GroupID, diagnostic.ArtifactID, diagnostic.CurrentVersion, diagnostic.LatestVersion)
	if diagnostic.FixName != "" {
		line += fmt.Sprintf(" (fix: %s)", diagnostic.FixName)
	}
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		logger.Errorf("failed to write diagnostic: %v", err)
	}
}

// JSONSink writes diagnostics as newline-delimited JSON.
type JSONSink struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

func NewJSONSink(out io.Writer) *JSONSink {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return &JSONSink{encoder: encoder}
}

func (s *JSONSink) Report(diagnostic entities.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.encoder.Encode(diagnostic); err != nil {
		logger.Errorf("failed to encode diagnostic: %v", err)
	}
}

// LogSink reports diagnostics through the logger, with the host link in
// the message.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Report(diagnostic entities.Diagnostic) {
	entry := logger.WithField("file", diagnostic.File)
	if diagnostic.FixName != "" {
		entry = entry.WithField("fix", diagnostic.FixName)
	}
	entry.Warn(diagnostic.Message)
}

// CollectingSink keeps every diagnostic in memory.
type CollectingSink struct {
	mu          sync.Mutex
	diagnostics []entities.Diagnostic
}

func NewCollectingSink() *CollectingSink {
	return &CollectingSink{}
}

func (s *CollectingSink) Report(diagnostic entities.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagnostics = append(s.diagnostics, diagnostic)
}

// Diagnostics returns a copy of what was reported so far.
func (s *CollectingSink) Diagnostics() []entities.Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Diagnostic(nil), s.diagnostics...)
}

// Tee fans a diagnostic out to several sinks.
type Tee []repositories.DiagnosticSink

func (t Tee) Report(diagnostic entities.Diagnostic) {
	for _, sink := range t {
		sink.Report(diagnostic)
	}
}

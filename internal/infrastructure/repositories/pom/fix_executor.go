package pom

import (
	"bytes"
	"encoding/xml"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
	"github.com/rios0rios0/mvnupdate/internal/domain/repositories"
)

// FixExecutor rewrites the text of the element a fix targets.
type FixExecutor struct{}

// NewFixExecutor creates a new fix executor.
func NewFixExecutor() repositories.FixRepository {
	return &FixExecutor{}
}

// Apply re-parses content, finds the live element at the fix's path and
// overwrites its text, keeping surrounding whitespace. Nothing is written
// when the element is gone, has children, or no longer holds the value the
// fix was planned against.
func (it *FixExecutor) Apply(content []byte, fix entities.FixAction) ([]byte, bool) {
	if fix.Kind == entities.FixNone || fix.Target.IsZero() {
		return content, false
	}

	doc, err := parseDocument(content)
	if err != nil {
		logger.Infof("[fix] %s: content is no longer valid XML: %v", fix.Target.Path, err)
		return content, false
	}

	target, ok := doc.byPath[fix.Target.Path]
	if !ok || len(target.children) > 0 {
		logger.Infof("[fix] %s: element no longer exists", fix.Target.Path)
		return content, false
	}

	raw := string(content[target.textStart:target.textEnd])
	current := target.trimmedText()
	if current != fix.Target.Text {
		logger.Infof("[fix] %s: value changed from %q to %q, skipping", fix.Target.Path, fix.Target.Text, current)
		return content, false
	}

	leading := raw[:len(raw)-len(strings.TrimLeft(raw, " \t\r\n"))]
	trailing := raw[len(strings.TrimRight(raw, " \t\r\n")):]

	var escaped bytes.Buffer
	if escapeErr := xml.EscapeText(&escaped, []byte(fix.NewValue)); escapeErr != nil {
		return content, false
	}

	var result bytes.Buffer
	result.Grow(len(content) + len(fix.NewValue))
	result.Write(content[:target.textStart])
	result.WriteString(leading)
	result.Write(escaped.Bytes())
	result.WriteString(trailing)
	result.Write(content[target.textEnd:])
	return result.Bytes(), true
}

package entities

import "fmt"

// FixKind tells how an outdated version can be rewritten.
type FixKind int

const (
	// FixNone means no safe rewrite could be planned.
	FixNone FixKind = iota
	// FixReplaceLiteral rewrites the <version> element of the declaration.
	FixReplaceLiteral
	// FixReplaceProperty rewrites the element that defines the referenced
	// property, which updates every dependency sharing it.
	FixReplaceProperty
)

func (k FixKind) String() string {
	switch k {
	case FixReplaceLiteral:
		return "ReplaceLiteral"
	case FixReplaceProperty:
		return "ReplaceProperty"
	default:
		return "None"
	}
}

// MarshalText renders the kind by name in JSON output.
func (k FixKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind rendered by MarshalText.
func (k *FixKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ReplaceLiteral":
		*k = FixReplaceLiteral
	case "ReplaceProperty":
		*k = FixReplaceProperty
	case "None", "":
		*k = FixNone
	default:
		return fmt.Errorf("unknown fix kind %q", text)
	}
	return nil
}

// FixAction is a planned rewrite. Target.Text holds the value the element
// had when the fix was offered, so a stale fix can be detected later.
type FixAction struct {
	Kind     FixKind       `json:"kind"`
	Target   ElementHandle `json:"target"`
	NewValue string        `json:"newValue"`
}

// FamilyName is the human-readable label of the fix.
func (f FixAction) FamilyName() string {
	switch f.Kind {
	case FixReplaceLiteral:
		return fmt.Sprintf("Replace version element with %s", f.NewValue)
	case FixReplaceProperty:
		return fmt.Sprintf("Replace version property with %s", f.NewValue)
	default:
		return ""
	}
}

// UpdateFinding is produced once per declaration that has a strictly newer
// published version. It only lives for one inspection pass.
type UpdateFinding struct {
	Declaration    DependencyDeclaration
	CurrentVersion string
	LatestVersion  string
	Fix            FixAction
}

// FixKind returns the kind of the planned fix.
func (f UpdateFinding) FixKind() FixKind {
	return f.Fix.Kind
}

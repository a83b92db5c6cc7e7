package entities

// SeverityWarning is the only severity the inspection emits.
const SeverityWarning = "WARNING"

// Diagnostic is what gets reported to a sink for one finding.
type Diagnostic struct {
	File           string        `json:"file"`
	Anchor         ElementHandle `json:"anchor"`
	Severity       string        `json:"severity"`
	Message        string        `json:"message"`
	Link           string        `json:"link"`
	ProjectName    string        `json:"projectName"`
	GroupID        string        `json:"groupId"`
	ArtifactID     string        `json:"artifactId"`
	CurrentVersion string        `json:"currentVersion"`
	LatestVersion  string        `json:"latestVersion"`
	Fix            *FixAction    `json:"fix,omitempty"`
	FixName        string        `json:"fixName,omitempty"`
}

package entities

import "fmt"

// Dependency sections a declaration can come from.
const (
	SectionDependencies         = "dependencies"
	SectionDependencyManagement = "dependencyManagement"
)

// ElementHandle points at an XML element inside a project descriptor as it
// was seen when the descriptor was parsed. Offsets are byte offsets.
type ElementHandle struct {
	Path      string `json:"path"`      // e.g. project[1]/dependencies[1]/dependency[2]/version[1]
	Offset    int    `json:"offset"`    // start of the opening tag
	TextStart int    `json:"textStart"` // first byte after the opening tag
	TextEnd   int    `json:"textEnd"`   // first byte of the closing tag
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Text      string `json:"text"` // trimmed character data
}

// IsZero reports whether the handle points nowhere.
func (h ElementHandle) IsZero() bool {
	return h.Path == ""
}

// DependencyEntry is a raw <dependency> element exposed by a project model.
// GroupID and ArtifactID are already interpolated; the version keeps both
// forms because fix planning needs to know whether indirection happened.
type DependencyEntry struct {
	GroupID         string
	ArtifactID      string
	RawVersion      string
	ResolvedVersion string
	Element         ElementHandle
	VersionElement  ElementHandle
}

// DependencyDeclaration is a well-formed dependency collected for one
// inspection pass. None of the coordinate fields is blank.
type DependencyDeclaration struct {
	GroupID             string
	ArtifactID          string
	VersionText         string // raw text of <version>, e.g. ${guava.version}
	ResolvedVersionText string // text after property interpolation
	Section             string
	Element             ElementHandle // the <dependency> element
	Version             ElementHandle // the <version> element
}

// Key identifies the declaration by its groupId:artifactId:version triple.
func (d DependencyDeclaration) Key() string {
	return fmt.Sprintf("%s:%s:%s", d.GroupID, d.ArtifactID, d.VersionText)
}

// Coordinate returns groupId:artifactId.
func (d DependencyDeclaration) Coordinate() string {
	return d.GroupID + ":" + d.ArtifactID
}

// PropertyDefinition is the result of a property lookup.
type PropertyDefinition struct {
	Name    string
	Value   string
	Element *ElementHandle // nil when the value is not backed by an element
}

// ResolvedVersion is a declaration's version after property resolution.
type ResolvedVersion struct {
	Raw                 string
	Resolved            string
	IsPropertyReference bool
	PropertyName        string
	Definition          *ElementHandle // property definition site; nil when the value has no element in this pom
	Site                ElementHandle  // the <version> element of the declaration
}

// ArtifactVersion is one published version returned by a search service.
type ArtifactVersion struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Version    string `json:"version"`
}

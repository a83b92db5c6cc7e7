package services

import (
	"strings"

	"github.com/rios0rios0/mvnupdate/internal/domain/entities"
)

// PlanFix decides how the version can be rewritten to latest.
func PlanFix(resolved entities.ResolvedVersion, latest string) entities.FixAction {
	literal := entities.FixAction{
		Kind:     entities.FixReplaceLiteral,
		Target:   resolved.Site,
		NewValue: latest,
	}

	if !resolved.IsPropertyReference {
		if resolved.Site.IsZero() {
			return entities.FixAction{Kind: entities.FixNone, NewValue: latest}
		}
		return literal
	}

	if resolved.Raw == resolved.Resolved || strings.TrimSpace(resolved.Resolved) == "" {
		return literal
	}
	if resolved.Definition == nil || resolved.Definition.IsZero() {
		return entities.FixAction{Kind: entities.FixNone, NewValue: latest}
	}

	return entities.FixAction{
		Kind:     entities.FixReplaceProperty,
		Target:   *resolved.Definition,
		NewValue: latest,
	}
}

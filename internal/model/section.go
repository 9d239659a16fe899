package model

import "strings"

// Section identifies one of the fixed named groupings on the board. Rows
// whose Team resolves to SectionUnknown belong to no section and are never
// displayed.
type Section int

const (
	SectionUnknown Section = iota
	SectionTeamUrgency
	SectionTeamNoUrgency
	SectionSymptoms
	SectionSnapshot
)

// sectionNames holds the display name for each known section.
var sectionNames = map[Section]string{
	SectionTeamUrgency:   "Team Urgency",
	SectionTeamNoUrgency: "Team No-Urgency",
	SectionSymptoms:      "Symptoms",
	SectionSnapshot:      "Snapshot",
}

// sectionAliases is the canonicalization table: every accepted spelling of a
// section name, keyed by its canonical form (lower case, hyphens and
// underscores folded to spaces, whitespace collapsed). Variants of the
// dataset disagreed on casing and hyphenation; resolving through this single
// table replaces the ad hoc string-equality checks they used.
var sectionAliases = map[string]Section{
	"team urgency":         SectionTeamUrgency,
	"urgency":              SectionTeamUrgency,
	"team no urgency":      SectionTeamNoUrgency,
	"no urgency":           SectionTeamNoUrgency,
	"symptoms":             SectionSymptoms,
	"results":              SectionSymptoms,
	"results and symptoms": SectionSymptoms,
	"snapshot":             SectionSnapshot,
}

// Sections returns all known sections in display order.
func Sections() []Section {
	return []Section{
		SectionTeamUrgency,
		SectionTeamNoUrgency,
		SectionSymptoms,
		SectionSnapshot,
	}
}

// ParseSection resolves a Team value to its section identity, or
// SectionUnknown when the value matches no entry in the canonicalization
// table.
func ParseSection(team string) Section {
	return sectionAliases[canonicalSectionKey(team)]
}

func canonicalSectionKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// String returns the section's display name, or "unknown" for
// SectionUnknown.
func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the section as its display name, for JSON and YAML
// exports.
func (s Section) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a section display name or alias.
func (s *Section) UnmarshalText(text []byte) error {
	*s = ParseSection(string(text))
	return nil
}

// Package draft owns the mutable resume Draft for one editing session.
package draft

import "fmt"

// Collection names used in list-editor errors and the HTTP API paths.
const (
	CollectionLanguages       = "languages"
	CollectionExperiences     = "experiences"
	CollectionTechnicalSkills = "technical-skills"
	CollectionSoftSkills      = "soft-skills"
	CollectionCertifications  = "certifications"
	CollectionAchievements    = "achievements"
	CollectionActivities      = "activities"
)

// OutOfRangeError indicates a list operation aimed at an index that does not exist.
type OutOfRangeError struct {
	Collection string
	Index      int
	Length     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range (length %d)", e.Collection, e.Index, e.Length)
}

// LastEntryError indicates an attempt to remove the only remaining entry of
// a collection. The form keeps at least one row per collection at all times.
type LastEntryError struct {
	Collection string
}

func (e *LastEntryError) Error() string {
	return fmt.Sprintf("%s: cannot remove the last remaining entry", e.Collection)
}

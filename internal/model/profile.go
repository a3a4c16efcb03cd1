// Package model defines the core data types shared across the standards
// assembly pipeline: request profiles, catalog entries, match results, and
// tabular record sets.
package model

// Profile describes the requesting project: which industries and project
// types it belongs to, and which modules content should be generated for.
// Order of the slices is irrelevant; they are treated as sets.
type Profile struct {
	Industries   []string `json:"industries" yaml:"industries"`
	ProjectTypes []string `json:"project_types" yaml:"project_types"`
	Modules      []string `json:"modules" yaml:"modules"`
}

// HasConstraints reports whether the profile restricts at least one
// filtering axis. A profile with neither industries nor project types
// selected imposes no content-level constraint.
func (p Profile) HasConstraints() bool {
	return len(p.Industries) > 0 || len(p.ProjectTypes) > 0
}

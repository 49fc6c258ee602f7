package model

// Version is the current pathctl release version.
const Version = "0.3.1"

// Shadow records a single collision: a file in a later path directory
// that hides a same-named file in an earlier one. PATH search order means
// the earlier directory's file is the one actually found, so the later
// copy is unreachable by name.
type Shadow struct {
	Covered  string `json:"Covered"`  // The earlier directory whose file wins the lookup
	Filename string `json:"Filename"` // The colliding file name
}

// DirShadows groups every shadow produced by one directory.
type DirShadows struct {
	Dir     string   `json:"Dir"`
	Shadows []Shadow `json:"Shadows"`
}

// Report is the full analysis of a raw path string.
type Report struct {
	Invalid    []string     `json:"Invalid"`    // Entries that are not existing directories, duplicates kept
	Duplicates []string     `json:"Duplicates"` // Second and later occurrences, in original order
	Shadowed   []DirShadows `json:"Shadowed,omitempty"`
}

// PathEntry is a single path directory annotated for display.
// The analysis order matches the raw path string, duplicates included.
type PathEntry struct {
	Value       string   // The directory path (e.g., /usr/bin)
	Missing     bool     // True if not an existing directory
	IsDuplicate bool     // True if an earlier entry has the same value
	DuplicateOf int      // Index of the first occurrence if IsDuplicate
	Shadows     []Shadow // Files in this directory hidden by earlier directories
	Remediation string   // Advice on how to fix/remove if duplicate
}

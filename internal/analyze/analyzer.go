// Package analyze computes diagnostic reports over a raw path string:
// entries that are not directories, repeated entries, and files shadowed
// by same-named files earlier in the search order.
//
// The analyzer works on the raw parse of the path string, duplicates and
// multiplicities preserved, because the diagnostics are about what the
// shell actually sees. Any filter/normalize flags on the command line do
// not apply here.
package analyze

import (
	"fmt"
	"os"

	"pathctl/internal/model"
	"pathctl/internal/pathlist"
)

// Analyzer processes a raw path entry list into diagnostic findings.
type Analyzer struct {
	raw []string
}

// New returns an Analyzer over the raw (duplicate-preserving) parse of
// the given path string.
func New(pathStr string) *Analyzer {
	return &Analyzer{raw: pathlist.ParseRaw(pathStr)}
}

// Invalid returns every entry that is not an existing directory, in
// original order, duplicates included. Entries whose metadata cannot be
// read count as invalid; a diagnosis pass should not abort on one bad
// entry.
func (a *Analyzer) Invalid() []string {
	var invalid []string
	for _, dir := range a.raw {
		if valid, err := pathlist.IsValidDir(dir); err != nil || !valid {
			invalid = append(invalid, dir)
		}
	}
	return invalid
}

// Duplicates returns every entry from its second occurrence onward, in
// original order. The first occurrence of a value is never reported.
func (a *Analyzer) Duplicates() []string {
	seen := make(map[string]bool)
	var dups []string
	for _, dir := range a.raw {
		if seen[dir] {
			dups = append(dups, dir)
		}
		seen[dir] = true
	}
	return dups
}

// Shadowed scans the directories left to right and reports, for each
// directory that re-introduces a file name claimed by an earlier
// directory, which earlier directory and file name it collides with.
// The first directory to provide a name owns it (PATH search order), so
// later copies are the unreachable ones. Directories that are not valid
// are skipped; only directories that shadow something appear in the
// result.
func (a *Analyzer) Shadowed() ([]model.DirShadows, error) {
	owner := make(map[string]string) // filename -> first directory providing it
	var result []model.DirShadows
	for _, dir := range a.raw {
		valid, err := pathlist.IsValidDir(dir)
		if err != nil || !valid {
			continue
		}
		names, err := listFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", dir, err)
		}
		var shadows []model.Shadow
		for _, name := range names {
			if earlier, ok := owner[name]; ok && earlier != dir {
				shadows = append(shadows, model.Shadow{Covered: earlier, Filename: name})
				continue
			}
			owner[name] = dir
		}
		if len(shadows) > 0 {
			result = append(result, model.DirShadows{Dir: dir, Shadows: shadows})
		}
	}
	return result, nil
}

// Run bundles the findings into a Report. The shadow scan reads every
// directory on the path, so it only runs when asked for.
func (a *Analyzer) Run(withShadows bool) (model.Report, error) {
	report := model.Report{
		Invalid:    a.Invalid(),
		Duplicates: a.Duplicates(),
	}
	if withShadows {
		shadowed, err := a.Shadowed()
		if err != nil {
			return model.Report{}, err
		}
		if shadowed == nil {
			// Keep the section present-but-empty so the renderer still
			// prints it with "None".
			shadowed = []model.DirShadows{}
		}
		report.Shadowed = shadowed
	}
	return report, nil
}

// Entries annotates each raw path entry with its findings for display.
// Order matches the raw path string, duplicates included.
func (a *Analyzer) Entries() []model.PathEntry {
	entries := make([]model.PathEntry, len(a.raw))
	firstIdx := make(map[string]int)
	for i, dir := range a.raw {
		entries[i] = model.PathEntry{Value: dir}
		valid, err := pathlist.IsValidDir(dir)
		entries[i].Missing = err != nil || !valid
		if first, ok := firstIdx[dir]; ok {
			entries[i].IsDuplicate = true
			entries[i].DuplicateOf = first
			entries[i].Remediation = fmt.Sprintf(
				"Duplicate of entry %d. Remove this occurrence; the first one wins the search.",
				first+1,
			)
		} else {
			firstIdx[dir] = i
		}
	}
	if shadowed, err := a.Shadowed(); err == nil {
		for _, ds := range shadowed {
			if i, ok := firstIdx[ds.Dir]; ok {
				entries[i].Shadows = ds.Shadows
			}
		}
	}
	return entries
}

// Find returns the directories that contain a file named name, in search
// order, skipping invalid or unreadable directories. The first result is
// the one a name-based lookup would actually pick.
func (a *Analyzer) Find(name string) []string {
	var found pathlist.List
	for _, dir := range a.raw {
		valid, err := pathlist.IsValidDir(dir)
		if err != nil || !valid {
			continue
		}
		names, err := listFiles(dir)
		if err != nil {
			continue
		}
		for _, n := range names {
			if n == name {
				found.AddUnique(dir)
				break
			}
		}
	}
	return found
}

// listFiles returns the names of the non-directory children of dir in
// directory order.
func listFiles(dir string) ([]string, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, c := range children {
		if c.IsDir() {
			continue
		}
		names = append(names, c.Name())
	}
	return names, nil
}

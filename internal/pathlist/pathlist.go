// Package pathlist implements parsing and editing of colon-delimited
// path strings, the shape of the PATH environment variable.
//
// A List never contains the same directory twice. The two insertion
// primitives differ in how they resolve a re-mention: AddUnique keeps the
// existing entry where it is, AddLast displaces it to the end. The editing
// operations are built from these two primitives and nothing else, so the
// first-wins vs last-wins behavior of each operation is explicit at the
// call site rather than hidden behind a dedup flag.
package pathlist

import "strings"

// Separator is the entry delimiter. Unix path lists only; Windows-style
// semicolon lists are out of scope.
const Separator = ":"

// List is an ordered, duplicate-free sequence of directory strings.
type List []string

// Parse splits source on the separator, drops empty segments, and keeps
// the first occurrence of each directory. "a:b:a:c:b" parses to [a b c].
func Parse(source string) List {
	var list List
	for _, dir := range strings.Split(source, Separator) {
		list.AddUnique(dir)
	}
	return list
}

// ParseRaw splits source on the separator and drops empty segments but
// keeps duplicates in their original positions. The analyzer needs the
// raw multiplicities; everything else parses with Parse.
func ParseRaw(source string) []string {
	var dirs []string
	for _, dir := range strings.Split(source, Separator) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// String joins the list with the separator. An empty list formats to "".
func (l List) String() string {
	return strings.Join(l, Separator)
}

// Contains reports whether dir is already in the list.
func (l List) Contains(dir string) bool {
	for _, d := range l {
		if d == dir {
			return true
		}
	}
	return false
}

// AddUnique appends dir unless it is empty or already present. An existing
// entry keeps its position.
func (l *List) AddUnique(dir string) {
	if dir == "" || l.Contains(dir) {
		return
	}
	*l = append(*l, dir)
}

// AddLast removes any existing occurrence of dir and appends it, so the
// latest mention wins the (back) position.
func (l *List) AddLast(dir string) {
	if dir == "" {
		return
	}
	l.Remove(dir)
	*l = append(*l, dir)
}

// Remove drops every occurrence of dir from the list.
func (l *List) Remove(dir string) {
	kept := (*l)[:0]
	for _, d := range *l {
		if d != dir {
			kept = append(kept, d)
		}
	}
	*l = kept
}

// AddAllUnique inserts each directory with AddUnique semantics.
func (l *List) AddAllUnique(dirs []string) {
	for _, d := range dirs {
		l.AddUnique(d)
	}
}

// AddAllLast inserts each directory with AddLast semantics.
func (l *List) AddAllLast(dirs []string) {
	for _, d := range dirs {
		l.AddLast(d)
	}
}

// ParseAndAddAllLast parses each argument as a colon-delimited path string
// and merges the results with AddLast semantics. Command-line arguments may
// themselves be compound path strings ("a:b c" is three directories).
func (l *List) ParseAndAddAllLast(args []string) {
	for _, arg := range args {
		l.AddAllLast(Parse(arg))
	}
}

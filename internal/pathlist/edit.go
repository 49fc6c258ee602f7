package pathlist

// New builds a list solely from the positional arguments, ignoring the
// current path. Arguments merge left to right with last-wins semantics:
// re-mentioning a directory moves it to the end.
func New(args []string) List {
	var list List
	list.ParseAndAddAllLast(args)
	return list
}

// Add puts the argument directories at the front. The argument-derived
// list is built first (last-wins among arguments), then the surviving
// current-path entries follow in their original order. A current entry
// already present from the arguments is skipped, never moved.
func Add(current List, args []string) List {
	var list List
	list.ParseAndAddAllLast(args)
	list.AddAllUnique(current)
	return list
}

// Append puts the argument directories at the back. Current-path entries
// come first; an argument that duplicates one of them displaces it to the
// end.
func Append(current List, args []string) List {
	var list List
	list.AddAllUnique(current)
	list.ParseAndAddAllLast(args)
	return list
}

// ApplyFilters runs the requested post-processing step over the list.
// Filter takes precedence when both are requested.
func ApplyFilters(list List, filter, normalize bool) List {
	switch {
	case filter:
		return Filter(list)
	case normalize:
		return Normalize(list)
	default:
		return list
	}
}

// Filter keeps only entries that are existing directories. An entry whose
// validity cannot be determined is dropped rather than failing the whole
// cleanup. Uniqueness is re-applied first-wins.
func Filter(list List) List {
	var kept List
	for _, dir := range list {
		if valid, err := IsValidDir(dir); err == nil && valid {
			kept.AddUnique(dir)
		}
	}
	return kept
}

// Normalize replaces every entry with its canonical absolute form,
// dropping entries that are not valid directories or fail to resolve.
// Canonicalization can collapse a symlink and its target into the same
// string, so the first-wins re-dedup here does real work.
func Normalize(list List) List {
	var kept List
	for _, dir := range list {
		canonical, ok, err := Canonicalize(dir)
		if err != nil || !ok {
			continue
		}
		kept.AddUnique(canonical)
	}
	return kept
}

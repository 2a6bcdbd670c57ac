// Package setdiff computes the changes needed to turn one collection into another.
package setdiff

// Diff returns the elements of target missing from base (additions) and the elements of
// base missing from target (removals). Both results keep first-seen order and contain no
// duplicates.
func Diff[T comparable](base, target []T) (additions, removals []T) {
	inBase := toSet(base)
	inTarget := toSet(target)

	additions = missing(target, inBase)
	removals = missing(base, inTarget)
	return additions, removals
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func missing[T comparable](items []T, from map[T]struct{}) []T {
	var out []T
	seen := make(map[T]struct{}, len(items))
	for _, item := range items {
		if _, ok := from[item]; ok {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

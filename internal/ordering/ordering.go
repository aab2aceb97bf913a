// Package ordering holds the pure list computations behind reorder and move
// operations: position values always equal array index, so moving an entity
// is a remove plus a splice followed by renumbering both scopes.
package ordering

// Remove returns ids without id and reports whether it was present. The
// input slice is not modified.
func Remove(ids []string, id string) ([]string, bool) {
	out := make([]string, 0, len(ids))
	found := false
	for _, v := range ids {
		if v == id && !found {
			found = true
			continue
		}
		out = append(out, v)
	}
	return out, found
}

// InsertAt splices id into ids at index. A negative or past-end index
// appends, which is the fallback for stale client state.
func InsertAt(ids []string, id string, index int) []string {
	if index < 0 || index > len(ids) {
		index = len(ids)
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:index]...)
	out = append(out, id)
	out = append(out, ids[index:]...)
	return out
}

// InsertBefore splices id in front of target. When target is absent the id
// is appended at the end.
func InsertBefore(ids []string, id, target string) []string {
	for i, v := range ids {
		if v == target {
			return InsertAt(ids, id, i)
		}
	}
	return InsertAt(ids, id, len(ids))
}

// Move computes the new orderings for moving id from src into dst at index.
// The id is removed from both inputs first, so passing the same scope twice
// (a move within one list) yields a correct destination ordering; src and
// dst may therefore describe the same or different scopes.
func Move(src, dst []string, id string, index int) (newSrc, newDst []string) {
	newSrc, _ = Remove(src, id)
	stripped, _ := Remove(dst, id)
	newDst = InsertAt(stripped, id, index)
	return newSrc, newDst
}

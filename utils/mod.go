package utils

// FindIndex returns the position of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Remove returns a copy of slice without the first element equal to item.
// The input is never modified; ok reports whether item was present.
func Remove[T comparable](slice []T, item T) (rest []T, ok bool) {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice, false
	}
	rest = make([]T, 0, len(slice)-1)
	rest = append(rest, slice[:i]...)
	rest = append(rest, slice[i+1:]...)
	return rest, true
}

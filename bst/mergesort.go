package bst

// MergeSort returns a sorted copy of items, ordered by compare. The sort is
// stable: items that compare equal keep their relative order. It runs in
// O(n log n) time with O(n) auxiliary space and leaves items untouched.
// MergeSort คืนค่าสำเนาของ items ที่เรียงแล้ว (stable)
func MergeSort[T any](items []T, compare func(a, b T) int) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	if len(sorted) < 2 {
		return sorted
	}
	buf := make([]T, len(sorted))
	mergeSort(sorted, buf, compare)
	return sorted
}

// mergeSort sorts items in place using buf (same length) as scratch space.
func mergeSort[T any](items, buf []T, compare func(a, b T) int) {
	if len(items) < 2 {
		return
	}
	mid := len(items) / 2
	mergeSort(items[:mid], buf[:mid], compare)
	mergeSort(items[mid:], buf[mid:], compare)
	merge(items, mid, buf, compare)
}

// merge combines the sorted runs items[:mid] and items[mid:].
func merge[T any](items []T, mid int, buf []T, compare func(a, b T) int) {
	copy(buf, items)

	i, j, k := 0, mid, 0
	for i < mid && j < len(buf) {
		// Take from the right run only when strictly smaller to stay stable.
		if compare(buf[j], buf[i]) < 0 {
			items[k] = buf[j]
			j++
		} else {
			items[k] = buf[i]
			i++
		}
		k++
	}
	k += copy(items[k:], buf[i:mid])
	copy(items[k:], buf[j:])
}

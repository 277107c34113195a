package services

import "sort"

// SplitPreservedPages partitions a template's preserved page list around the
// first gap in the sorted sequence. Pages before the gap are copied ahead of
// the generated content, pages from the gap onward are copied after it. A
// list with no gap keeps every page up front; an empty list keeps none.
//
// The input may be unsorted; it is copied and sorted here. Page numbers are
// 1-based and validated later, at copy time.
func SplitPreservedPages(preserved []int) (before, after []int) {
	if len(preserved) == 0 {
		return nil, nil
	}

	sorted := make([]int, len(preserved))
	copy(sorted, preserved)
	sort.Ints(sorted)

	insertPos := len(sorted)
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i+1]-sorted[i] > 1 {
			insertPos = i + 1
			break
		}
	}

	return sorted[:insertPos], sorted[insertPos:]
}

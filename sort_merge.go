package sortbench

// Merge sorts data with a top-down recursive merge sort using temporary buffers.
//
// Each merge step counts one comparison while both halves still hold elements.
// Every element written back into data counts as one swap, including the ones
// drained after the other half is exhausted, so the swap count equals the number
// of elements merged. Ties take from the left half, which keeps the sort stable.
func Merge[E any](data []E, cmp Compare[E], c *Counter) {
	mergeSort(data, 0, len(data)-1, cmp, c)
}

func mergeSort[E any](data []E, left, right int, cmp Compare[E], c *Counter) {
	if left >= right {
		return
	}
	mid := (left + right) / 2
	mergeSort(data, left, mid, cmp, c)
	mergeSort(data, mid+1, right, cmp, c)
	merge(data, left, mid, right, cmp, c)
}

// merge combines the sorted ranges [left, mid] and [mid+1, right]
func merge[E any](data []E, left, mid, right int, cmp Compare[E], c *Counter) {
	l := make([]E, mid-left+1)
	r := make([]E, right-mid)
	copy(l, data[left:mid+1])
	copy(r, data[mid+1:right+1])

	i, j, k := 0, 0, left
	for i < len(l) && j < len(r) {
		c.Compare()
		if cmp(l[i], r[j]) <= 0 {
			data[k] = l[i]
			i++
		} else {
			data[k] = r[j]
			j++
		}
		c.Swap()
		k++
	}

	for ; i < len(l); i++ {
		data[k] = l[i]
		c.Swap()
		k++
	}

	for ; j < len(r); j++ {
		data[k] = r[j]
		c.Swap()
		k++
	}
}

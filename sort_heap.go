package sortbench

// Heap sorts data in place by building a max-heap and repeatedly moving the root
// behind the shrinking heap.
//
// Every extraction counts one swap unconditionally, including the final one on a
// single element heap, so a slice of length n counts at least n swaps. Sifting
// counts one comparison per child in range and one swap whenever a child is larger
// than its parent.
func Heap[E any](data []E, cmp Compare[E], c *Counter) {
	n := len(data)

	for i := n/2 - 1; i >= 0; i-- {
		heapify(data, n, i, cmp, c)
	}

	for i := n - 1; i >= 0; i-- {
		c.Swap()
		data[0], data[i] = data[i], data[0]
		heapify(data, i, 0, cmp, c)
	}
}

// heapify restores the max-heap property for the subtree rooted at i within data[:n]
func heapify[E any](data []E, n, i int, cmp Compare[E], c *Counter) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n {
			c.Compare()
			if cmp(data[left], data[largest]) > 0 {
				largest = left
			}
		}

		if right < n {
			c.Compare()
			if cmp(data[right], data[largest]) > 0 {
				largest = right
			}
		}

		if largest == i {
			return
		}
		c.Swap()
		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

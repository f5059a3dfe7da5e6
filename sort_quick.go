package sortbench

// Quick sorts data recursively using a Lomuto partition with the last element of
// each range as pivot.
//
// Partitioning counts one comparison per element checked against the pivot and one
// swap every time an element joins the less-or-equal zone, even when it is already
// in place. Placing the pivot always counts one more swap, whether or not it moves.
// These counts are reproducible but larger than the number of physical exchanges.
func Quick[E any](data []E, cmp Compare[E], c *Counter) {
	quickSort(data, 0, len(data)-1, cmp, c)
}

func quickSort[E any](data []E, low, high int, cmp Compare[E], c *Counter) {
	if low >= high {
		return
	}
	p := partition(data, low, high, cmp, c)
	quickSort(data, low, p-1, cmp, c)
	quickSort(data, p+1, high, cmp, c)
}

// partition places data[high] at its final position within [low, high] and returns that index
func partition[E any](data []E, low, high int, cmp Compare[E], c *Counter) int {
	pivot := data[high]
	i := low - 1
	for j := low; j < high; j++ {
		c.Compare()
		if cmp(data[j], pivot) <= 0 {
			i++
			c.Swap()
			data[i], data[j] = data[j], data[i]
		}
	}
	c.Swap()
	data[i+1], data[high] = data[high], data[i+1]
	return i + 1
}

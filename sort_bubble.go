package sortbench

// Bubble sorts data with full adjacent passes and no early exit.
// Every inner iteration counts one comparison, so a slice of length n always costs
// exactly n*(n-1)/2 comparisons. A swap is counted only when the pair is strictly
// out of order.
func Bubble[E any](data []E, cmp Compare[E], c *Counter) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			c.Compare()
			if cmp(data[j], data[j+1]) > 0 {
				c.Swap()
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	}
}

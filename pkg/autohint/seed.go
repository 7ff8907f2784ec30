package autohint

// seedOrder returns the starting order vector. supplied values (if any) are
// kept; every individual left at 0 gets the next rank 1..m of its level, in
// arena order.
func seedOrder(levels [][]int, supplied []int, n int) []int {
	order := make([]int, n)
	copy(order, supplied)
	for _, members := range levels {
		next := 1
		for _, i := range members {
			if order[i] == 0 {
				order[i] = next
				next++
			}
		}
	}
	return order
}

package engine

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// oneOrTwo reports whether |x| is exactly one or two.
func oneOrTwo(x int) bool {
	x = abs(x)
	return x == 1 || x == 2
}

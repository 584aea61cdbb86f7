package combin

// Stirling numbers by their triangular recurrences, with every addition
// and multiplication checked so overflow surfaces as ErrOverflow rather
// than a wrapped value.

// StirlingS1 returns the signed Stirling number of the first kind
// s(n, k): the coefficient of x^k in the falling factorial (x)_n, with
// |s(n, k)| counting permutations of n elements having k cycles.
func StirlingS1(n, k int) (int64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, ErrDomain
	}
	if n == k {
		return 1, nil
	}
	if k == 0 {
		return 0, nil
	}

	// Row-by-row: s(i, j) = s(i-1, j-1) - (i-1)·s(i-1, j).
	prev := make([]int64, k+1)
	row := make([]int64, k+1)
	prev[0] = 1
	for i := 1; i <= n; i++ {
		// Entries beyond the row width stand for s(i, j) = 0, j > i.
		clear(row)
		hi := min(i, k)
		for j := 1; j <= hi; j++ {
			m, err := mulChecked(int64(i-1), prev[j])
			if err != nil {
				return 0, err
			}
			v, err := subChecked(prev[j-1], m)
			if err != nil {
				return 0, err
			}
			row[j] = v
		}
		prev, row = row, prev
	}

	return prev[k], nil
}

// StirlingS2 returns the Stirling number of the second kind S(n, k):
// the number of ways to partition n elements into k non-empty subsets.
func StirlingS2(n, k int) (int64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, ErrDomain
	}
	if n == k {
		return 1, nil
	}
	if k == 0 {
		return 0, nil
	}
	if k == 1 {
		return 1, nil
	}

	// Row-by-row: S(i, j) = j·S(i-1, j) + S(i-1, j-1).
	prev := make([]int64, k+1)
	row := make([]int64, k+1)
	prev[0] = 1
	for i := 1; i <= n; i++ {
		clear(row)
		hi := min(i, k)
		for j := 1; j <= hi; j++ {
			m, err := mulChecked(int64(j), prev[j])
			if err != nil {
				return 0, err
			}
			v, err := addChecked(m, prev[j-1])
			if err != nil {
				return 0, err
			}
			row[j] = v
		}
		prev, row = row, prev
	}

	return prev[k], nil
}

func mulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/a != b {
		return 0, ErrOverflow
	}

	return r, nil
}

func addChecked(a, b int64) (int64, error) {
	r := a + b
	if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
		return 0, ErrOverflow
	}

	return r, nil
}

func subChecked(a, b int64) (int64, error) {
	r := a - b
	if (b < 0 && r < a) || (b > 0 && r > a) {
		return 0, ErrOverflow
	}

	return r, nil
}

package perm

import "permSearch/internal/rng"

// SinglePoint keeps parent1 up to a random interior cut and completes the
// child with the remaining elements in parent2's order.
func SinglePoint(p1, p2 []int, src rng.Source) []int {
	n := len(p1)
	cut := 1
	switch {
	case n > 2:
		// Cut in [1, n-2]: the head is never empty and never the whole parent.
		cut = 1 + src.Intn(n-2)
	case n < 2:
		cut = n
	}

	child := make([]int, 0, n)
	child = append(child, p1[:cut]...)
	taken := marks(n, p1[:cut])
	for _, v := range p2 {
		if !taken[v] {
			child = append(child, v)
		}
	}
	return child
}

// TwoPoint keeps the segment parent1[a:b] at its position and fills the
// positions around it with the remaining elements in parent2's order.
func TwoPoint(p1, p2 []int, src rng.Source) []int {
	n := len(p1)
	if n < 2 {
		return Clone(p1)
	}
	ab := rng.Sample(src, n, 2)
	a, b := ab[0], ab[1]
	if a > b {
		a, b = b, a
	}

	segment := p1[a:b]
	taken := marks(n, segment)
	rest := make([]int, 0, n-len(segment))
	for _, v := range p2 {
		if !taken[v] {
			rest = append(rest, v)
		}
	}

	child := make([]int, 0, n)
	child = append(child, rest[:a]...)
	child = append(child, segment...)
	child = append(child, rest[a:]...)
	return child
}

// Uniform takes each position from parent1 or parent2 by a fair coin, then
// repairs the result: later duplicates are dropped and the missing elements
// are appended in parent1's order.
func Uniform(p1, p2 []int, src rng.Source) []int {
	n := len(p1)
	draft := make([]int, n)
	for i := range draft {
		if src.Intn(2) == 1 {
			draft[i] = p1[i]
		} else {
			draft[i] = p2[i]
		}
	}

	seen := make([]bool, n)
	child := make([]int, 0, n)
	for _, v := range draft {
		if !seen[v] {
			seen[v] = true
			child = append(child, v)
		}
	}
	for _, v := range p1 {
		if !seen[v] {
			seen[v] = true
			child = append(child, v)
		}
	}
	return child
}

// Order is the OX crossover: parent1[a:b] stays in place, the other positions
// are filled cyclically from b with parent2's elements, also read from b.
func Order(p1, p2 []int, src rng.Source) []int {
	n := len(p1)
	if n < 2 {
		return Clone(p1)
	}

	// Random segment [a, b) of non-zero length.
	a := src.Intn(n)
	b := src.Intn(n)
	if a > b {
		a, b = b, a
	}
	if a == b {
		b = (a + 1) % n
		if a > b {
			a, b = b, a
		}
	}

	child := make([]int, n)
	for i := range child {
		child[i] = -1
	}
	taken := make([]bool, n)
	for i := a; i < b; i++ {
		child[i] = p1[i]
		taken[p1[i]] = true
	}

	pos := b % n
	for i := 0; i < n; i++ {
		gene := p2[(b+i)%n]
		if taken[gene] {
			continue
		}
		for child[pos] != -1 {
			pos = (pos + 1) % n
		}
		child[pos] = gene
		taken[gene] = true
	}
	return child
}

func marks(n int, vals []int) []bool {
	m := make([]bool, n)
	for _, v := range vals {
		m[v] = true
	}
	return m
}

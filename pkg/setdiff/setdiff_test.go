package setdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	cases := []struct {
		name      string
		base      []string
		target    []string
		additions []string
		removals  []string
	}{
		{name: "empty"},
		{name: "all new", target: []string{"Jazz", "Blues"}, additions: []string{"Jazz", "Blues"}},
		{name: "all removed", base: []string{"Jazz", "Blues"}, removals: []string{"Jazz", "Blues"}},
		{name: "unchanged", base: []string{"Jazz", "Blues"}, target: []string{"Blues", "Jazz"}},
		{name: "mixed", base: []string{"Jazz", "Folk"}, target: []string{"Folk", "Rock", "Rock"}, additions: []string{"Rock"}, removals: []string{"Jazz"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			additions, removals := Diff(tc.base, tc.target)
			assert.Equal(t, tc.additions, additions)
			assert.Equal(t, tc.removals, removals)
		})
	}
}

func TestDiffInts(t *testing.T) {
	additions, removals := Diff([]int{1, 2, 3}, []int{3, 4})
	assert.Equal(t, []int{4}, additions)
	assert.Equal(t, []int{1, 2}, removals)
}

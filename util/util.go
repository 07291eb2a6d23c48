package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetSortedKeys is GetKeys in ascending order.
func GetSortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) int64 {
	var total int64
	for _, v := range nums {
		total += int64(v)
	}
	return total
}

// Span is max(nums) - min(nums), or zero for an empty slice.
func Span[A constraints.Integer](nums []A) A {
	if len(nums) == 0 {
		return 0
	}
	lo, hi := nums[0], nums[0]
	for _, v := range nums[1:] {
		lo = Min(lo, v)
		hi = Max(hi, v)
	}
	return hi - lo
}

// Permutations calls fn with every ordered selection of k distinct values
// from 0..n-1, in lexicographic order. The slice passed to fn is reused.
func Permutations(n, k int, fn func(perm []int)) {
	if k < 0 || k > n {
		return
	}
	perm := make([]int, k)
	used := make([]bool, n)
	var rec func(depth int)
	rec = func(depth int) {
		if depth == k {
			fn(perm)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			perm[depth] = i
			rec(depth + 1)
			used[i] = false
		}
	}
	rec(0)
}

// GatherMidiPaths expands each path: files are kept as given, directories
// are walked for .mid and .midi files. maxNum caps the result; zero means no
// limit.
func GatherMidiPaths(paths []string, maxNum int) ([]string, error) {
	var res []string
	full := func() bool { return maxNum > 0 && len(res) >= maxNum }
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if !full() {
				res = append(res, path)
			}
			continue
		}
		walk := func(s string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && (strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi")) && !full() {
				res = append(res, s)
			}
			return nil
		}
		if err := filepath.WalkDir(path, walk); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package enumerable

import (
	"cmp"
	"sort"
)

func Filter[T any](slice []T, predicate func(T) bool) []T {
	filtered := make([]T, 0)
	for _, elem := range slice {
		if predicate(elem) {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}

func Map[T, R any](slice []T, mapper func(T) R) []R {
	mapped := make([]R, len(slice))
	for i, elem := range slice {
		mapped[i] = mapper(elem)
	}
	return mapped
}

// Reduce folds slice left to right, stopping at the first error.
func Reduce[T any](slice []T, reducer func(T, T) (T, error)) (T, error) {
	var zero T
	if len(slice) == 0 {
		return zero, nil
	}

	result := slice[0]
	for _, elem := range slice[1:] {
		var err error
		if result, err = reducer(result, elem); err != nil {
			return zero, err
		}
	}
	return result, nil
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

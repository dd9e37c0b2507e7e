package store

import "iter"

// Query decodes the list stored under key and returns the elements matching
// pred, lazily, in stored order. A nil pred matches everything.
//
// The value must decode as a []T; anything else fails with ErrDeserialization.
func Query[T any](s *Store, key string, pred func(T) bool) (iter.Seq[T], error) {
	items, err := Get[[]T](s, key)
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for _, item := range items {
			if pred != nil && !pred(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}, nil
}

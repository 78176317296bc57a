package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, at most one per day.
type History[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Len returns the number of days in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Append records value q on day on. An existing value for that day is
// replaced: the last one wins.
func (h *History[T]) Append(on Date, q T) *History[T] {
	i, found := slices.BinarySearchFunc(h.days, on, compare)
	if found {
		h.values[i] = q
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, q)
	return h
}

// Latest returns the most recent day and its value, or zero values if the
// history is empty.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, value
	}
	return h.days[last], h.values[last]
}

// Values iterates over all day/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

func compare(a, b Date) int { return a.time().Compare(b.time()) }

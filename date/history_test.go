package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Appending in reverse order must keep the history chronological.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("history days = %v want [%v %v]", h.days, d2, d1)
	}
	if h.values[0] != v2 || h.values[1] != v1 {
		t.Errorf("history values = %v want [%v %v]", h.values, v2, v1)
	}
}

func TestAppendReplaces(t *testing.T) {
	h := new(History[float64])
	on := New(2025, 1, 2)
	h.Append(on, 1).Append(on, 2)
	if h.Len() != 1 {
		t.Fatalf("Len() = %v want 1", h.Len())
	}
	if _, v := h.Latest(); v != 2 {
		t.Errorf("Latest() value = %v want 2", v)
	}
}

func TestLatest(t *testing.T) {
	h := new(History[float64])
	if day, v := h.Latest(); !day.IsZero() || v != 0 {
		t.Errorf("empty Latest() = %v, %v want zero values", day, v)
	}
	h.Append(New(2025, 1, 3), 3)
	h.Append(New(2025, 1, 1), 1)
	h.Append(New(2025, 1, 2), 2)

	day, v := h.Latest()
	if day != New(2025, 1, 3) || v != 3 {
		t.Errorf("Latest() = %v, %v want 2025-01-03, 3", day, v)
	}

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("Values() = %v want [1 2 3]", got)
	}
}

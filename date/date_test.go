package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2024, 2, 30), New(2024, 3, 1); got != want {
		t.Errorf("New(2024, 2, 30) = %v, want %v", got, want)
	}
	if got, want := New(2023, 12, 32), New(2024, 1, 1); got != want {
		t.Errorf("New(2023, 12, 32) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2023-01-01", New(2023, 1, 1), false},
		{"2025-7-1", New(2025, 7, 1), false},
		{"1/3/2023", New(2023, 1, 3), false},
		{"01/03/2023", New(2023, 1, 3), false},
		{"Jan 03, 2023", New(2023, 1, 3), false},
		{"2023-06-01T00:00:00Z", New(2023, 6, 1), false},
		{"", Date{}, true},
		{"not a date", Date{}, true},
		{"2023-13-01", Date{}, true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		desc  string
		start Date
		days  int
		end   Date
	}{
		{"zero days noop", New(2014, 5, 9), 0, New(2014, 5, 9)},
		{"crossing a year boundary", New(2014, 12, 31), 1, New(2015, 1, 1)},
		{"negative number of days", New(2015, 1, 1), -1, New(2014, 12, 31)},
		{"full leap year", New(2004, 1, 1), 366, New(2005, 1, 1)},
		{"full non-leap year", New(2001, 1, 1), 365, New(2002, 1, 1)},
	}
	for _, tc := range tests {
		if got := tc.start.Add(tc.days); got != tc.end {
			t.Errorf("[%s] %v.Add(%d) = %v, want %v", tc.desc, tc.start, tc.days, got, tc.end)
		}
		if got := tc.end.DaysSince(tc.start); got != tc.days {
			t.Errorf("[%s] %v.DaysSince(%v) = %d, want %d", tc.desc, tc.end, tc.start, got, tc.days)
		}
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2016, 12, 31), New(2017, 1, 1)
	if !a.Before(b) || a.After(b) || a.Compare(b) != -1 {
		t.Errorf("%v should be before %v", a, b)
	}
	if b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare is not antisymmetric")
	}
}

func TestDays(t *testing.T) {
	var got []Date
	for d := range Days(New(2023, 12, 30), New(2024, 1, 2)) {
		got = append(got, d)
	}
	want := []Date{New(2023, 12, 30), New(2023, 12, 31), New(2024, 1, 1), New(2024, 1, 2)}
	if len(got) != len(want) {
		t.Fatalf("Days() yielded %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	for d := range Days(New(2024, 1, 2), New(2024, 1, 1)) {
		t.Errorf("Days() on an empty range yielded %v", d)
	}

	r := Range{From: New(2024, 1, 1), To: New(2024, 1, 31)}
	if !r.Contains(New(2024, 1, 31)) || r.Contains(New(2024, 2, 1)) {
		t.Errorf("Range.Contains() boundaries are wrong")
	}
	if r.From.Weekday() != time.Monday {
		t.Errorf("2024-01-01 should be a monday")
	}
}

func TestJSON(t *testing.T) {
	d := New(2023, 6, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2023-06-01"` {
		t.Errorf("Marshal() = %s, want %q", data, `"2023-06-01"`)
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("Unmarshal() = %v, want %v", got, d)
	}
}

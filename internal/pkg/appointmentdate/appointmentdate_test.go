package appointmentdate

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	name string
	date string
	has  bool
}

func (r record) AppointmentDate() (string, bool) {
	return r.date, r.has
}

func dated(name, date string) record {
	return record{name: name, date: date, has: true}
}

func undated(name string) record {
	return record{name: name}
}

func names(records []record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.name)
	}
	return out
}

func assertDate(t *testing.T, got time.Time, year int, month time.Month, day int) {
	t.Helper()
	assert.Equal(t, year, got.Year(), "year")
	assert.Equal(t, month, got.Month(), "month")
	assert.Equal(t, day, got.Day(), "day")
}

func TestParse_StructuredPattern(t *testing.T) {
	tests := []struct {
		input string
		year  int
		month time.Month
		day   int
	}{
		{"Monday, 15 Jan 2024", 2024, time.January, 15},
		{"Thursday, 29 Feb 2024", 2024, time.February, 29},
		{"Friday, 31 Dec 2099", 2099, time.December, 31},
		{"Sunday, 1 Jun 2025", 2025, time.June, 1},
		{"Tuesday, 07 Oct 2025", 2025, time.October, 7},
		{"  Wednesday, 3 Sep 2025  ", 2025, time.September, 3},
		{"Monday,15 Jan 2024", 2024, time.January, 15},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, source := ParseResult(tt.input)
			assert.Equal(t, SourcePattern, source)
			assertDate(t, got, tt.year, tt.month, tt.day)
			assert.Equal(t, 0, got.Hour())
			assert.Equal(t, time.Local, got.Location())
		})
	}
}

func TestParse_EveryMonthAbbreviation(t *testing.T) {
	abbreviations := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, abbreviation := range abbreviations {
		month, ok := MonthFromAbbreviation(abbreviation)
		require.True(t, ok, abbreviation)
		assert.Equal(t, time.Month(i+1), month, abbreviation)

		got, source := ParseResult(fmt.Sprintf("Monday, 10 %s 2030", abbreviation))
		assert.Equal(t, SourcePattern, source, abbreviation)
		assertDate(t, got, 2030, time.Month(i+1), 10)
	}
}

func TestMonthFromAbbreviation_RejectsOutsideTable(t *testing.T) {
	for _, input := range []string{"1", "01", "12", "jan", "JAN", "January", "Sept", ""} {
		_, ok := MonthFromAbbreviation(input)
		assert.False(t, ok, input)
	}
}

func TestParse_NumericMonthIsNotAcceptedByPattern(t *testing.T) {
	got, source := ParseResult("Monday, 15 01 2024")
	assert.NotEqual(t, SourcePattern, source)
	if source == SourceEpoch {
		assert.True(t, got.Equal(Epoch()))
	}
}

func TestParse_EmptyReturnsEpoch(t *testing.T) {
	got, source := ParseResult("")
	assert.Equal(t, SourceEpoch, source)
	assertDate(t, got, 1970, time.January, 1)
	assert.True(t, got.Equal(Epoch()))
}

func TestParse_FallbackParser(t *testing.T) {
	tests := []struct {
		input string
		year  int
		month time.Month
		day   int
	}{
		{"2024-01-15", 2024, time.January, 15},
		{"2024-03-05T10:30:00", 2024, time.March, 5},
		{"Mon, 02 Jan 2006 15:04:05 -0700", 2006, time.January, 2},
		{"January 15, 2024", 2024, time.January, 15},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, source := ParseResult(tt.input)
			require.Equal(t, SourceFallback, source)
			local := got.In(time.Local)
			if tt.input == "Mon, 02 Jan 2006 15:04:05 -0700" {
				// the instant is fixed, its local calendar day depends on the zone
				assert.Equal(t, 2006, local.Year())
				return
			}
			assertDate(t, local, tt.year, tt.month, tt.day)
		})
	}
}

func TestParse_MalformedReturnsEpoch(t *testing.T) {
	for _, input := range []string{
		"not a date",
		"Monday, 15 Foo 2024",
		"Monday, 31 Feb 2023",
		"Someday, 99999999999999999999 Jan 2024",
		",,,",
		"Monday,",
		"Monday, 15 Jan 99999999999999999999",
		"Monday, 0 Jan 2024",
	} {
		t.Run(input, func(t *testing.T) {
			assert.NotPanics(t, func() {
				got, source := ParseResult(input)
				assert.Equal(t, SourceEpoch, source)
				assert.True(t, got.Equal(Epoch()))
			})
		})
	}
}

func TestParse_FallbackNeverShiftsTheDay(t *testing.T) {
	for _, input := range []string{
		"Monday ,15 Jan 2024",
		"Monday, 15 Jan 2024 garbage",
		"15 Jan 2024",
	} {
		t.Run(input, func(t *testing.T) {
			got, source := ParseResult(input)
			if source == SourceEpoch {
				assert.True(t, got.Equal(Epoch()))
				return
			}
			assertDate(t, got.In(time.Local), 2024, time.January, 15)
		})
	}
}

func TestParse_OverflowingNumbersArePast(t *testing.T) {
	newYear2024 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	assert.True(t, IsPast("Someday, 99999999999999999999 Jan 2024", newYear2024))
	assert.True(t, IsPast("Monday, 15 Jan 99999999999999999999", newYear2024))
	assert.True(t, IsPast("Monday, 31 Feb 2023", newYear2024))
}

func TestParse_YearNeedsFourDigits(t *testing.T) {
	for _, input := range []string{"Monday, 15 Jan 24", "Monday, 15 Jan 024", "Monday, 15 Jan 20240"} {
		got, source := ParseResult(input)
		assert.Equal(t, SourceEpoch, source, input)
		assert.True(t, got.Equal(Epoch()), input)
	}
}

func TestIsPast(t *testing.T) {
	newYear2024 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	t.Run("empty date is never past", func(t *testing.T) {
		assert.False(t, IsPast("", newYear2024))
		assert.False(t, IsPast("", time.Date(3000, time.January, 1, 0, 0, 0, 0, time.Local)))
	})

	t.Run("old date is past", func(t *testing.T) {
		assert.True(t, IsPast("Monday, 1 Jan 2000", newYear2024))
	})

	t.Run("future date is not past", func(t *testing.T) {
		assert.False(t, IsPast("Friday, 31 Dec 2099", newYear2024))
	})

	t.Run("malformed date degrades to epoch and is past", func(t *testing.T) {
		assert.True(t, IsPast("not a date", newYear2024))
	})

	t.Run("today stays upcoming until the day has ended", func(t *testing.T) {
		today := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local)
		dateString := today.Format(DisplayLayout)

		assert.False(t, IsPast(dateString, today))
		assert.False(t, IsPast(dateString, today.Add(12*time.Hour)))
		assert.False(t, IsPast(dateString, EndOfDay(today)))
		assert.True(t, IsPast(dateString, EndOfDay(today).Add(time.Nanosecond)))
		assert.True(t, IsPast(dateString, today.AddDate(0, 0, 1)))
	})
}

func TestEndOfDay(t *testing.T) {
	got := EndOfDay(time.Date(2024, time.July, 4, 9, 30, 0, 0, time.Local))
	assert.Equal(t, time.Date(2024, time.July, 4, 23, 59, 59, 999000000, time.Local), got)
}

func TestStatusLabel(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, LabelCompleted, StatusLabel("Monday, 1 Jan 2000", now))
	assert.Equal(t, LabelUpcoming, StatusLabel("Friday, 31 Dec 2099", now))
	assert.Equal(t, LabelUpcoming, StatusLabel("", now))
}

func TestCompareDescending(t *testing.T) {
	earlier := dated("earlier", "Monday, 15 Jan 2024")
	later := dated("later", "Friday, 31 Dec 2099")
	broken := dated("broken", "not a date")
	missing := undated("missing")
	blank := dated("blank", "")

	assert.Equal(t, 0, CompareDescending(earlier, earlier))
	assert.Equal(t, -1, CompareDescending(later, earlier))
	assert.Equal(t, 1, CompareDescending(earlier, later))

	assert.Equal(t, 1, CompareDescending(broken, earlier), "epoch sorts last")
	assert.Equal(t, -1, CompareDescending(earlier, broken))

	assert.Equal(t, 0, CompareDescending(missing, earlier))
	assert.Equal(t, 0, CompareDescending(earlier, missing))
	assert.Equal(t, 0, CompareDescending(blank, later))
}

func TestCompareDescending_OrderingProperties(t *testing.T) {
	records := []record{
		dated("a", "Monday, 15 Jan 2024"),
		dated("b", "Friday, 31 Dec 2099"),
		dated("c", "2023-06-01"),
		dated("d", "not a date"),
		dated("e", "Monday, 15 Jan 2024"),
	}

	for _, a := range records {
		assert.Equal(t, 0, CompareDescending(a, a), "irreflexive %s", a.name)
		for _, b := range records {
			assert.Equal(t, -CompareDescending(b, a), CompareDescending(a, b), "antisymmetric %s %s", a.name, b.name)
			for _, c := range records {
				if CompareDescending(a, b) < 0 && CompareDescending(b, c) < 0 {
					assert.Negative(t, CompareDescending(a, c), "transitive %s %s %s", a.name, b.name, c.name)
				}
			}
		}
	}
}

func TestSortDescending(t *testing.T) {
	t.Run("strictly decreasing with stable ties", func(t *testing.T) {
		records := []record{
			dated("jan-first", "Monday, 15 Jan 2024"),
			dated("future", "Friday, 31 Dec 2099"),
			dated("broken", "garbage"),
			dated("jan-second", "Monday, 15 Jan 2024"),
			dated("summer", "Saturday, 1 Jun 2024"),
		}

		SortDescending(records)

		assert.Equal(t, []string{"future", "summer", "jan-first", "jan-second", "broken"}, names(records))
	})

	t.Run("undated records keep their positions", func(t *testing.T) {
		records := []record{
			undated("none-1"),
			dated("old", "Monday, 1 Jan 2000"),
			dated("blank", ""),
			dated("new", "Friday, 31 Dec 2099"),
			undated("none-2"),
		}

		SortDescending(records)

		assert.Equal(t, []string{"none-1", "new", "blank", "old", "none-2"}, names(records))
	})

	t.Run("empty and single", func(t *testing.T) {
		var empty []record
		assert.NotPanics(t, func() { SortDescending(empty) })

		single := []record{dated("only", "Monday, 1 Jan 2000")}
		SortDescending(single)
		assert.Equal(t, []string{"only"}, names(single))
	})
}

func TestSortAscending(t *testing.T) {
	records := []record{
		dated("future", "Friday, 31 Dec 2099"),
		dated("summer", "Saturday, 1 Jun 2024"),
		undated("none"),
		dated("jan", "Monday, 15 Jan 2024"),
	}

	SortAscending(records)

	assert.Equal(t, []string{"jan", "summer", "none", "future"}, names(records))
}

func TestConcurrentUse(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, IsPast("Monday, 1 Jan 2000", now))
			assert.False(t, IsPast("Friday, 31 Dec 2099", now))
			assertDate(t, Parse("Monday, 15 Jan 2024"), 2024, time.January, 15)
		}()
	}
	wg.Wait()
}

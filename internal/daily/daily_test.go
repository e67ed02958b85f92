package daily

import (
	"strconv"
	"testing"
	"time"
)

type fixedList []string

func (f fixedList) Len() int        { return len(f) }
func (f fixedList) At(i int) string { return f[i%len(f)] }

// indexList answers At with the index it was asked for.
type indexList int

func (n indexList) Len() int        { return int(n) }
func (n indexList) At(i int) string { return strconv.Itoa(i) }

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01 19:00 UTC
	if got := DateKey(ts); got != "2026-03-01" {
		t.Errorf("DateKey = %q", got)
	}
}

func TestWord(t *testing.T) {
	l := fixedList{"CRANE", "PLANT", "SLATE"}
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	date, w := Word(l, day, "salt")
	if date != "2026-10-19" {
		t.Errorf("date = %q", date)
	}
	found := false
	for _, x := range l {
		found = found || x == w
	}
	if !found {
		t.Errorf("word %q not from the list", w)
	}
}

func TestWordStableWithinDay(t *testing.T) {
	l := indexList(217)
	morning := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	evening := morning.Add(22 * time.Hour)
	_, a := Word(l, morning, "salt")
	_, b := Word(l, evening, "salt")
	if a != b {
		t.Errorf("same day gave %q and %q", a, b)
	}
}

func TestWordVariesWithSaltAndDay(t *testing.T) {
	l := indexList(1000)
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	bySalt := map[string]bool{}
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		_, w := Word(l, day, s)
		bySalt[w] = true
	}
	if len(bySalt) < 2 {
		t.Errorf("salt has no effect on the word")
	}

	byDay := map[string]bool{}
	for i := 0; i < 8; i++ {
		_, w := Word(l, day.AddDate(0, 0, i), "salt")
		byDay[w] = true
	}
	if len(byDay) < 2 {
		t.Errorf("date has no effect on the word")
	}
}

func TestWordEmptyList(t *testing.T) {
	date, w := Word(fixedList{}, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), "salt")
	if date != "2026-10-19" || w != "" {
		t.Errorf("Word on empty list = %q, %q", date, w)
	}
}

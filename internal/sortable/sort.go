// Package sortable implements the sorting used by table views: numeric
// fields compare numerically, ISO dates as dates, other strings with
// pt-BR collation, and repeated sorting on the same key cycles through
// ascending, descending and unsorted.
package sortable

import (
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the sort direction of a table column.
type Direction string

const (
	None       Direction = "none"
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection parses a query parameter into a Direction,
// defaulting to None.
func ParseDirection(s string) Direction {
	switch Direction(s) {
	case Ascending, Descending:
		return Direction(s)
	default:
		return None
	}
}

// Next returns the direction after one more request on the same key:
// asc -> desc -> none -> asc.
func (d Direction) Next() Direction {
	switch d {
	case None:
		return Ascending
	case Ascending:
		return Descending
	default:
		return None
	}
}

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Sort returns a sorted copy of rows, ordered by the field whose json tag
// equals key. The input is never mutated; with direction None (or an
// unknown key) the copy keeps the original order.
//
// Nulls sort before all values in ascending order and after them in
// descending order. The sort is stable.
func Sort[T any](rows []T, key string, direction Direction) []T {
	out := slices.Clone(rows)

	if direction == None || key == "" {
		return out
	}

	// Collators are not safe for concurrent use, so each call gets its own.
	collator := collate.New(language.BrazilianPortuguese, collate.Numeric, collate.IgnoreCase)

	sort.SliceStable(out, func(i, j int) bool {
		a, okA := fieldByJSONTag(reflect.ValueOf(out[i]), key)
		b, okB := fieldByJSONTag(reflect.ValueOf(out[j]), key)
		if !okA || !okB {
			return false
		}

		c := compare(collator, a, b)
		if direction == Descending {
			return c > 0
		}
		return c < 0
	})

	return out
}

// fieldByJSONTag finds the struct field carrying the json tag, descending
// into embedded structs.
func fieldByJSONTag(v reflect.Value, tag string) (reflect.Value, bool) {
	v = reflect.Indirect(v)
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Anonymous {
			if inner, ok := fieldByJSONTag(v.Field(i), tag); ok {
				return inner, true
			}
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" {
			name = field.Name
		}

		if name == tag {
			return v.Field(i), true
		}
	}

	return reflect.Value{}, false
}

// compare orders two field values. Nil values order before everything
// else; otherwise the comparison depends on the value type.
func compare(collator *collate.Collator, a, b reflect.Value) int {
	aNil := isNil(a)
	bNil := isNil(b)

	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	case bNil:
		return 1
	}

	a = reflect.Indirect(a)
	b = reflect.Indirect(b)

	switch av := a.Interface().(type) {
	case decimal.Decimal:
		return av.Cmp(b.Interface().(decimal.Decimal))
	case time.Time:
		return av.Compare(b.Interface().(time.Time))
	}

	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmpOrdered(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmpOrdered(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmpOrdered(a.Float(), b.Float())
	case reflect.Bool:
		return cmpOrdered(boolToInt(a.Bool()), boolToInt(b.Bool()))
	case reflect.String:
		return compareStrings(collator, a.String(), b.String())
	default:
		return 0
	}
}

// compareStrings compares two strings, as dates when both look like
// YYYY-MM-DD and with locale collation otherwise.
func compareStrings(collator *collate.Collator, a, b string) int {
	if isoDate.MatchString(a) && isoDate.MatchString(b) {
		dateA, errA := time.Parse(time.DateOnly, a)
		dateB, errB := time.Parse(time.DateOnly, b)
		if errA == nil && errB == nil {
			return dateA.Compare(dateB)
		}
	}

	return collator.CompareString(a, b)
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

func cmpOrdered[T int64 | uint64 | float64 | int](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

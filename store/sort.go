package store

import (
	"sort"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortSpec is a field name with an optional leading '-' for descending order.
func parseSortSpec(spec string) (field string, desc bool) {
	if strings.HasPrefix(spec, "-") {
		return spec[1:], true
	}
	return spec, false
}

// sortRecords orders recs by the given spec. Fields whose name contains
// "date" compare as parsed timestamps, numbers numerically and strings with
// locale-aware collation. The sort is stable; an empty spec keeps insertion
// order.
func sortRecords[T any](recs []T, spec string, field func(*T, string) (any, bool)) {
	if spec == "" {
		return
	}
	name, desc := parseSortSpec(spec)
	coll := collate.New(language.English, collate.Loose)

	sort.SliceStable(recs, func(i, j int) bool {
		av, aok := field(&recs[i], name)
		bv, bok := field(&recs[j], name)
		if !aok || !bok {
			return false
		}
		c := compareValues(av, bv, name, coll)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareValues(a, b any, fieldName string, coll *collate.Collator) int {
	if strings.Contains(fieldName, "date") {
		at, aerr := dateparse.ParseAny(cast.ToString(a))
		bt, berr := dateparse.ParseAny(cast.ToString(b))
		if aerr == nil && berr == nil {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	}

	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return coll.CompareString(as, bs)
	}

	af, aerr := cast.ToFloat64E(a)
	bf, berr := cast.ToFloat64E(b)
	if aerr == nil && berr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	return 0
}

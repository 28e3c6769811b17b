package kpi

import (
	"fmt"
	"sort"
	"time"
)

// Bucket keys are formatted so that lexicographic order matches
// chronological order; series builders rely on that to sort trends.

func yearKey(t time.Time) string {
	return fmt.Sprintf("%04d", t.Year())
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func quarterKey(t time.Time) string {
	quarter := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("%04d-Q%d", t.Year(), quarter)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

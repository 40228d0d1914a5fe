package projection

import (
	"sort"
	"strings"

	"github.com/balkashynov/myday/internal/models"
)

// match ranks, best first
const (
	rankExact = iota
	rankPrefix
	rankSuffix
	rankContains
	rankNone
)

// Search returns the tasks whose title, notes or step titles match query,
// case insensitive. Exact matches come first, then prefix, suffix and
// substring matches; ties keep collection order.
func Search(tasks []models.Task, query string) []models.Task {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	type hit struct {
		task models.Task
		rank int
	}
	var hits []hit
	for _, t := range tasks {
		best := rankOf(t.Title, query)
		if r := rankOf(t.Notes, query); r < best {
			best = r
		}
		for _, s := range t.Steps {
			if r := rankOf(s.Title, query); r < best {
				best = r
			}
		}
		if best != rankNone {
			hits = append(hits, hit{task: t, rank: best})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	out := make([]models.Task, len(hits))
	for i, h := range hits {
		out[i] = h.task
	}
	return out
}

func rankOf(field, query string) int {
	field = strings.ToLower(field)
	switch {
	case field == "":
		return rankNone
	case field == query:
		return rankExact
	case strings.HasPrefix(field, query):
		return rankPrefix
	case strings.HasSuffix(field, query):
		return rankSuffix
	case strings.Contains(field, query):
		return rankContains
	}
	return rankNone
}

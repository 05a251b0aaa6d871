// Package ranker orders the heterogeneous result sets produced by each
// omnibar mode: fuzzy scoring for Apps, a fixed default order for the
// empty query, directory-first ordering for Files, and passthrough for
// modes whose natural enumeration order is already the desired order.
package ranker

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/leechristophermurray/launch/internal/model"
)

// RankApps fuzzy-scores apps against query by Name only (per the source
// policy recorded in DESIGN.md), drops non-matches, and sorts by score
// descending with a lexicographic tie-break on name.
func RankApps(query string, apps []model.Application) []model.Application {
	if query == "" {
		return RankEmptyDefault(apps)
	}

	names := make([]string, len(apps))
	for i, a := range apps {
		names[i] = a.Name
	}
	matches := fuzzy.Find(query, names)

	type scored struct {
		app   model.Application
		score int
	}
	out := make([]scored, 0, len(matches))
	for _, m := range matches {
		out = append(out, scored{app: apps[m.Index], score: m.Score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].app.Name < out[j].app.Name
	})

	result := make([]model.Application, len(out))
	for i, s := range out {
		result[i] = s.app
	}
	return result
}

// RankEmptyDefault orders apps by running desc, then name asc — the
// default presented for an empty query.
func RankEmptyDefault(apps []model.Application) []model.Application {
	out := make([]model.Application, len(apps))
	copy(out, apps)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Running != out[j].Running {
			return out[i].Running
		}
		return out[i].Name < out[j].Name
	})
	return out
}

const filesModeLimit = 20

// FileEntry is the minimal shape ranker needs from a filesystem listing;
// internal/omnibar supplies these from ports.FileEntry.
type FileEntry struct {
	Name  string
	IsDir bool
}

// RankFiles orders directories before files, ascending by name within
// each group, truncated to the top 20.
func RankFiles(entries []FileEntry) []FileEntry {
	out := make([]FileEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDir != out[j].IsDir {
			return out[i].IsDir
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > filesModeLimit {
		out = out[:filesModeLimit]
	}
	return out
}

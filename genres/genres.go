// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package genres

import (
	"sort"
	"strings"

	"github.com/danielhkuo/next-chapter/models"
)

// keywords maps genres to title/author fragments that hint at them.
// Tuned against the club's actual pool; intentionally loose.
var keywords = map[string][]string{
	"Fantasy": {"magic", "dragon", "wizard", "witch", "fantasy", "realm", "enchant",
		"sorcerer", "fae", "basilisk", "alchemy", "bewitched"},
	"Science Fiction":      {"sci-fi", "space", "station", "future", "atmosphere", "mistborn"},
	"Mystery":              {"murder", "detective", "clue", "mystery", "suspect", "investigation"},
	"Thriller":             {"dark", "lies", "lying", "secret", "shadow", "vanishing"},
	"Historical Fiction":   {"war", "empire", "history", "lessons", "past", "raven scholar"},
	"Contemporary Fiction": {"modern", "contemporary", "never told you", "lovers", "beauty"},
	"Romance":              {"love", "kiss", "heart", "lovers", "mate"},
	"Horror":               {"horror", "dark", "blood", "death", "damned"},
	"Literary Fiction":     {"picture", "dorian", "kafka", "steinbeck", "wilde"},
	"Non-Fiction":          {"advice", "unsolicited", "lessons"},
}

// Suggest guesses a genre from keywords in the title and author. Returns
// GenreUnspecified when nothing matches. Ties break toward the genre
// with the most keyword hits; equal hit counts break alphabetically so
// suggestions are deterministic.
func Suggest(title, author string) string {
	combined := strings.ToLower(title) + " " + strings.ToLower(author)

	best := models.GenreUnspecified
	bestHits := 0
	for genre, words := range keywords {
		hits := 0
		for _, word := range words {
			if strings.Contains(combined, word) {
				hits++
			}
		}
		if hits > bestHits || (hits == bestHits && hits > 0 && genre < best) {
			best = genre
			bestHits = hits
		}
	}

	return best
}

// Known reports whether a genre is in the keyword table, which doubles
// as the club's standard genre list.
func Known(genre string) bool {
	_, ok := keywords[genre]
	return ok
}

// Standard returns the standard genre list in sorted order.
func Standard() []string {
	list := make([]string, 0, len(keywords))
	for genre := range keywords {
		list = append(list, genre)
	}
	sort.Strings(list)
	return list
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package recommender

import (
	"math"
	"sort"

	"github.com/danielhkuo/next-chapter/models"
)

// Filter and scoring policy constants.
const (
	// RecentGenreWindow is how many of the most recent picks have their
	// genre excluded from the next round.
	RecentGenreWindow = 2

	// DefaultTopN is the shortlist length when the caller does not ask
	// for a specific one.
	DefaultTopN = 10

	// NeutralScore is the sub-score used when an input collection is
	// empty and the factor has nothing to measure.
	NeutralScore = 50.0
)

// Diversity bonus tiers: picks since the candidate's genre last appeared.
const (
	diversityFarThreshold = 5
	diversityMidThreshold = 3

	diversityFarScore  = 100.0
	diversityMidScore  = 70.0
	diversityNearScore = 0.0
)

// Pages of distance from the ideal length per point of penalty.
const lengthPenaltyDivisor = 5.0

// Snapshot is a point-in-time view of the club's data. The engine only
// reads it; callers are responsible for fetching all fields from the same
// consistent state.
type Snapshot struct {
	Books        []models.Book
	Members      []models.Member
	History      []models.HistoryEntry
	Vetoes       []string
	CurrentRound int
}

// Recommend filters the pool, scores every eligible book, and returns the
// top N sorted by score descending. Ties keep pool order. Returns an empty
// slice when nothing is eligible; that is a valid outcome, not an error.
func Recommend(snap Snapshot, weights Weights, topN int) []models.Recommendation {
	if topN <= 0 {
		topN = DefaultTopN
	}

	eligible := ApplyHardConstraints(snap.Books, snap.History, snap.Vetoes)

	recs := make([]models.Recommendation, 0, len(eligible))
	for _, book := range eligible {
		score, breakdown := ScoreBook(book, snap.Members, snap.History, weights)
		recs = append(recs, models.Recommendation{
			Book:      book,
			Score:     score,
			Breakdown: breakdown,
		})
	}

	// Stable sort so tied books keep their pool order
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > topN {
		recs = recs[:topN]
	}

	return recs
}

// ApplyHardConstraints removes books that violate must-have rules:
//
//  1. Already read, in any round
//  2. Same genre as one of the last RecentGenreWindow picks
//  3. Genre vetoed for the current round
//
// Pool order is preserved among survivors.
func ApplyHardConstraints(pool []models.Book, history []models.HistoryEntry, vetoes []string) []models.Book {
	readIDs := make(map[string]bool, len(history))
	for _, entry := range history {
		readIDs[entry.BookID] = true
	}

	recentGenres := make(map[string]bool, RecentGenreWindow)
	for _, entry := range lastN(history, RecentGenreWindow) {
		recentGenres[entry.Genre] = true
	}

	vetoedGenres := make(map[string]bool, len(vetoes))
	for _, genre := range vetoes {
		vetoedGenres[genre] = true
	}

	eligible := make([]models.Book, 0, len(pool))
	for _, book := range pool {
		if readIDs[book.ID] {
			continue
		}
		if recentGenres[book.Genre] {
			continue
		}
		if vetoedGenres[book.Genre] {
			continue
		}
		eligible = append(eligible, book)
	}

	return eligible
}

// ScoreBook computes the weighted score for a single book. The total is
// rounded to 2 decimal places; the breakdown carries the raw sub-scores,
// each in [0, 100].
func ScoreBook(book models.Book, members []models.Member, history []models.HistoryEntry, weights Weights) (float64, models.ScoreBreakdown) {
	breakdown := models.ScoreBreakdown{
		GenreMatch:        genreMatchScore(book, members),
		LengthFit:         lengthFitScore(book, members),
		SuggesterInterest: suggesterInterestScore(book),
		DiversityBonus:    diversityBonusScore(book, history),
	}

	total := weights.GenreMatch*breakdown.GenreMatch +
		weights.LengthFit*breakdown.LengthFit +
		weights.SuggesterInterest*breakdown.SuggesterInterest +
		weights.DiversityBonus*breakdown.DiversityBonus

	return round2(total), breakdown
}

// GenresFromPool returns the sorted set of distinct genres in the pool.
func GenresFromPool(pool []models.Book) []string {
	seen := make(map[string]bool)
	genres := []string{}
	for _, book := range pool {
		if !seen[book.Genre] {
			seen[book.Genre] = true
			genres = append(genres, book.Genre)
		}
	}
	sort.Strings(genres)
	return genres
}

// genreMatchScore is the share of members whose liked genres include the
// book's genre, scaled to 0-100.
func genreMatchScore(book models.Book, members []models.Member) float64 {
	if len(members) == 0 {
		return NeutralScore
	}

	liked := 0
	for _, member := range members {
		for _, genre := range member.LikedGenres {
			if genre == book.Genre {
				liked++
				break
			}
		}
	}

	return float64(liked) / float64(len(members)) * 100
}

// lengthFitScore penalizes distance from the median preferred length,
// one point per lengthPenaltyDivisor pages, floored at 0.
func lengthFitScore(book models.Book, members []models.Member) float64 {
	if len(members) == 0 {
		return NeutralScore
	}

	lengths := make([]int, len(members))
	for i, member := range members {
		lengths[i] = member.PreferredLength
	}
	sort.Ints(lengths)

	var ideal float64
	n := len(lengths)
	if n%2 == 0 {
		ideal = float64(lengths[n/2-1]+lengths[n/2]) / 2
	} else {
		ideal = float64(lengths[n/2])
	}

	penalty := math.Abs(float64(book.PageCount)-ideal) / lengthPenaltyDivisor
	return math.Max(0, 100-penalty)
}

// suggesterInterestScore rewards books a member actually asked for over
// house suggestions.
func suggesterInterestScore(book models.Book) float64 {
	if book.SuggestedBy != nil {
		return 100.0
	}
	return NeutralScore
}

// diversityBonusScore rewards genres the club has not picked recently.
// It counts how many picks ago the book's genre last appeared, walking
// history from most recent to oldest, and maps the count onto tiers.
func diversityBonusScore(book models.Book, history []models.HistoryEntry) float64 {
	if len(history) == 0 {
		return diversityFarScore
	}

	picksSince := 0
	found := false
	for _, entry := range sortedByRoundDesc(history) {
		if entry.Genre == book.Genre {
			found = true
			break
		}
		picksSince++
	}
	if !found {
		// Never picked this genre
		return diversityFarScore
	}

	switch {
	case picksSince >= diversityFarThreshold:
		return diversityFarScore
	case picksSince >= diversityMidThreshold:
		return diversityMidScore
	default:
		return diversityNearScore
	}
}

// lastN returns the n most recent history entries, newest first. The
// input may be in any order; recency is re-derived from round numbers.
func lastN(history []models.HistoryEntry, n int) []models.HistoryEntry {
	recent := sortedByRoundDesc(history)
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

// sortedByRoundDesc returns a copy of history ordered newest first.
func sortedByRoundDesc(history []models.HistoryEntry) []models.HistoryEntry {
	sorted := make([]models.HistoryEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RoundNumber > sorted[j].RoundNumber
	})
	return sorted
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

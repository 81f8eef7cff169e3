// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package recommender ranks the book pool for the club's next pick.

The engine is a pure function over a Snapshot: it performs no I/O, holds
no state, and never mutates its inputs. Callers fetch the pool, members,
history, and current-round vetoes as one consistent view and hand it over.

# Two-Stage Process

Hard constraints first, soft scoring second:

 1. ApplyHardConstraints removes books that were already read in any
    round, books in the genres of the last two picks, and books in
    genres vetoed for the current round.
 2. ScoreBook computes four independent 0-100 sub-scores for each
    survivor and combines them with fixed weights.

# Scoring Factors

	Genre Match       (0.40)  share of members who like the genre
	Length Fit        (0.20)  distance from median preferred length,
	                          1 point per 5 pages, floored at 0
	Suggester Interest(0.30)  100 if a member suggested it, else 50
	Diversity Bonus   (0.10)  100 / 70 / 0 by picks since the genre
	                          last appeared (>=5, >=3, <3)

Empty inputs produce neutral 50.0 sub-scores rather than errors, and an
empty eligible set produces an empty result, so "nothing to recommend"
is always a defined value.

# Usage

	recs := recommender.Recommend(snap, recommender.DefaultWeights(), 10)
	for _, rec := range recs {
		fmt.Println(rec.Title, rec.Score, rec.Breakdown)
	}

Weights are injected per call so tests can exercise alternate weight
sets; DefaultWeights is the production configuration and must validate.
*/
package recommender

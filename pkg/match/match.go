// Package match scores catalog titles against a free-form query.
package match

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// Confidence buckets a similarity score.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // score < 0.70
	ConfidenceLow                      // score >= 0.70
	ConfidenceMedium                   // score >= 0.85
	ConfidenceHigh                     // score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Result is a single scored candidate.
type Result struct {
	Title      string
	Score      float64 // Jaro-Winkler similarity (0.0-1.0)
	Confidence Confidence
}

func confidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	}
	return ConfidenceNone
}

// Titles ranks candidates against the query, best first, dropping anything
// below the low-confidence threshold. Jaro-Winkler favors shared prefixes,
// which suits media titles.
func Titles(query string, candidates []string) []Result {
	cleaned := CleanTitle(query)

	var results []Result
	for _, candidate := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(cleaned, CleanTitle(candidate)))
		conf := confidenceFor(score)
		if conf == ConfidenceNone {
			continue
		}
		results = append(results, Result{Title: candidate, Score: score, Confidence: conf})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}

// Best returns the single best match, or a zero Result with ConfidenceNone
// when nothing clears the threshold.
func Best(query string, candidates []string) Result {
	ranked := Titles(query, candidates)
	if len(ranked) == 0 {
		return Result{Confidence: ConfidenceNone}
	}
	return ranked[0]
}

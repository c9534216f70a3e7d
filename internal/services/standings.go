package services

import (
	"sort"
	"strings"

	"github.com/jmcgreevy/mulligan/internal/models"
)

const (
	SortByName   = "name"
	SortByScore  = "score"
	SortByRounds = "rounds"
)

// Standing is one golfer's aggregated result for a year. TotalScore is nil
// when the golfer played no rounds, which renders differently from an
// even-par 0.
type Standing struct {
	Golfer       models.Golfer
	TotalScore   *int
	RoundsPlayed int
	IsActive     bool
	Cabin        *int
}

func IsValidStandingsSort(key string) bool {
	switch key {
	case SortByName, SortByScore, SortByRounds:
		return true
	default:
		return false
	}
}

// ComputeStandings derives the leaderboard for one year from foursome and
// status rows alone; no score is cached anywhere else. Non-admin viewers
// only see golfers with an active status row for the year. Sorting is
// stable, and golfers with no recorded rounds rank behind every scored
// golfer under either direction.
func ComputeStandings(
	year int,
	golfers []models.Golfer,
	foursomes []models.Foursome,
	statuses []models.GolferStatus,
	viewerIsAdmin bool,
	sortKey string,
	descending bool,
) []Standing {
	statusByGolfer := make(map[uint]models.GolferStatus, len(statuses))
	for _, status := range statuses {
		if status.Year == year {
			statusByGolfer[status.GolferID] = status
		}
	}

	standings := make([]Standing, 0, len(golfers))
	for _, golfer := range golfers {
		standing := Standing{Golfer: golfer}

		for _, foursome := range foursomes {
			if foursome.Year != year || !foursome.Includes(golfer.ID) {
				continue
			}
			if standing.TotalScore == nil {
				total := 0
				standing.TotalScore = &total
			}
			*standing.TotalScore += foursome.Score
			standing.RoundsPlayed++
		}

		if status, exists := statusByGolfer[golfer.ID]; exists {
			standing.IsActive = status.IsActive
			standing.Cabin = status.Cabin
		}

		if !viewerIsAdmin && !standing.IsActive {
			continue
		}
		standings = append(standings, standing)
	}

	sortStandings(standings, sortKey, descending)
	return standings
}

func sortStandings(standings []Standing, sortKey string, descending bool) {
	sort.SliceStable(standings, func(i, j int) bool {
		switch sortKey {
		case SortByScore:
			return lessByScore(standings[i], standings[j], descending)
		case SortByRounds:
			if descending {
				return standings[i].RoundsPlayed > standings[j].RoundsPlayed
			}
			return standings[i].RoundsPlayed < standings[j].RoundsPlayed
		default:
			left := strings.ToLower(standings[i].Golfer.Name)
			right := strings.ToLower(standings[j].Golfer.Name)
			if descending {
				return left > right
			}
			return left < right
		}
	})
}

// lessByScore orders nil scores last regardless of direction: a golfer
// with no rounds never outranks one with a recorded score.
func lessByScore(left Standing, right Standing, descending bool) bool {
	if left.TotalScore == nil {
		return false
	}
	if right.TotalScore == nil {
		return true
	}
	if descending {
		return *left.TotalScore > *right.TotalScore
	}
	return *left.TotalScore < *right.TotalScore
}

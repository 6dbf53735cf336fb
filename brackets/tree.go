package brackets

import (
	"sort"
	"strings"

	"bracketpool/models"
)

// RegionKey converts a region display name into the key used to namespace
// bracket views: lower-cased, spaces replaced with underscores.
func RegionKey(region string) string {
	return strings.ToLower(strings.ReplaceAll(region, " ", "_"))
}

// GamesByID indexes a flat game list by game id.
func GamesByID(games []*models.Game) map[int]*models.Game {
	byID := make(map[int]*models.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}
	return byID
}

// GroupByRound partitions games into round buckets, each bucket ordered by
// RoundOrder.
func GroupByRound(games []*models.Game) map[int][]*models.Game {
	rounds := make(map[int][]*models.Game)
	for _, g := range games {
		rounds[g.Round] = append(rounds[g.Round], g)
	}
	for _, bucket := range rounds {
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].RoundOrder < bucket[j].RoundOrder
		})
	}
	return rounds
}

// CompletedByID filters games down to resolved ones, keyed by id.
func CompletedByID(games []*models.Game) map[int]*models.Game {
	completed := make(map[int]*models.Game)
	for _, g := range games {
		if g.Resolved() {
			completed[g.ID] = g
		}
	}
	return completed
}

func sortedRounds(rounds map[int][]*models.Game) []int {
	numbers := make([]int, 0, len(rounds))
	for round := range rounds {
		numbers = append(numbers, round)
	}
	sort.Ints(numbers)
	return numbers
}

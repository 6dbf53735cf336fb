package brackets

import (
	"sort"
	"strings"

	"bracketpool/models"
)

// ScoringTable maps round number to base points for a correct pick. Actual
// points for a pick are base + the picked team's seed, so a correctly
// predicted upset pays out more.
type ScoringTable map[int]int

// DefaultScoring is the pool's standard table.
func DefaultScoring() ScoringTable {
	return ScoringTable{
		1: 1,
		2: 2,
		3: 3,
		4: 4,
		5: 6,
		6: 10,
	}
}

// ComputeScoreboard builds the ranked scoreboard for all users.
//
// Current points sum table[round]+seed over picks matching resolved
// winners, with a per-round breakdown. Maximum points add, for every
// unresolved game the user picked, the same value when the picked team is
// still in the alive set and can still reach that game. Users rank by
// current points descending; ties order by display name ascending so the
// result is deterministic. Max points never affect rank.
func ComputeScoreboard(
	users []*models.User,
	picksByUser map[int]map[int]models.PickedTeam,
	completed map[int]*models.Game,
	allGames []*models.Game,
	table ScoringTable,
	teamNames map[int]string,
) []models.ScoreboardEntry {
	alive := AliveSet(allGames)
	byID := GamesByID(allGames)

	entries := make([]models.ScoreboardEntry, 0, len(users))
	for _, user := range users {
		picks := picksByUser[user.ID]

		entry := models.ScoreboardEntry{
			UserID:              user.ID,
			Username:            titleCase(user.Name),
			RoundScores:         make(map[int]int),
			PredictedFinalScore: user.FinalScore,
		}

		for gameID, pick := range picks {
			game, ok := completed[gameID]
			if !ok {
				continue
			}
			if *game.WinnerID == pick.TeamID {
				points := table[game.Round] + pick.Seed
				entry.CurrentPoints += points
				entry.RoundScores[game.Round] += points
				entry.CorrectPicks++
			}
		}

		remaining := 0
		for _, game := range allGames {
			if game.Resolved() {
				continue
			}
			pick, ok := picks[game.ID]
			if !ok {
				continue
			}
			if alive[pick.TeamID] && CanReach(pick.TeamID, game.ID, byID) {
				remaining += table[game.Round] + pick.Seed
			}
		}
		entry.MaxPoints = entry.CurrentPoints + remaining

		if user.WinnerID != nil {
			if name, ok := teamNames[*user.WinnerID]; ok {
				entry.PredictedChampion = &name
			}
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CurrentPoints != entries[j].CurrentPoints {
			return entries[i].CurrentPoints > entries[j].CurrentPoints
		}
		return entries[i].Username < entries[j].Username
	})

	return entries
}

func titleCase(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

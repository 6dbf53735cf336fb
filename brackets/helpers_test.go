package brackets

import (
	"time"

	"bracketpool/models"
)

func intp(v int) *int { return &v }

var testGameTime = time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)

// miniRegion builds a 4-team single-region bracket: two round 1 games
// feeding one round 2 game. Team ids 1-4, seeds match the ids.
func miniRegion() []*models.Game {
	return []*models.Game{
		{
			ID: 1, Round: 1, RoundOrder: 1, Region: models.RegionSouth, GameTime: testGameTime,
			Team1ID: intp(1), Team2ID: intp(4),
			Team1: &models.Team{ID: 1, Name: "auburn", Seed: 1, Region: models.RegionSouth},
			Team2: &models.Team{ID: 4, Name: "yale", Seed: 4, Region: models.RegionSouth},
		},
		{
			ID: 2, Round: 1, RoundOrder: 2, Region: models.RegionSouth, GameTime: testGameTime,
			Team1ID: intp(2), Team2ID: intp(3),
			Team1: &models.Team{ID: 2, Name: "michigan st", Seed: 2, Region: models.RegionSouth},
			Team2: &models.Team{ID: 3, Name: "iowa st", Seed: 3, Region: models.RegionSouth},
		},
		{
			ID: 3, Round: 2, RoundOrder: 1, Region: models.RegionSouth, GameTime: testGameTime,
			SourceGame1: intp(1), SourceGame2: intp(2),
		},
	}
}

var miniTeamNames = map[int]string{
	1: "auburn",
	2: "michigan st",
	3: "iowa st",
	4: "yale",
}

// eightTeamTree builds a three-round bracket with team ids 1-8 (id doubles
// as the seed): four openers, two semifinals, one final.
func eightTeamTree() []*models.Game {
	return []*models.Game{
		{ID: 1, Round: 1, RoundOrder: 1, Team1ID: intp(1), Team2ID: intp(8)},
		{ID: 2, Round: 1, RoundOrder: 2, Team1ID: intp(4), Team2ID: intp(5)},
		{ID: 3, Round: 1, RoundOrder: 3, Team1ID: intp(3), Team2ID: intp(6)},
		{ID: 4, Round: 1, RoundOrder: 4, Team1ID: intp(2), Team2ID: intp(7)},
		{ID: 5, Round: 2, RoundOrder: 1, SourceGame1: intp(1), SourceGame2: intp(2)},
		{ID: 6, Round: 2, RoundOrder: 2, SourceGame1: intp(3), SourceGame2: intp(4)},
		{ID: 7, Round: 3, RoundOrder: 1, SourceGame1: intp(5), SourceGame2: intp(6)},
	}
}

// resolveGame marks a game finished and propagates the winner into the
// matching child slot, the way the admin flow does against storage.
func resolveGame(games []*models.Game, gameID, winnerID int) {
	byID := GamesByID(games)
	g := byID[gameID]
	g.WinnerID = intp(winnerID)
	for _, child := range games {
		if child.SourceGame1 != nil && *child.SourceGame1 == gameID {
			child.Team1ID = intp(winnerID)
		}
		if child.SourceGame2 != nil && *child.SourceGame2 == gameID {
			child.Team2ID = intp(winnerID)
		}
	}
}

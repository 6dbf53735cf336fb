package brackets

import "bracketpool/models"

// CanReach reports whether teamID can still occupy a slot in the given
// game. Round 1 games answer from their own slots. For later games the team
// must be deliverable through one of the two source games: a resolved
// source delivers exactly its winner, an unresolved source can deliver any
// team that can still reach it. The recursion walks the whole ancestor
// chain, so a team knocked out several rounds back is unreachable even
// while its direct parent game is still open.
func CanReach(teamID, gameID int, games map[int]*models.Game) bool {
	return canReach(teamID, gameID, games, make(map[int]bool))
}

func canReach(teamID, gameID int, games map[int]*models.Game, memo map[int]bool) bool {
	if reachable, ok := memo[gameID]; ok {
		return reachable
	}

	g, ok := games[gameID]
	if !ok {
		return false
	}

	if g.SourceGame1 == nil && g.SourceGame2 == nil {
		reachable := g.HasTeam(teamID)
		memo[gameID] = reachable
		return reachable
	}

	reachable := sourceDelivers(teamID, g.SourceGame1, games, memo) ||
		sourceDelivers(teamID, g.SourceGame2, games, memo)
	memo[gameID] = reachable
	return reachable
}

func sourceDelivers(teamID int, sourceID *int, games map[int]*models.Game, memo map[int]bool) bool {
	if sourceID == nil {
		return false
	}
	src, ok := games[*sourceID]
	if !ok {
		return false
	}
	if src.Resolved() {
		return *src.WinnerID == teamID
	}
	return canReach(teamID, *sourceID, games, memo)
}

// AliveSet scans all games and returns the set of team ids not yet
// eliminated: a team is alive until it appears as the losing slot of a
// resolved game. Used as a cheap pre-filter before CanReach.
func AliveSet(games []*models.Game) map[int]bool {
	alive := make(map[int]bool)
	for _, g := range games {
		if g.Team1ID != nil {
			alive[*g.Team1ID] = true
		}
		if g.Team2ID != nil {
			alive[*g.Team2ID] = true
		}
	}
	for _, g := range games {
		if loser := g.LoserID(); loser != nil {
			delete(alive, *loser)
		}
	}
	return alive
}

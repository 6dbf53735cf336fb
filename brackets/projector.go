package brackets

import (
	"bracketpool/models"
)

// Project materializes one region's bracket for a single user. Rounds are
// processed in ascending order; round 1 already carries concrete teams. For
// every later game each source game's pick flows into the corresponding
// team slot, so the user's bracket reads forward through unplayed rounds.
//
// Once a source game resolves for real, its winner occupies the slot in the
// stored data. The projection then compares the user's pick against it: a
// matching pick marks the slot correct; a wrong pick marks it incorrect,
// keeps the real occupant as actual_* metadata, and leaves the user's pick
// in the display slot. The bracket page shows what the user picked, not
// what happened.
//
// A missing pick for a source game leaves the slot however the stored data
// has it, which for unplayed rounds means empty.
func Project(rounds map[int][]*models.Game, picks map[int]models.PickedTeam, teamNames map[int]string) models.RegionView {
	view := make(models.RegionView, len(rounds))

	for _, round := range sortedRounds(rounds) {
		games := rounds[round]
		views := make([]models.GameView, 0, len(games))

		for _, g := range games {
			gv := NewGameView(g)

			if pick, ok := picks[g.ID]; ok {
				predicted := pick.TeamID
				gv.PredictedWinner = &predicted
			}

			if round != 1 {
				applySourcePick(&gv.Team1, g.SourceGame1, picks, teamNames)
				applySourcePick(&gv.Team2, g.SourceGame2, picks, teamNames)
			}

			views = append(views, gv)
		}
		view[round] = views
	}

	return view
}

// NewGameView copies a game's stored state into its display form, before
// any user-specific projection.
func NewGameView(g *models.Game) models.GameView {
	return models.GameView{
		GameID:     g.ID,
		Round:      g.Round,
		RoundOrder: g.RoundOrder,
		Region:     g.Region,
		GameTime:   g.GameTime,
		Team1:      slotFromGame(g.Team1ID, g.Team1),
		Team2:      slotFromGame(g.Team2ID, g.Team2),
		WinnerID:   g.WinnerID,
	}
}

func slotFromGame(teamID *int, team *models.Team) models.SlotView {
	slot := models.SlotView{TeamID: teamID}
	if team != nil {
		name := team.Name
		seed := team.Seed
		slot.Name = &name
		slot.Seed = &seed
	}
	return slot
}

func applySourcePick(slot *models.SlotView, sourceGame *int, picks map[int]models.PickedTeam, teamNames map[int]string) {
	if sourceGame == nil {
		return
	}
	pick, ok := picks[*sourceGame]
	if !ok {
		return
	}

	pickedID := pick.TeamID
	pickedSeed := pick.Seed
	var pickedName *string
	if name, ok := teamNames[pickedID]; ok {
		pickedName = &name
	}

	if slot.TeamID == nil {
		// Source game unplayed: the pick flows forward into the slot.
		slot.TeamID = &pickedID
		slot.Name = pickedName
		slot.Seed = &pickedSeed
		return
	}

	if *slot.TeamID == pickedID {
		correct := true
		slot.Correct = &correct
		return
	}

	// Wrong pick: keep the real occupant aside, display the pick.
	correct := false
	slot.Correct = &correct
	slot.ActualTeamID = slot.TeamID
	slot.ActualName = slot.Name
	slot.TeamID = &pickedID
	slot.Name = pickedName
	slot.Seed = &pickedSeed
}

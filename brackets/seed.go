package brackets

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"bracketpool/models"
)

const teamsPerRegion = 16

// Canonical round 1 ordering: the 1v16 game sits at the top of the region,
// then 8v9, 5v12, 4v13, 6v11, 3v14, 7v10, 2v15, so winners of adjacent
// games meet in round 2.
var seedToOrder = map[int]int{
	1: 1,
	8: 2,
	5: 3,
	4: 4,
	6: 5,
	3: 6,
	7: 7,
	2: 8,
}

// Which regional champions feed each Final Four bucket.
var finalFourFeeds = map[string][]string{
	models.RegionFinalFourLeft:  {models.RegionSouth, models.RegionWest},
	models.RegionFinalFourRight: {models.RegionMidwest, models.RegionEast},
}

// BuildRoundOne pairs each seeded region's teams 1v16, 2v15, and so on, in
// canonical bracket order. Teams must arrive 16 per region with seeds 1-16.
func BuildRoundOne(teams []*models.Team, gameTime time.Time) ([]*models.Game, error) {
	byRegion := make(map[string][]*models.Team)
	for _, t := range teams {
		byRegion[t.Region] = append(byRegion[t.Region], t)
	}

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	games := make([]*models.Game, 0, len(teams)/2)
	for _, region := range regions {
		regionTeams := byRegion[region]
		if len(regionTeams) != teamsPerRegion {
			return nil, fmt.Errorf("region %s has %d teams, want %d", region, len(regionTeams), teamsPerRegion)
		}
		sort.Slice(regionTeams, func(i, j int) bool {
			return regionTeams[i].Seed < regionTeams[j].Seed
		})

		for i := 0; i < teamsPerRegion/2; i++ {
			top := regionTeams[i]
			bottom := regionTeams[teamsPerRegion-1-i]
			order, ok := seedToOrder[top.Seed]
			if !ok {
				return nil, fmt.Errorf("region %s: unexpected top seed %d", region, top.Seed)
			}

			t1 := top.ID
			t2 := bottom.ID
			games = append(games, &models.Game{
				Round:      1,
				RoundOrder: order,
				Team1ID:    &t1,
				Team2ID:    &t2,
				Region:     region,
				GameTime:   gameTime,
			})
		}
	}

	return games, nil
}

// BuildNextRound wires round games from the previous round's persisted
// games (their ids must already be assigned). Rounds 2-4 pair adjacent
// games inside each region, round 5 merges regional champions into the two
// Final Four buckets, round 6 is the championship.
func BuildNextRound(round int, prev []*models.Game, gameTime time.Time) ([]*models.Game, error) {
	if round < 2 || round > models.FinalRound {
		return nil, fmt.Errorf("round %d out of range", round)
	}
	if len(prev) == 0 || len(prev)%2 != 0 {
		return nil, fmt.Errorf("round %d: previous round has %d games, want a positive even count", round, len(prev))
	}

	groups, err := groupForRound(round, prev)
	if err != nil {
		return nil, err
	}

	var games []*models.Game
	for _, group := range groups {
		for i := 0; i < len(group.games); i += 2 {
			g1 := group.games[i]
			g2 := group.games[i+1]
			s1 := g1.ID
			s2 := g2.ID
			games = append(games, &models.Game{
				Round:       round,
				RoundOrder:  i/2 + 1,
				SourceGame1: &s1,
				SourceGame2: &s2,
				Region:      group.region,
				GameTime:    gameTime,
			})
		}
	}
	return games, nil
}

type roundGroup struct {
	region string
	games  []*models.Game
}

func groupForRound(round int, prev []*models.Game) ([]roundGroup, error) {
	ordered := make([]*models.Game, len(prev))
	copy(ordered, prev)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Region != ordered[j].Region {
			return ordered[i].Region < ordered[j].Region
		}
		return ordered[i].RoundOrder < ordered[j].RoundOrder
	})

	switch {
	case round < 5:
		byRegion := make(map[string][]*models.Game)
		var regions []string
		for _, g := range ordered {
			if _, seen := byRegion[g.Region]; !seen {
				regions = append(regions, g.Region)
			}
			byRegion[g.Region] = append(byRegion[g.Region], g)
		}
		groups := make([]roundGroup, 0, len(regions))
		for _, region := range regions {
			groups = append(groups, roundGroup{region: region, games: byRegion[region]})
		}
		return groups, nil

	case round == 5:
		groups := make([]roundGroup, 0, 2)
		for _, bucket := range []string{models.RegionFinalFourLeft, models.RegionFinalFourRight} {
			var games []*models.Game
			for _, feed := range finalFourFeeds[bucket] {
				for _, g := range ordered {
					if g.Region == feed {
						games = append(games, g)
					}
				}
			}
			if len(games) != 2 {
				return nil, fmt.Errorf("%s: expected 2 regional finals, got %d", bucket, len(games))
			}
			groups = append(groups, roundGroup{region: bucket, games: games})
		}
		return groups, nil

	default:
		if len(ordered) != 2 {
			return nil, errors.New("championship needs exactly the two Final Four games")
		}
		// Left bucket first, regardless of name sort.
		if ordered[0].Region != models.RegionFinalFourLeft {
			ordered[0], ordered[1] = ordered[1], ordered[0]
		}
		return []roundGroup{{region: models.RegionChampionship, games: ordered}}, nil
	}
}

package store

import "github.com/utakatalp/nrr-simulator/internal/league"

// Builtin returns the reference points table the calculator ships with.
// Every call returns fresh values.
func Builtin() []*league.Team {
	return []*league.Team{
		{
			Name: "Chennai Super Kings", Played: 7, Win: 5, Lose: 2, Points: 10, NRR: 0.771,
			RunsFor: 1130, OversFor: league.MustParseOvers("133.1"),
			RunsAgainst: 1071, OversAgainst: league.MustParseOvers("138.5"),
		},
		{
			Name: "Royal Challengers Bangalore", Played: 7, Win: 4, Lose: 3, Points: 8, NRR: 0.597,
			RunsFor: 1217, OversFor: league.MustParseOvers("140"),
			RunsAgainst: 1066, OversAgainst: league.MustParseOvers("131.4"),
		},
		{
			Name: "Delhi Capitals", Played: 7, Win: 4, Lose: 3, Points: 8, NRR: 0.319,
			RunsFor: 1085, OversFor: league.MustParseOvers("126"),
			RunsAgainst: 1136, OversAgainst: league.MustParseOvers("137"),
		},
		{
			Name: "Rajasthan Royals", Played: 7, Win: 3, Lose: 4, Points: 6, NRR: 0.331,
			RunsFor: 1066, OversFor: league.MustParseOvers("128.2"),
			RunsAgainst: 1094, OversAgainst: league.MustParseOvers("137.1"),
		},
		{
			Name: "Mumbai Indians", Played: 8, Win: 2, Lose: 6, Points: 4, NRR: -1.75,
			RunsFor: 1003, OversFor: league.MustParseOvers("155.2"),
			RunsAgainst: 1134, OversAgainst: league.MustParseOvers("138.1"),
		},
	}
}

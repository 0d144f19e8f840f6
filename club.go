package swimrankings

import (
	"context"
	"strconv"

	"github.com/MauroDruwel/Swimrankings/internal/extract"
	"github.com/MauroDruwel/Swimrankings/internal/fetch"
)

// Roster selects which part of a club's athlete list to fetch.
type Roster int

const (
	// RosterCurrent lists only currently active athletes.
	RosterCurrent Roster = iota
	RosterAllMen
	RosterAllWomen
)

// wire values as the site expects them, odd casing included
func (r Roster) wire() string {
	switch r {
	case RosterAllMen:
		return "ALL_MEN"
	case RosterAllWomen:
		return "All_WOMEN"
	default:
		return "CURRENT"
	}
}

// Club reads the ranking pages of one swimming club.
type Club struct {
	ID     int
	client *fetch.Client
}

var clubAthletesSpec = extract.Spec{
	Container: "table.athleteList",
	Row:       "tr.athleteSearch0, tr.athleteSearch1",
	Fields: []extract.Field{
		{Name: "athlete_id", Required: true, Extract: extract.HrefQuery("td.name a", "athleteId")},
		{Name: "athlete_name", Required: true, Extract: extract.Text("td.name a")},
	},
}

// Athletes lists the athletes registered with the club.
func (c *Club) Athletes(ctx context.Context, roster Roster) ([]Record, error) {
	params := fetch.Params{
		"page":          "rankingDetail",
		"clubId":        strconv.Itoa(c.ID),
		"stroke":        "9",
		"athleteGender": roster.wire(),
	}

	doc, err := c.client.Page(ctx, params)
	if err != nil {
		return nil, err
	}
	return extract.Rows(ctx, doc, clubAthletesSpec), nil
}

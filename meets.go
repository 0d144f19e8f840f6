package swimrankings

import (
	"context"

	"github.com/MauroDruwel/Swimrankings/internal/extract"
	"github.com/MauroDruwel/Swimrankings/internal/fetch"
)

// RecentPeriod is the default meet listing period.
const RecentPeriod = "RECENT"

// Meets reads the meetSelect pages: meet listings plus the period and
// nation lookups used to filter them.
type Meets struct {
	client *fetch.Client
}

func lookupParams() fetch.Params {
	return fetch.Params{
		"page":       "meetSelect",
		"nationId":   "0",
		"selectPage": RecentPeriod,
	}
}

var timePeriodsSpec = extract.Spec{
	Container: `select[name="selectPage"]`,
	Row:       "option",
	Fields: []extract.Field{
		// RECENT and BYTYPE are menu modes, not periods
		{Name: "period_id", Required: true, Extract: extract.AttrExcluding("", "value", "RECENT", "BYTYPE")},
		{Name: "period_name", Required: true, Extract: extract.NormalizedText("")},
	},
}

// TimePeriods lists the selectable meet listing periods.
func (m *Meets) TimePeriods(ctx context.Context) ([]Record, error) {
	doc, err := m.client.Page(ctx, lookupParams())
	if err != nil {
		return nil, err
	}
	return extract.Rows(ctx, doc, timePeriodsSpec), nil
}

var nationsSpec = extract.Spec{
	Container: `select[name="nationId"]`,
	Row:       "option",
	Fields: []extract.Field{
		// "$$$" is the all-nations placeholder
		{Name: "nation_id", Required: true, Extract: extract.AttrExcluding("", "value", "$$$")},
		{Name: "nation_name", Required: true, Extract: extract.NormalizedText("")},
	},
}

// Nations lists the selectable nations.
func (m *Meets) Nations(ctx context.Context) ([]Record, error) {
	doc, err := m.client.Page(ctx, lookupParams())
	if err != nil {
		return nil, err
	}
	return extract.Rows(ctx, doc, nationsSpec), nil
}

var meetsListSpec = extract.Spec{
	Container: "table.meetSearch",
	Row:       "tr.meetSearch0, tr.meetSearch1",
	Fields: []extract.Field{
		{Name: "meet_id", Required: true, Extract: extract.HrefQuery("td.city a", "meetId")},
		{Name: "meet_date", Required: true, Extract: extract.NormalizedText("td.date")},
		{Name: "meet_city", Required: true, Extract: extract.NormalizedText("td.city a")},
		{Name: "meet_name", Required: true, Extract: anchorInNthCell("td.name", 1)},
		{Name: "course_length", Required: true, Extract: extract.Text("td.course")},
	},
}

// List lists meets for a period and optionally a nation. An empty
// nationID lists all nations; an empty periodID means RecentPeriod.
func (m *Meets) List(ctx context.Context, nationID, periodID string) ([]Record, error) {
	if periodID == "" {
		periodID = RecentPeriod
	}
	params := fetch.Params{
		"page":       "meetSelect",
		"selectPage": periodID,
	}
	if nationID != "" {
		params["nationId"] = nationID
	}

	doc, err := m.client.Page(ctx, params)
	if err != nil {
		return nil, err
	}
	return extract.Rows(ctx, doc, meetsListSpec), nil
}

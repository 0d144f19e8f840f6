package swimrankings

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/MauroDruwel/Swimrankings/internal/extract"
	"github.com/MauroDruwel/Swimrankings/internal/fetch"
	"github.com/MauroDruwel/Swimrankings/internal/htmlutil"
)

// Meet reads the meetDetail pages of one meet.
type Meet struct {
	ID     int
	client *fetch.Client
}

func (m *Meet) params() fetch.Params {
	return fetch.Params{
		"page":   "meetDetail",
		"meetId": strconv.Itoa(m.ID),
	}
}

var meetClubsSpec = extract.Spec{
	Container: "table.meetSearch",
	Row:       "tr.meetResult0, tr.meetResult1",
	Fields: []extract.Field{
		{Name: "club_id", Required: true, Extract: extract.HrefQuery("td.club a", "clubId")},
		{Name: "club_name", Required: true, Extract: extract.Text("td.club a")},
	},
}

// Clubs lists the clubs that participated in the meet.
func (m *Meet) Clubs(ctx context.Context) ([]Record, error) {
	doc, err := m.client.Page(ctx, m.params())
	if err != nil {
		return nil, err
	}
	return extract.Rows(ctx, doc, meetClubsSpec), nil
}

func eventsSpec(marker, gender string) extract.Spec {
	return extract.Spec{
		Container: fmt.Sprintf(`table.navigation td.navigation:contains(%q)`, marker),
		Row:       "option",
		Fields: []extract.Field{
			// the "0" option is the menu placeholder, not an event
			{Name: "event_id", Required: true, Extract: extract.AttrExcluding("", "value", "0")},
			{Name: "event_gender", Required: true, Extract: extract.Constant(gender)},
			{Name: "event_name", Required: true, Extract: extract.Text("")},
		},
	}
}

var meetEventsMenSpec = func() extract.Spec {
	spec := eventsSpec("Men's events:", "1")
	// :contains matches case-insensitively, so the women's menu matches
	// the men's marker too
	spec.Exclude = `:contains("Women's events:")`
	return spec
}()

var meetEventsWomenSpec = eventsSpec("Women's events:", "2")

// Events lists the events swum at the meet, men's menu first.
func (m *Meet) Events(ctx context.Context) ([]Record, error) {
	doc, err := m.client.Page(ctx, m.params())
	if err != nil {
		return nil, err
	}

	records := extract.Rows(ctx, doc, meetEventsMenSpec)
	return append(records, extract.Rows(ctx, doc, meetEventsWomenSpec)...), nil
}

var meetRacesSpec = extract.Spec{
	Container: "table.meetResult",
	Row:       "tr.meetResultHead",
	Fields: []extract.Field{
		{Name: "race_id", Required: true, Extract: raceNumber},
		{Name: "race_name", Required: true, Extract: extract.NormalizedText("th.event")},
	},
}

// race ids are just the 1-based position of the result table on the page
func raceNumber(i int, _ *goquery.Selection) (any, error) {
	return i + 1, nil
}

func (m *Meet) eventParams(eventID string, gender Gender) fetch.Params {
	params := m.params()
	params["gender"] = gender.wire()
	params["styleId"] = eventID
	return params
}

// Races lists the distinct races (heats, finals, ...) swum for one event.
func (m *Meet) Races(ctx context.Context, eventID string, gender Gender) ([]Record, error) {
	doc, err := m.client.Page(ctx, m.eventParams(eventID, gender))
	if err != nil {
		return nil, err
	}
	return extract.Rows(ctx, doc, meetRacesSpec), nil
}

var splitTimeRegex = regexp.MustCompile(`<td class=\\'split1\\'>(.*?)</td>`)

// split times hide in the onmouseover popup markup of the swim time link
func splitTimes(_ int, row *goquery.Selection) (any, error) {
	anchor := row.Find("td.swimtime a").First()
	if anchor.Length() == 0 {
		return nil, fmt.Errorf("no swim time anchor")
	}
	raw, _ := anchor.Attr("onmouseover")
	matches := splitTimeRegex.FindAllStringSubmatch(raw, -1)
	splits := make([]string, 0, len(matches))
	for _, match := range matches {
		splits = append(splits, match[1])
	}
	return splits, nil
}

// anchorInNthCell targets the anchor of the index-th (zero-based) cell
// matching selector; result rows carry both the athlete and the club in
// cells of the same class.
func anchorInNthCell(selector string, index int) extract.ExtractFunc {
	return func(_ int, row *goquery.Selection) (any, error) {
		anchor := row.Find(selector).Eq(index).Find("a").First()
		if anchor.Length() == 0 {
			return nil, fmt.Errorf("no anchor in %q cell %d", selector, index)
		}
		return htmlutil.CellText(anchor), nil
	}
}

var meetResultsSpec = extract.Spec{
	Container: "table.meetResult",
	Row:       "tr.meetResult0, tr.meetResult1",
	Fields: []extract.Field{
		{Name: "result_id", Required: true, Extract: extract.HrefQuery("td.swimtime a", "id")},
		{Name: "athlete_id", Required: true, Extract: extract.HrefQuery("td.name a", "athleteId")},
		{Name: "name", Required: true, Extract: extract.Text("td.name a")},
		{Name: "club_name", Required: true, Extract: anchorInNthCell("td.name", 1)},
		{Name: "time", Required: true, Extract: extract.Text("td.swimtime a")},
		{Name: "split_times", Required: true, Extract: splitTimes},
	},
}

// Results lists the results of one race of one event. RaceID is the
// 1-based race number as returned by Races; anything below 1 selects
// no race and yields an empty result.
func (m *Meet) Results(ctx context.Context, eventID string, gender Gender, raceID int) ([]Record, error) {
	if raceID < 1 {
		return nil, nil
	}

	doc, err := m.client.Page(ctx, m.eventParams(eventID, gender))
	if err != nil {
		return nil, err
	}

	spec := meetResultsSpec
	spec.Nth = raceID
	return extract.Rows(ctx, doc, spec), nil
}

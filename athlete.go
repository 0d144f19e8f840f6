package swimrankings

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/MauroDruwel/Swimrankings/internal/extract"
	"github.com/MauroDruwel/Swimrankings/internal/fetch"
	"github.com/MauroDruwel/Swimrankings/internal/htmlutil"
	"github.com/MauroDruwel/Swimrankings/internal/swimtime"
)

// AllSeasons requests personal bests across every season.
const AllSeasons = "-1"

// Athlete reads the athleteDetail pages of one athlete.
type Athlete struct {
	ID     int
	client *fetch.Client
}

func (a *Athlete) params() fetch.Params {
	return fetch.Params{
		"page":      "athleteDetail",
		"athleteId": strconv.Itoa(a.ID),
	}
}

var athleteSearchSpec = extract.Spec{
	Container: "table.athleteSearch",
	Row:       "tr.athleteSearch0, tr.athleteSearch1",
	Fields: []extract.Field{
		{Name: "athlete_id", Required: true, Extract: extract.HrefQueryInt("td.name a", "athleteId")},
		{Name: "name", Required: true, Extract: extract.Text("td.name a")},
		{Name: "birth_year", Extract: extract.Text("td.date")},
		{Name: "gender", Extract: genderFromIcon},
		{Name: "country_code", Extract: extract.Text("td.code")},
		{Name: "club_name", Extract: extract.Text("td.club")},
	},
}

func genderFromIcon(_ int, row *goquery.Selection) (any, error) {
	src, ok := row.Find("img").First().Attr("src")
	if !ok {
		return nil, fmt.Errorf("no gender icon")
	}
	if strings.Contains(src, "gender1.png") {
		return "m", nil
	}
	return "f", nil
}

var personalBestsSpec = extract.Spec{
	Container: "table.athleteBest",
	Row:       "tr.athleteBest0, tr.athleteBest1",
	Fields: []extract.Field{
		{Name: "result_id", Required: true, Extract: extract.HrefQueryInt("td.time a, td.swimtimeImportant a", "id")},
		{Name: "event_name", Required: true, Extract: extract.Text("td.event a")},
		{Name: "course_length", Required: true, Extract: extract.Text("td.course")},
		{Name: "time", Required: true, Extract: swimSeconds("td.time a, td.swimtimeImportant a")},
		{Name: "FINA Points", Extract: extract.Text("td.code")},
	},
}

func swimSeconds(selector string) extract.ExtractFunc {
	text := extract.Text(selector)
	return func(i int, row *goquery.Selection) (any, error) {
		value, err := text(i, row)
		if err != nil {
			return nil, err
		}
		return swimtime.Parse(value.(string))
	}
}

// PersonalBests lists the athlete's best time per event and course.
// Season is a year like "2024", or AllSeasons.
func (a *Athlete) PersonalBests(ctx context.Context, season string) ([]Record, error) {
	if season == "" {
		season = AllSeasons
	}
	params := a.params()
	params["pbest"] = season

	doc, err := a.client.Page(ctx, params)
	if err != nil {
		return nil, err
	}
	return extract.Rows(ctx, doc, personalBestsSpec), nil
}

var personalDetailKeys = []string{
	"first_name",
	"last_name",
	"year_of_birth",
	"gender",
	"club_name",
	"country_name",
	"country_code",
}

var personalDetailsSpec = extract.Spec{
	Container: "div#athleteinfo",
	Fields: []extract.Field{
		{Name: "first_name", Required: true, Extract: detailFirstName},
		{Name: "last_name", Required: true, Extract: detailLastName},
		{Name: "year_of_birth", Required: true, Extract: detailYearOfBirth},
		{Name: "gender", Required: true, Extract: detailGender},
		{Name: "club_name", Required: true, Extract: detailClubName},
		{Name: "country_name", Required: true, Extract: detailCountryName},
		{Name: "country_code", Required: true, Extract: detailCountryCode},
	},
}

// the name header reads "LASTNAME, Firstname (1999)"
func detailHeader(row *goquery.Selection) (string, error) {
	sel := row.Find("div#name").First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("no name header")
	}
	return htmlutil.CellText(sel), nil
}

var nonNameChars = regexp.MustCompile(`[0-9()]`)
var nonDigits = regexp.MustCompile(`\D`)

func detailFirstName(_ int, row *goquery.Selection) (any, error) {
	header, err := detailHeader(row)
	if err != nil {
		return nil, err
	}
	parts := strings.SplitN(header, ", ", 2)
	if len(parts) < 2 {
		return nil, fmt.Errorf("malformed name header %q", header)
	}
	return strings.TrimSpace(nonNameChars.ReplaceAllString(parts[1], "")), nil
}

func detailLastName(_ int, row *goquery.Selection) (any, error) {
	header, err := detailHeader(row)
	if err != nil {
		return nil, err
	}
	name, _, found := strings.Cut(header, ",")
	if !found {
		return nil, fmt.Errorf("malformed name header %q", header)
	}
	return name, nil
}

func detailYearOfBirth(_ int, row *goquery.Selection) (any, error) {
	header, err := detailHeader(row)
	if err != nil {
		return nil, err
	}
	year := nonDigits.ReplaceAllString(header, "")
	if year == "" {
		return nil, fmt.Errorf("no birth year in header %q", header)
	}
	return year, nil
}

func detailGender(_ int, row *goquery.Selection) (any, error) {
	src, ok := row.Find("div#name img").First().Attr("src")
	if !ok {
		return nil, fmt.Errorf("no gender icon")
	}
	if src == "images/gender1.png" {
		return "m", nil
	}
	return "f", nil
}

// the nationclub block holds "CCC - Country" right after the first <br>,
// followed by the club name
func detailNationClub(row *goquery.Selection) (nation, club string, err error) {
	sel := row.Find("div#nationclub").First()
	if sel.Length() == 0 {
		return "", "", fmt.Errorf("no nationclub block")
	}
	nation = htmlutil.TextAfterBreak(sel)
	full := htmlutil.CellText(sel)
	if nation == "" || len(full) < len(nation) {
		return "", "", fmt.Errorf("malformed nationclub block %q", full)
	}
	club = strings.TrimSpace(full[len(nation):])
	return nation, club, nil
}

func detailClubName(_ int, row *goquery.Selection) (any, error) {
	_, club, err := detailNationClub(row)
	if err != nil {
		return nil, err
	}
	return club, nil
}

func detailCountryName(_ int, row *goquery.Selection) (any, error) {
	nation, _, err := detailNationClub(row)
	if err != nil {
		return nil, err
	}
	if len(nation) < 6 {
		return nil, fmt.Errorf("malformed nation %q", nation)
	}
	return nation[6:], nil
}

func detailCountryCode(_ int, row *goquery.Selection) (any, error) {
	nation, _, err := detailNationClub(row)
	if err != nil {
		return nil, err
	}
	if len(nation) < 3 {
		return nil, fmt.Errorf("malformed nation %q", nation)
	}
	return nation[:3], nil
}

// PersonalDetails returns the athlete's identity block as a sequence of
// single-key records, in a fixed order.
func (a *Athlete) PersonalDetails(ctx context.Context) ([]Record, error) {
	doc, err := a.client.Page(ctx, a.params())
	if err != nil {
		return nil, err
	}

	records := extract.Rows(ctx, doc, personalDetailsSpec)
	if len(records) == 0 {
		return nil, nil
	}

	details := records[0]
	out := make([]Record, 0, len(personalDetailKeys))
	for _, key := range personalDetailKeys {
		if value, ok := details[key]; ok {
			out = append(out, Record{key: value})
		}
	}
	return out, nil
}

var athleteMeetsSpec = extract.Spec{
	Container: "table.athleteMeet",
	Row:       "tr.athleteMeet0, tr.athleteMeet1",
	Fields: []extract.Field{
		{Name: "meet_id", Required: true, Extract: extract.HrefQueryInt("td.city a", "meetId")},
		{Name: "meet_date", Required: true, Extract: extract.NormalizedText("td.date")},
		{Name: "meet_city", Required: true, Extract: extract.Text("td.city a")},
		{Name: "meet_name", Required: true, Extract: extract.Attr("td.city a", "title")},
	},
}

// Meets lists the meets the athlete has participated in.
func (a *Athlete) Meets(ctx context.Context) ([]Record, error) {
	params := a.params()
	params["athletePage"] = "MEET"

	doc, err := a.client.Page(ctx, params)
	if err != nil {
		return nil, err
	}
	return extract.Rows(ctx, doc, athleteMeetsSpec), nil
}

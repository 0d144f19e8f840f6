package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

var searchSpec = Spec{
	Container: "table.athleteSearch",
	Row:       "tr.athleteSearch0, tr.athleteSearch1",
	Fields: []Field{
		{Name: "athlete_id", Required: true, Extract: HrefQueryInt("td.name a", "athleteId")},
		{Name: "name", Required: true, Extract: Text("td.name a")},
		{Name: "country_code", Extract: Text("td.code")},
	},
}

const searchPage = `
<table class="athleteSearch">
  <tr class="athleteSearchHead"><th>Name</th></tr>
  <tr class="athleteSearch0">
    <td class="name"><a href="?page=athleteDetail&athleteId=100">DOE, John</a></td>
    <td class="code">BEL</td>
  </tr>
  <tr class="athleteSearch1">
    <td class="name"><a href="?page=athleteDetail&athleteId=101">ROE, Jane</a></td>
  </tr>
</table>`

func TestRows(t *testing.T) {
	records := Rows(context.Background(), parse(t, searchPage), searchSpec)

	expected := []Record{
		{"athlete_id": 100, "name": "DOE, John", "country_code": "BEL"},
		{"athlete_id": 101, "name": "ROE, Jane"},
	}
	require.Empty(t, cmp.Diff(expected, records))
}

func TestRowsMissingContainer(t *testing.T) {
	records := Rows(context.Background(), parse(t, `<p>maintenance page</p>`), searchSpec)
	require.Empty(t, records)
}

func TestRowsDropsCorruptRowOnly(t *testing.T) {
	page := `
<table class="athleteSearch">
  <tr class="athleteSearch0">
    <td class="name"><a href="?athleteId=1">FIRST</a></td>
  </tr>
  <tr class="athleteSearch1">
    <td class="name">no anchor so no id</td>
  </tr>
  <tr class="athleteSearch0">
    <td class="name"><a href="?athleteId=3">THIRD</a></td>
  </tr>
</table>`

	records := Rows(context.Background(), parse(t, page), searchSpec)
	require.Len(t, records, 2)
	require.Equal(t, 1, records[0]["athlete_id"])
	require.Equal(t, 3, records[1]["athlete_id"])
}

func TestRowsNthContainer(t *testing.T) {
	page := `
<table class="meetResult"><tr class="r"><td class="v">first</td></tr></table>
<table class="meetResult"><tr class="r"><td class="v">second</td></tr></table>`

	spec := Spec{
		Container: "table.meetResult",
		Nth:       2,
		Row:       "tr.r",
		Fields: []Field{
			{Name: "value", Required: true, Extract: Text("td.v")},
		},
	}

	records := Rows(context.Background(), parse(t, page), spec)
	require.Len(t, records, 1)
	require.Equal(t, "second", records[0]["value"])

	spec.Nth = 5
	require.Empty(t, Rows(context.Background(), parse(t, page), spec))
}

func TestRowsContainerAsRow(t *testing.T) {
	page := `<div id="athleteinfo"><div id="name">DOE, John (1999)</div></div>`
	spec := Spec{
		Container: "div#athleteinfo",
		Fields: []Field{
			{Name: "header", Required: true, Extract: Text("div#name")},
		},
	}

	records := Rows(context.Background(), parse(t, page), spec)
	require.Len(t, records, 1)
	require.Equal(t, "DOE, John (1999)", records[0]["header"])
}

func TestRowsIndexReachesExtractor(t *testing.T) {
	page := `
<table class="meetResult"><tr class="meetResultHead"><th class="event">Heat 1</th></tr></table>
<table class="meetResult"><tr class="meetResultHead"><th class="event">Final</th></tr></table>`

	spec := Spec{
		Container: "table.meetResult",
		Row:       "tr.meetResultHead",
		Fields: []Field{
			{Name: "race_id", Required: true, Extract: func(i int, _ *goquery.Selection) (any, error) {
				return i + 1, nil
			}},
			{Name: "race_name", Required: true, Extract: Text("th.event")},
		},
	}

	records := Rows(context.Background(), parse(t, page), spec)
	require.Len(t, records, 2)
	require.Equal(t, 1, records[0]["race_id"])
	require.Equal(t, "Final", records[1]["race_name"])
}

func TestRowsExcludeContainer(t *testing.T) {
	page := `
<table class="navigation"><tr>
<td class="navigation">Men's events: <select><option value="16">100m Freestyle</option></select></td>
<td class="navigation">Women's events: <select><option value="18">100m Backstroke</option></select></td>
</tr></table>`

	spec := Spec{
		Container: `td.navigation:contains("men's events:")`,
		Exclude:   `:contains("women's events:")`,
		Row:       "option",
		Fields: []Field{
			{Name: "event_id", Required: true, Extract: Attr("", "value")},
		},
	}

	records := Rows(context.Background(), parse(t, page), spec)
	require.Len(t, records, 1)
	require.Equal(t, "16", records[0]["event_id"])
}

func TestAttrExcluding(t *testing.T) {
	page := `<select name="selectPage">
	  <option value="RECENT">Recent</option>
	  <option value="2024">2024</option>
	</select>`

	spec := Spec{
		Container: `select[name="selectPage"]`,
		Row:       "option",
		Fields: []Field{
			{Name: "period_id", Required: true, Extract: AttrExcluding("", "value", "RECENT", "BYTYPE")},
		},
	}

	records := Rows(context.Background(), parse(t, page), spec)
	require.Len(t, records, 1)
	require.Equal(t, "2024", records[0]["period_id"])
}

package swimrankings

import (
	"context"
	"strconv"

	"github.com/MauroDruwel/Swimrankings/internal/fetch"
	"github.com/MauroDruwel/Swimrankings/internal/htmlutil"
)

// Result reads the resultDetail page of one individual result.
type Result struct {
	ID     int
	client *fetch.Client
}

// Time returns the recorded swim time as rendered on the page, or ""
// when the page holds no time cell.
func (r *Result) Time(ctx context.Context) (string, error) {
	params := fetch.Params{
		"page": "resultDetail",
		"id":   strconv.Itoa(r.ID),
	}

	doc, err := r.client.Page(ctx, params)
	if err != nil {
		return "", err
	}

	cell := doc.Find("td.swimtimeLarge").First()
	if cell.Length() == 0 {
		return "", nil
	}
	return htmlutil.CellText(cell), nil
}

package extract

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/MauroDruwel/Swimrankings/internal/htmlutil"
)

// The builders below are the pluggable transforms a Spec is assembled
// from. Each returns an ExtractFunc closed over its selectors; extraction
// errors are reported to the engine, never raised further. An empty
// selector targets the row element itself.

func target(row *goquery.Selection, selector string) *goquery.Selection {
	if selector == "" {
		return row.First()
	}
	return row.Find(selector).First()
}

// Text extracts the trimmed text of the first element matching selector.
func Text(selector string) ExtractFunc {
	return func(_ int, row *goquery.Selection) (any, error) {
		sel := target(row, selector)
		if sel.Length() == 0 {
			return nil, fmt.Errorf("no element matches %q", selector)
		}
		return htmlutil.CellText(sel), nil
	}
}

// NormalizedText is Text with unicode NFKD normalization applied.
func NormalizedText(selector string) ExtractFunc {
	return func(_ int, row *goquery.Selection) (any, error) {
		sel := target(row, selector)
		if sel.Length() == 0 {
			return nil, fmt.Errorf("no element matches %q", selector)
		}
		return htmlutil.NormalizedCellText(sel), nil
	}
}

// Attr extracts the value of attr on the first element matching selector.
func Attr(selector, attr string) ExtractFunc {
	return func(_ int, row *goquery.Selection) (any, error) {
		sel := target(row, selector)
		if sel.Length() == 0 {
			return nil, fmt.Errorf("no element matches %q", selector)
		}
		value, ok := sel.Attr(attr)
		if !ok {
			return nil, fmt.Errorf("element %q has no attribute %q", selector, attr)
		}
		return value, nil
	}
}

// AttrExcluding is Attr, but the listed sentinel values (placeholder
// options and the like) count as extraction failures.
func AttrExcluding(selector, attr string, excluded ...string) ExtractFunc {
	inner := Attr(selector, attr)
	return func(i int, row *goquery.Selection) (any, error) {
		value, err := inner(i, row)
		if err != nil {
			return nil, err
		}
		for _, e := range excluded {
			if value == e {
				return nil, fmt.Errorf("excluded value %q for %q", e, selector)
			}
		}
		return value, nil
	}
}

// HrefQuery extracts a query parameter from the href of the first anchor
// matching selector.
func HrefQuery(selector, key string) ExtractFunc {
	return func(_ int, row *goquery.Selection) (any, error) {
		sel := target(row, selector)
		if sel.Length() == 0 {
			return nil, fmt.Errorf("no element matches %q", selector)
		}
		href, ok := sel.Attr("href")
		if !ok {
			return nil, fmt.Errorf("element %q has no href", selector)
		}
		link, err := url.Parse(href)
		if err != nil {
			return nil, fmt.Errorf("parse href %q: %w", href, err)
		}
		value := link.Query().Get(key)
		if value == "" {
			return nil, fmt.Errorf("href %q has no query parameter %q", href, key)
		}
		return value, nil
	}
}

// HrefQueryInt is HrefQuery converted to an int.
func HrefQueryInt(selector, key string) ExtractFunc {
	inner := HrefQuery(selector, key)
	return func(i int, row *goquery.Selection) (any, error) {
		value, err := inner(i, row)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(value.(string))
		if err != nil {
			return nil, fmt.Errorf("query parameter %q is not a number: %w", key, err)
		}
		return n, nil
	}
}

// Constant always extracts the given value. Used for fields implied by
// which container was selected rather than present in the markup, e.g.
// the gender of an event menu.
func Constant(value any) ExtractFunc {
	return func(int, *goquery.Selection) (any, error) {
		return value, nil
	}
}

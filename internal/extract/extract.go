// Package extract turns semi-structured swimrankings markup into flat
// records. A Spec is pure data: it names the container holding the rows
// of interest, the row selector, and how each field is pulled out of a
// row. The engine never lets a structural mismatch escape as a panic or
// an error; missing structure always means an empty result.
package extract

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("swimrankings/extract")

// Record is a flat field-name to scalar mapping. Optional fields that
// failed to extract are absent, never nil placeholders.
type Record = map[string]any

// ExtractFunc pulls one field value out of a row. The index is the
// position of the row within its container, zero-based.
type ExtractFunc func(index int, row *goquery.Selection) (any, error)

// Field describes one column of the resulting records. A failing
// required field discards its whole row; a failing optional field is
// simply left out of the record.
type Field struct {
	Name     string
	Required bool
	Extract  ExtractFunc
}

// Spec declares where rows live in a document and how to turn each row
// into a Record. Immutable once constructed.
type Spec struct {
	// Container selects the element(s) holding the rows. No match means
	// an empty result.
	Container string
	// Exclude drops container matches that also match this selector.
	// :contains() matches case-insensitively, so "men's events" also
	// matches the women's menu; Exclude is how a spec tells them apart.
	Exclude string
	// Nth narrows Container to a single match, 1-based. Zero keeps all
	// matches.
	Nth int
	// Row selects rows within the container. When empty, each container
	// match is itself a row.
	Row string
	Fields []Field
}

// Rows applies spec to doc, producing records in document order. Rows
// with corrupt required fields are dropped individually; the batch never
// fails as a whole.
func Rows(ctx context.Context, doc *goquery.Document, spec Spec) []Record {
	_, span := tracer.Start(ctx, "Rows")
	defer span.End()

	container := doc.Find(spec.Container)
	if spec.Exclude != "" {
		container = container.Not(spec.Exclude)
	}
	if spec.Nth > 0 {
		container = container.Eq(spec.Nth - 1)
	}
	if container.Length() == 0 {
		span.AddEvent("container not found", trace.WithAttributes(
			attribute.String("selector", spec.Container),
		))
		return nil
	}

	rows := container
	if spec.Row != "" {
		rows = container.Find(spec.Row)
	}

	var records []Record
	dropped := 0
	rows.Each(func(i int, row *goquery.Selection) {
		record := Record{}
		for _, field := range spec.Fields {
			value, err := field.Extract(i, row)
			if err != nil {
				if field.Required {
					dropped++
					span.AddEvent("dropped row", trace.WithAttributes(
						attribute.Int("row", i),
						attribute.String("field", field.Name),
						attribute.String("error", err.Error()),
					))
					return
				}
				continue
			}
			record[field.Name] = value
		}
		records = append(records, record)
	})

	span.SetAttributes(
		attribute.Int("records", len(records)),
		attribute.Int("dropped", dropped),
	)
	return records
}

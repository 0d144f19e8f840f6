// Package swimrankings scrapes structured athlete, club, meet and result
// data out of swimrankings.net, which exposes no API beyond
// server-rendered HTML pages addressed by query parameters. All outbound
// requests share one sliding-window rate limit, and every facade keeps
// the most recently fetched page around so repeated identical queries do
// not cost a network round trip.
package swimrankings

import (
	"context"
	"strconv"
	"time"

	"github.com/MauroDruwel/Swimrankings/internal/extract"
	"github.com/MauroDruwel/Swimrankings/internal/fetch"
)

const DefaultBaseURL = "https://www.swimrankings.net"

const (
	defaultMaxRequests = 15
	defaultWindow      = 30 * time.Second
	defaultMaxAge      = time.Minute
)

// Record is a flat field-name to scalar mapping. Optional fields that
// could not be extracted are absent from the map rather than present
// with a zero value.
type Record = map[string]any

// ErrNoDocument reports that a page could not be fetched at all:
// transport failure, bad status, or an empty response. Structural
// problems inside a fetched page never produce errors, only empty
// results.
var ErrNoDocument = fetch.ErrNoDocument

type Options struct {
	// BaseURL overrides the swimrankings.net endpoint, mostly for tests.
	BaseURL string
	// MaxRequests bounds the outbound request rate: at most MaxRequests
	// within any trailing Window. Zero means the default (15 per 30s);
	// negative values are a configuration error.
	MaxRequests int
	Window      time.Duration
	// MaxAge is how long a cached page satisfies repeated identical
	// queries. Zero means the default (one minute); a negative value
	// disables caching entirely.
	MaxAge time.Duration
	// StaleOnError serves the previously cached page when a refetch
	// fails instead of failing closed.
	StaleOnError bool
}

// Scraper is the entry point. All facades created from one Scraper share
// its request budget; each facade owns its own page cache.
type Scraper struct {
	session    *fetch.Session
	clientOpts fetch.ClientOptions
}

func New(opts Options) (*Scraper, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.MaxRequests == 0 {
		opts.MaxRequests = defaultMaxRequests
	}
	if opts.Window == 0 {
		opts.Window = defaultWindow
	}
	if opts.MaxAge == 0 {
		opts.MaxAge = defaultMaxAge
	}

	session, err := fetch.NewSession(fetch.SessionOptions{
		BaseURL:     opts.BaseURL,
		MaxRequests: opts.MaxRequests,
		Window:      opts.Window,
	})
	if err != nil {
		return nil, err
	}

	return &Scraper{
		session: session,
		clientOpts: fetch.ClientOptions{
			MaxAge:       opts.MaxAge,
			StaleOnError: opts.StaleOnError,
		},
	}, nil
}

type entityOptions struct {
	maxAge    time.Duration
	maxAgeSet bool
	stale     bool
	staleSet  bool
}

// EntityOption overrides the scraper-wide cache policy for one facade.
type EntityOption func(*entityOptions)

func WithMaxAge(d time.Duration) EntityOption {
	return func(o *entityOptions) {
		o.maxAge = d
		o.maxAgeSet = true
	}
}

func WithStaleOnError(enabled bool) EntityOption {
	return func(o *entityOptions) {
		o.stale = enabled
		o.staleSet = true
	}
}

func (s *Scraper) newClient(opts []EntityOption) *fetch.Client {
	var overrides entityOptions
	for _, opt := range opts {
		opt(&overrides)
	}

	cfg := s.clientOpts
	if overrides.maxAgeSet {
		cfg.MaxAge = overrides.maxAge
	}
	if overrides.staleSet {
		cfg.StaleOnError = overrides.stale
	}
	return fetch.NewClient(s.session, cfg)
}

func (s *Scraper) Athlete(id int, opts ...EntityOption) *Athlete {
	return &Athlete{ID: id, client: s.newClient(opts)}
}

func (s *Scraper) Club(id int, opts ...EntityOption) *Club {
	return &Club{ID: id, client: s.newClient(opts)}
}

func (s *Scraper) Meet(id int, opts ...EntityOption) *Meet {
	return &Meet{ID: id, client: s.newClient(opts)}
}

func (s *Scraper) Result(id int, opts ...EntityOption) *Result {
	return &Result{ID: id, client: s.newClient(opts)}
}

func (s *Scraper) Meets(opts ...EntityOption) *Meets {
	return &Meets{client: s.newClient(opts)}
}

// Gender selects one of the gendered result sets.
type Gender int

const (
	GenderAny    Gender = -1
	GenderMale   Gender = 1
	GenderFemale Gender = 2
)

func (g Gender) wire() string {
	if g == 0 {
		g = GenderAny
	}
	return strconv.Itoa(int(g))
}

// SearchFilter narrows an athlete search. The zero value matches any
// club and any gender.
type SearchFilter struct {
	ClubID int
	Gender Gender
}

// SearchAthletes looks up athletes by (last) name. The search uses its
// own fetch client so it leaves no facade cache behind, but it still
// draws from the shared request budget.
func (s *Scraper) SearchAthletes(ctx context.Context, name string, filter SearchFilter, opts ...EntityOption) ([]Record, error) {
	clubID := filter.ClubID
	if clubID == 0 {
		clubID = -1
	}

	params := fetch.Params{
		"internalRequest":   "athleteFind",
		"athlete_clubId":    strconv.Itoa(clubID),
		"athlete_gender":    filter.Gender.wire(),
		"athlete_lastname":  name,
		"athlete_firstname": "",
	}

	doc, err := s.newClient(opts).Page(ctx, params)
	if err != nil {
		return nil, err
	}
	return extract.Rows(ctx, doc, athleteSearchSpec), nil
}

// Package fetch is the rate-limited, cached page fetch layer. A Session
// holds what is shared process-wide (one resty client, one request
// budget); a Client holds what belongs to a single facade instance (the
// single-slot page cache and its staleness policy).
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http/cookiejar"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/MauroDruwel/Swimrankings/internal/ratelimit"
	"github.com/MauroDruwel/Swimrankings/internal/restyutil"
)

var tracer = otel.Tracer("swimrankings/fetch")

// ErrNoDocument is returned when no document could be produced for a
// request: transport failure, bad status, or an empty response body.
var ErrNoDocument = errors.New("no document available")

const pagePath = "/index.php"

// Session is shared by every facade built on one Scraper so the global
// request budget holds no matter how many entity objects exist.
type Session struct {
	Http    *resty.Client
	Limiter *ratelimit.Limiter
}

type SessionOptions struct {
	BaseURL     string
	MaxRequests int
	Window      time.Duration
}

func NewSession(opts SessionOptions) (*Session, error) {
	limiter, err := ratelimit.New(opts.MaxRequests, opts.Window)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, "swimrankings/http")

	return &Session{
		Http:    client,
		Limiter: limiter,
	}, nil
}

type cacheEntry struct {
	params    Params
	doc       *goquery.Document
	fetchedAt time.Time
}

// Client fetches pages through the session's rate limiter and keeps the
// most recent document around. Owned exclusively by one facade instance;
// not safe for concurrent use.
type Client struct {
	session      *Session
	maxAge       time.Duration
	staleOnError bool
	cached       *cacheEntry

	// overridable for tests
	now func() time.Time
}

type ClientOptions struct {
	// MaxAge is how long a cached document satisfies a request for the
	// same params without a network call.
	MaxAge time.Duration
	// StaleOnError serves the previous document when a refetch fails
	// instead of failing closed.
	StaleOnError bool
}

func NewClient(session *Session, opts ClientOptions) *Client {
	return &Client{
		session:      session,
		maxAge:       opts.MaxAge,
		staleOnError: opts.StaleOnError,
		now:          time.Now,
	}
}

// Page returns the current document for params, fetching only when the
// cached one is missing, for different params, or older than MaxAge.
func (c *Client) Page(ctx context.Context, params Params) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "Page")
	defer span.End()

	if c.cached != nil &&
		c.cached.params.Equal(params) &&
		c.now().Sub(c.cached.fetchedAt) <= c.maxAge {
		span.SetStatus(codes.Ok, "CACHE HIT")
		return c.cached.doc, nil
	}

	doc, err := c.fetch(ctx, params)
	if err != nil {
		span.RecordError(err)
		if c.staleOnError && c.cached != nil {
			span.SetStatus(codes.Ok, "STALE ON ERROR")
			slog.WarnContext(ctx, "serving stale document after failed refetch", "err", err)
			return c.cached.doc, nil
		}
		span.SetStatus(codes.Error, "no document")
		return nil, err
	}

	c.cached = &cacheEntry{
		params:    params.Clone(),
		doc:       doc,
		fetchedAt: c.now(),
	}
	return doc, nil
}

func (c *Client) fetch(ctx context.Context, params Params) (*goquery.Document, error) {
	if err := c.session.Limiter.Acquire(ctx); err != nil {
		return nil, err
	}

	res, err := c.session.Http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(pagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDocument, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrNoDocument, res.Status())
	}

	body := res.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrNoDocument)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrNoDocument, err)
	}
	return doc, nil
}

package banner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/EZCampusDevs/dataScraper/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/banner")

// capped page size sent on list endpoints, the api treats it as "all"
const maxPageSize = 9999999

const (
	defaultRetries          = 5
	defaultTimeout          = time.Second * 32
	defaultAuthTTL          = time.Second * 600
	defaultBatchSize        = 150
	defaultTruncationLimit  = 500
	defaultMaxBatchFailures = 5
)

// Profile describes one institution's registration backend. Every
// quirk that used to warrant a per-school subclass lives here as
// data instead.
type Profile struct {
	// human readable institution name, e.g. "Ontario Tech University - Canada"
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
	Hostname  string `json:"hostname"`
	MepCode   string `json:"mep_code"`
	Timezone  string `json:"timezone"`

	// overrides https://<hostname>, used by tests
	BaseUrl string `json:"base_url"`

	// transport retry ceiling, negative retries forever
	Retries *int          `json:"retries"`
	Timeout time.Duration `json:"timeout"`
	AuthTTL time.Duration `json:"auth_ttl"`

	// initial course-code batch size for section fetches
	BatchSize int `json:"batch_size"`
	// the api silently truncates result sets at this count
	TruncationLimit int `json:"truncation_limit"`
	// failed batches tolerated before a term's section fetch is abandoned
	MaxBatchFailures int `json:"max_batch_failures"`
}

func (p Profile) withDefaults() Profile {
	if p.BaseUrl == "" {
		p.BaseUrl = fmt.Sprintf("https://%s", p.Hostname)
	}
	if p.Retries == nil {
		retries := defaultRetries
		p.Retries = &retries
	}
	if p.Timeout <= 0 {
		p.Timeout = defaultTimeout
	}
	if p.AuthTTL <= 0 {
		p.AuthTTL = defaultAuthTTL
	}
	if p.BatchSize <= 0 {
		p.BatchSize = defaultBatchSize
	}
	if p.TruncationLimit <= 0 {
		p.TruncationLimit = defaultTruncationLimit
	}
	if p.MaxBatchFailures <= 0 {
		p.MaxBatchFailures = defaultMaxBatchFailures
	}
	return p
}

// Client talks to one institution's StudentRegistrationSsb endpoints.
// It is not safe for concurrent use, each institution run owns its own
// client (and with it, its own session cookie jar and auth timestamp).
type Client struct {
	profile   Profile
	transport *Transport

	lastTermAuth time.Time
	now          func() time.Time
}

func NewClient(profile Profile) (*Client, error) {
	profile = profile.withDefaults()

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)

	telemetry.InstrumentResty(client, "scrapers/banner/http")

	return &Client{
		profile:   profile,
		transport: NewTransport(client, *profile.Retries, profile.Timeout),
		now:       time.Now,
	}, nil
}

func (c *Client) Profile() Profile {
	return c.profile
}

func (c *Client) endpoint(format string, args ...any) string {
	return c.profile.BaseUrl + fmt.Sprintf(format, args...)
}

// EnsureTermAuth touches the term selection page to keep the
// server-side session alive. The touch is best effort: the timestamp
// advances regardless of response status, a dead session just surfaces
// on the next data call.
func (c *Client) EnsureTermAuth(ctx context.Context, force bool) {
	if !force && c.now().Before(c.lastTermAuth.Add(c.profile.AuthTTL)) {
		return
	}

	slog.InfoContext(ctx, "refreshing term auth", "host", c.profile.Hostname)

	c.transport.Do(ctx, http.MethodGet, c.endpoint(
		"/StudentRegistrationSsb/ssb/term/termSelection?mode=search&mepCode=%s",
		url.QueryEscape(c.profile.MepCode),
	), RequestOptions{Timeout: c.profile.AuthTTL})

	c.lastTermAuth = c.now()
}

// touchTermSession refreshes the term-scoped search session. The api
// ties section search validity to a freshly touched term session, so
// the pager calls this before every batch.
func (c *Client) touchTermSession(ctx context.Context, term string) {
	c.transport.Do(ctx, http.MethodGet, c.endpoint(
		"/StudentRegistrationSsb/ssb/term/search?mode=search&term=%s",
		url.QueryEscape(term),
	), RequestOptions{})
}

// Terms lists the terms the institution reports. Failures are soft:
// a bad status or unreadable body logs a warning and yields nothing.
func (c *Client) Terms(ctx context.Context) []TermEntry {
	ctx, span := tracer.Start(ctx, "Terms")
	defer span.End()

	c.EnsureTermAuth(ctx, false)

	res := c.transport.Do(ctx, http.MethodGet, c.endpoint(
		"/StudentRegistrationSsb/ssb/classSearch/getTerms?searchTerm=&offset=1&max=%d",
		maxPageSize,
	), RequestOptions{})
	if res == nil {
		slog.WarnContext(ctx, "term list request got no response", "host", c.profile.Hostname)
		return nil
	}
	if res.StatusCode() != http.StatusOK {
		slog.WarnContext(ctx, "term list request failed",
			"host", c.profile.Hostname,
			"status", res.StatusCode(),
		)
		return nil
	}

	var terms []TermEntry
	err := json.Unmarshal(res.Body(), &terms)
	if err != nil {
		slog.WarnContext(ctx, "term list was not valid json",
			"host", c.profile.Hostname,
			"err", err,
		)
		return nil
	}
	return terms
}

// CourseCodes lists the subject+course-number combinations offered in
// a term, optionally filtered by a search prefix. Same soft failure
// contract as Terms.
func (c *Client) CourseCodes(ctx context.Context, term, search string) []CourseCodeEntry {
	ctx, span := tracer.Start(ctx, "CourseCodes")
	defer span.End()

	c.EnsureTermAuth(ctx, false)

	res := c.transport.Do(ctx, http.MethodGet, c.endpoint(
		"/StudentRegistrationSsb/ssb/classSearch/get_subjectcoursecombo?searchTerm=%s&term=%s&offset=1&max=%d",
		url.QueryEscape(search), url.QueryEscape(term), maxPageSize,
	), RequestOptions{})
	if res == nil {
		slog.WarnContext(ctx, "course code request got no response", "host", c.profile.Hostname)
		return nil
	}
	if res.StatusCode() != http.StatusOK {
		slog.WarnContext(ctx, "course code request failed",
			"host", c.profile.Hostname,
			"status", res.StatusCode(),
		)
		return nil
	}

	var codes []CourseCodeEntry
	err := json.Unmarshal(res.Body(), &codes)
	if err != nil {
		slog.WarnContext(ctx, "course code list was not valid json",
			"host", c.profile.Hostname,
			"err", err,
		)
		return nil
	}
	return codes
}

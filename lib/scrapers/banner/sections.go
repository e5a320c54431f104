package banner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// ErrBatchExhausted means the batch size halved all the way to zero,
// which can only happen if the truncation limit is misconfigured below
// what a single course code can return. This is a programming error,
// never an environmental one, and must not be swallowed.
var ErrBatchExhausted = errors.New("banner: section batch size halved to zero")

// ErrTooManyFailures aborts the current term's section fetch after the
// retry ceiling is exceeded. Other terms are unaffected.
var ErrTooManyFailures = errors.New("banner: too many section fetch failures")

// SectionPager fetches full section detail records for a term in
// course-code batches, one page per Next call. The api silently caps
// any result set at the profile's truncation limit with no error
// signal, so a page that comes back at or above the limit is assumed
// truncated: the pager halves the batch size and retries the same
// slice instead of advancing. Memory use is bounded by one page.
type SectionPager struct {
	client *Client
	term   string
	codes  []string

	sent     int
	batch    int
	failures int
	done     bool
}

func (c *Client) Sections(term string, codes []string) *SectionPager {
	return &SectionPager{
		client: c,
		term:   term,
		codes:  codes,
		batch:  c.profile.BatchSize,
	}
}

// Next returns the next page of section records, or nil once the code
// list is exhausted. A non-nil error ends the sequence.
func (p *SectionPager) Next(ctx context.Context) ([]SectionRecord, error) {
	ctx, span := tracer.Start(ctx, "SectionPager.Next")
	defer span.End()

	if p.done {
		return nil, nil
	}

	for p.sent < len(p.codes) {
		if p.failures > p.client.profile.MaxBatchFailures {
			p.done = true
			sublist := p.codes[p.sent:min(p.sent+p.batch, len(p.codes))]
			slog.ErrorContext(ctx, "max retries exceeded while fetching section data",
				"term", p.term,
				"sublist", strings.Join(sublist, ","),
			)
			return nil, fmt.Errorf("%w: term %s", ErrTooManyFailures, p.term)
		}

		sublist := p.codes[p.sent:min(p.sent+p.batch, len(p.codes))]
		if len(sublist) == 0 {
			// should be unreachable given the loop guard
			slog.WarnContext(ctx, "course code sublist is empty",
				"sent", p.sent,
				"total", len(p.codes),
			)
			p.failures++
			continue
		}

		span.SetAttributes(
			attribute.Int("batch", p.batch),
			attribute.Int("sent", p.sent),
		)
		slog.DebugContext(ctx, "fetching section data",
			"term", p.term,
			"codes", len(sublist),
		)

		// the api only honours a section search against a freshly
		// touched term session
		p.client.touchTermSession(ctx, p.term)

		res := p.client.transport.Do(ctx, http.MethodGet, p.sectionsUrl(sublist), RequestOptions{})
		if res == nil {
			slog.WarnContext(ctx, "section search got no response, retrying", "term", p.term)
			p.failures++
			continue
		}
		if res.StatusCode() != http.StatusOK {
			slog.WarnContext(ctx, "section search failed, retrying",
				"term", p.term,
				"status", res.StatusCode(),
			)
			p.failures++
			continue
		}

		var result searchResult
		err := json.Unmarshal(res.Body(), &result)
		if err != nil {
			slog.WarnContext(ctx, "section search was not valid json, retrying",
				"term", p.term,
				"err", err,
			)
			p.failures++
			continue
		}
		if len(result.Data) == 0 {
			slog.WarnContext(ctx, "section search succeeded but returned no data, retrying",
				"term", p.term,
			)
			p.failures++
			continue
		}

		if len(result.Data) >= p.client.profile.TruncationLimit {
			// indistinguishable from "that's all there is" without
			// this sentinel check; retry the same slice smaller
			p.batch = p.batch / 2
			slog.WarnContext(ctx, "hit the api truncation point, halving batch size",
				"term", p.term,
				"limit", p.client.profile.TruncationLimit,
				"batch", p.batch,
			)
			if p.batch == 0 {
				p.done = true
				return nil, ErrBatchExhausted
			}
			continue
		}

		p.sent += len(sublist)
		p.failures = 0
		return result.Data, nil
	}

	p.done = true
	return nil, nil
}

func (p *SectionPager) sectionsUrl(sublist []string) string {
	joined := make([]string, len(sublist))
	for i, code := range sublist {
		joined[i] = url.QueryEscape(strings.ToUpper(code))
	}

	return p.client.endpoint(
		"/StudentRegistrationSsb/ssb/searchResults/searchResults?mepCode=%s&txt_term=%s&txt_subjectcoursecombo=%s&pageMaxSize=%d",
		url.QueryEscape(p.client.profile.MepCode),
		url.QueryEscape(p.term),
		strings.Join(joined, "%2C"),
		maxPageSize,
	)
}

// Package catalog runs the full course catalog ingestion pipeline:
// term discovery, course code discovery, adaptive section fetch and
// reconciliation into the store, fanned out across institutions.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/EZCampusDevs/dataScraper/lib/catalogstore"
	"github.com/EZCampusDevs/dataScraper/lib/scrapers/banner"
	"github.com/EZCampusDevs/dataScraper/lib/textutil"
)

var tracer = otel.Tracer("services/catalog")

const defaultWorkers = 5

type Options struct {
	// institutions scraped concurrently, defaults to 5
	Workers int
	// stop after the first page of the first term, used for smoke tests
	DebugBreak bool
	// also scrape the per-section registration restriction fragments,
	// one extra request per section
	FetchRestrictions bool
	// terms with a code below this are skipped; zero derives the
	// cutoff from the current year
	TermCutoff int64
}

// InstitutionResult reports what one institution's run accomplished.
type InstitutionResult struct {
	Profile  banner.Profile
	Terms    int
	Courses  int
	Sections int
	Duration time.Duration
	// terms abandoned after the section fetch failure ceiling;
	// the rest of the institution's terms still ran
	FailedTerms []string
	Err         error
}

type Service struct {
	store *catalogstore.Store
	now   func() time.Time
}

func NewService(database *sql.DB) *Service {
	return &Service{
		store: catalogstore.NewStore(database),
		now:   time.Now,
	}
}

// termCutoff keeps roughly the last two calendar years of terms. Term
// codes are year-prefixed (e.g. 202409), so (year-1)*100 is the first
// code of the previous year.
func termCutoff(now time.Time) int64 {
	return int64(now.Year()-1) * 100
}

// Run scrapes every profile across a bounded worker pool under a
// single scrape generation. Institutions are fully independent, one
// failing never stops the others; per-institution errors come back in
// the results.
func (s *Service) Run(ctx context.Context, profiles []banner.Profile, opts Options) ([]InstitutionResult, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()
	span.SetAttributes(attribute.Int("institutions", len(profiles)))

	gen, err := s.store.NewGeneration(ctx, s.now())
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if opts.TermCutoff == 0 {
		opts.TermCutoff = termCutoff(s.now())
	}

	results := make([]InstitutionResult, len(profiles))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, profile := range profiles {
		wg.Add(1)
		go func(i int, profile banner.Profile) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = s.scrapeInstitution(ctx, gen, profile, opts)
		}(i, profile)
	}
	wg.Wait()

	return results, nil
}

func (s *Service) scrapeInstitution(ctx context.Context, gen catalogstore.Generation, profile banner.Profile, opts Options) (result InstitutionResult) {
	ctx, span := tracer.Start(ctx, "scrapeInstitution")
	defer span.End()
	span.SetAttributes(attribute.String("subdomain", profile.Subdomain))

	start := s.now()
	result.Profile = profile
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("panic: %v", r)
		}
		result.Duration = s.now().Sub(start)
		if result.Err != nil {
			slog.ErrorContext(ctx, "institution scrape failed",
				"subdomain", profile.Subdomain,
				"err", result.Err,
			)
		}
	}()

	client, err := banner.NewClient(profile)
	if err != nil {
		result.Err = err
		return
	}

	schoolID, err := s.store.EnsureSchool(ctx, profile.Name, profile.Subdomain, profile.Timezone)
	if err != nil {
		result.Err = err
		return
	}

	terms := client.Terms(ctx)
	if len(terms) == 0 {
		// discovery failures are soft, an unreachable backend should
		// not flip the whole run to failed
		slog.WarnContext(ctx, "no terms reported",
			"subdomain", profile.Subdomain,
			"host", profile.Hostname,
		)
		return
	}
	slog.InfoContext(ctx, "discovered terms",
		"subdomain", profile.Subdomain,
		"terms", len(terms),
	)

	// every reported term is recorded, only recent ones are fetched
	var upserts []catalogstore.TermUpsert
	var retained []string
	for _, term := range terms {
		code := textutil.ParseInt(term.Code, -1)
		if code < 0 {
			slog.WarnContext(ctx, "skipping term with unparseable code",
				"subdomain", profile.Subdomain,
				"term", term.Code,
			)
			continue
		}
		upserts = append(upserts, catalogstore.TermUpsert{Code: code, Description: term.Description})
		if code >= opts.TermCutoff {
			retained = append(retained, term.Code)
		} else {
			slog.DebugContext(ctx, "skipping out of date term",
				"subdomain", profile.Subdomain,
				"term", term.Code,
			)
		}
	}
	termIDs, err := s.store.AddTerms(ctx, schoolID, upserts)
	if err != nil {
		result.Err = err
		return
	}
	result.Terms = len(retained)

	termIDByCode := map[string]int64{}
	for i, t := range upserts {
		termIDByCode[strconv.FormatInt(t.Code, 10)] = termIDs[i]
	}

	for _, term := range retained {
		stop, err := s.scrapeTerm(ctx, gen, client, schoolID, termIDByCode[term], term, opts, &result)
		if errors.Is(err, banner.ErrTooManyFailures) {
			// exhaustion only loses this term's sections, the
			// remaining terms are still worth fetching
			slog.WarnContext(ctx, "abandoning term after repeated fetch failures",
				"subdomain", profile.Subdomain,
				"term", term,
			)
			result.FailedTerms = append(result.FailedTerms, term)
			continue
		}
		if err != nil {
			result.Err = err
			return
		}
		if stop {
			return
		}
	}
	return
}

func (s *Service) scrapeTerm(
	ctx context.Context,
	gen catalogstore.Generation,
	client *banner.Client,
	schoolID int64,
	termID int64,
	term string,
	opts Options,
	result *InstitutionResult,
) (stop bool, err error) {
	ctx, span := tracer.Start(ctx, "scrapeTerm")
	defer span.End()
	span.SetAttributes(attribute.String("term", term))

	profile := client.Profile()

	entries := client.CourseCodes(ctx, term, "")
	if len(entries) == 0 {
		slog.WarnContext(ctx, "term has no course codes",
			"subdomain", profile.Subdomain,
			"term", term,
		)
		return false, nil
	}

	codes := make([]string, len(entries))
	upserts := make([]catalogstore.CourseUpsert, len(entries))
	for i, e := range entries {
		codes[i] = e.Code
		upserts[i] = catalogstore.CourseUpsert{Code: e.Code, Description: e.Description}
	}
	courseIDs, err := s.store.AddCourses(ctx, termID, upserts)
	if err != nil {
		return false, err
	}
	result.Courses += len(courseIDs)

	courseIDByCode := map[string]int64{}
	for i, code := range codes {
		courseIDByCode[code] = courseIDs[i]
	}

	slog.InfoContext(ctx, "fetching section data",
		"subdomain", profile.Subdomain,
		"term", term,
		"courses", len(codes),
	)

	pager := client.Sections(term, codes)
	for {
		page, err := pager.Next(ctx)
		if err != nil {
			return false, err
		}
		if page == nil {
			return false, nil
		}

		pageCourseIDs := make([]int64, len(page))
		for i, record := range page {
			id, ok := courseIDByCode[record.SubjectCourse]
			if !ok {
				return false, fmt.Errorf("section %s references unknown course %q",
					record.CourseReferenceNumber, record.SubjectCourse)
			}
			pageCourseIDs[i] = id
		}

		var restrictions []map[string][]banner.RestrictionValue
		if opts.FetchRestrictions {
			restrictions = make([]map[string][]banner.RestrictionValue, len(page))
			for i, record := range page {
				restrictions[i] = client.Restrictions(ctx, term, record.CourseReferenceNumber)
			}
		}

		err = s.store.AddSectionData(ctx, gen, schoolID, pageCourseIDs, page, restrictions)
		if err != nil {
			return false, err
		}
		result.Sections += len(page)

		if opts.DebugBreak {
			slog.InfoContext(ctx, "debug break after first page",
				"subdomain", profile.Subdomain,
				"term", term,
			)
			return true, nil
		}
	}
}

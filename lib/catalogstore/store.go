// Package catalogstore reconciles scraped course catalog records into
// the relational store. Every write path is idempotent: repeated runs
// over the same upstream data produce no duplicate rows. Meetings and
// instructors are content addressed by hash, sections are keyed by
// (course, crn) and overwritten in place.
package catalogstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/EZCampusDevs/dataScraper/lib/catalogstore/db"
	"github.com/EZCampusDevs/dataScraper/lib/scrapers/banner"
	"github.com/EZCampusDevs/dataScraper/lib/textutil"
)

var tracer = otel.Tracer("catalogstore")

type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) *Store {
	return &Store{
		db:  database,
		qry: db.New(database),
	}
}

// Generation identifies one pipeline run. Sections and instructors
// record the generation that last created or changed them.
type Generation struct {
	ID        int64
	StartedAt int64
}

type TermUpsert struct {
	Code        int64
	Description string
}

type CourseUpsert struct {
	Code        string
	Description string
}

// intern implements the lookup-or-create pattern shared by every
// deduplicated table. A uniqueness violation on create means another
// worker inserted the row first, so the lookup is retried.
func intern[T any](get func() (T, error), create func() (T, error)) (T, error) {
	found, err := get()
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, err
	}
	created, err := create()
	if err == nil {
		return created, nil
	}
	if isUniqueViolation(err) {
		return get()
	}
	var zero T
	return zero, err
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

// EnsureSchool resolves the school row for an institution, creating it
// on first sight.
func (s *Store) EnsureSchool(ctx context.Context, name string, subdomain string, timezone string) (int64, error) {
	school, err := intern(
		func() (db.School, error) {
			return s.qry.GetSchoolBySubdomain(ctx, subdomain)
		},
		func() (db.School, error) {
			return s.qry.CreateSchool(ctx, db.CreateSchoolParams{
				SchoolName: name,
				Subdomain:  subdomain,
				Timezone:   timezone,
			})
		},
	)
	if err != nil {
		return 0, fmt.Errorf("ensure school %q: %w", subdomain, err)
	}
	return school.SchoolID, nil
}

// NewGeneration records the start of a pipeline run. Generations are
// keyed by start time so re-running at the same second reuses the row.
func (s *Store) NewGeneration(ctx context.Context, startedAt time.Time) (Generation, error) {
	scrapeTime := startedAt.Unix()
	scrape, err := intern(
		func() (db.ScrapeHistory, error) {
			return s.qry.GetScrapeByTime(ctx, scrapeTime)
		},
		func() (db.ScrapeHistory, error) {
			return s.qry.CreateScrape(ctx, scrapeTime)
		},
	)
	if err != nil {
		return Generation{}, fmt.Errorf("create scrape generation: %w", err)
	}
	return Generation{ID: scrape.ScrapeID, StartedAt: scrape.ScrapeTime}, nil
}

// AddTerms upserts discovered terms for a school and returns their row
// ids in input order. Descriptions are refreshed on change.
func (s *Store) AddTerms(ctx context.Context, schoolID int64, terms []TermUpsert) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "AddTerms")
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	ids := make([]int64, 0, len(terms))
	for _, t := range terms {
		description := textutil.DecodeEscapes(t.Description)
		term, err := intern(
			func() (db.Term, error) {
				return txqry.GetTerm(ctx, db.GetTermParams{SchoolID: schoolID, TermCode: t.Code})
			},
			func() (db.Term, error) {
				return txqry.CreateTerm(ctx, db.CreateTermParams{
					SchoolID:        schoolID,
					TermCode:        t.Code,
					TermDescription: description,
				})
			},
		)
		if err != nil {
			return nil, fmt.Errorf("upsert term %d: %w", t.Code, err)
		}
		if term.TermDescription != description {
			err = txqry.UpdateTermDescription(ctx, db.UpdateTermDescriptionParams{
				TermDescription: description,
				TermID:          term.TermID,
			})
			if err != nil {
				return nil, fmt.Errorf("update term %d description: %w", t.Code, err)
			}
		}
		ids = append(ids, term.TermID)
	}

	return ids, tx.Commit()
}

// AddCourses upserts discovered course codes for a term and returns
// their row ids in input order.
func (s *Store) AddCourses(ctx context.Context, termID int64, courses []CourseUpsert) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "AddCourses")
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		course, err := intern(
			func() (db.Course, error) {
				return txqry.GetCourse(ctx, db.GetCourseParams{TermID: termID, CourseCode: c.Code})
			},
			func() (db.Course, error) {
				return txqry.CreateCourse(ctx, db.CreateCourseParams{
					TermID:            termID,
					CourseCode:        c.Code,
					CourseDescription: textutil.DecodeEscapes(c.Description),
				})
			},
		)
		if err != nil {
			return nil, fmt.Errorf("upsert course %q: %w", c.Code, err)
		}
		ids = append(ids, course.CourseID)
	}

	return ids, tx.Commit()
}

// AddSectionData reconciles one fetched page of section records inside
// a single transaction. courseIDs[i] is the course row the i-th record
// belongs to, and restrictions (when non-nil) carries the i-th record's
// restriction map.
func (s *Store) AddSectionData(
	ctx context.Context,
	gen Generation,
	schoolID int64,
	courseIDs []int64,
	records []banner.SectionRecord,
	restrictions []map[string][]banner.RestrictionValue,
) error {
	ctx, span := tracer.Start(ctx, "AddSectionData")
	defer span.End()
	span.SetAttributes(attribute.Int("records", len(records)))

	if len(courseIDs) != len(records) {
		return fmt.Errorf("got %d course ids for %d records", len(courseIDs), len(records))
	}
	if restrictions != nil && len(restrictions) != len(records) {
		return fmt.Errorf("got %d restriction maps for %d records", len(restrictions), len(records))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	for i, record := range records {
		var restrictionMap map[string][]banner.RestrictionValue
		if restrictions != nil {
			restrictionMap = restrictions[i]
		}
		err = s.reconcileSection(ctx, txqry, gen, schoolID, courseIDs[i], record, restrictionMap)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("reconcile crn %s: %w", record.CourseReferenceNumber, err)
		}
	}

	return tx.Commit()
}

func (s *Store) reconcileSection(
	ctx context.Context,
	txqry *db.Queries,
	gen Generation,
	schoolID int64,
	courseID int64,
	record banner.SectionRecord,
	restrictionMap map[string][]banner.RestrictionValue,
) error {
	classType, err := intern(
		func() (db.ClassType, error) {
			return txqry.GetClassType(ctx, record.ScheduleTypeDescription)
		},
		func() (db.ClassType, error) {
			return txqry.CreateClassType(ctx, record.ScheduleTypeDescription)
		},
	)
	if err != nil {
		return fmt.Errorf("upsert class type: %w", err)
	}

	incoming := db.UpdateCourseDataParams{
		ScrapeID:                       gen.ID,
		UpstreamID:                     record.Id,
		CourseTitle:                    textutil.DecodeEscapes(record.CourseTitle),
		Subject:                        record.Subject,
		SubjectLong:                    textutil.DecodeEscapes(record.SubjectDescription),
		SequenceNumber:                 record.SequenceNumber,
		CampusDescription:              textutil.DecodeEscapes(record.CampusDescription),
		ClassTypeID:                    classType.ClassTypeID,
		CreditHours:                    record.CreditHours,
		MaximumEnrollment:              record.MaximumEnrollment,
		Enrollment:                     record.Enrollment,
		SeatsAvailable:                 record.SeatsAvailable,
		WaitCapacity:                   record.WaitCapacity,
		WaitCount:                      record.WaitCount,
		WaitAvailable:                  record.WaitAvailable,
		CreditHourHigh:                 record.CreditHourHigh,
		CreditHourLow:                  record.CreditHourLow,
		OpenSection:                    record.OpenSection,
		LinkIdentifier:                 record.LinkIdentifier,
		IsSectionLinked:                record.IsSectionLinked,
		InstructionalMethod:            record.InstructionalMethod,
		InstructionalMethodDescription: textutil.DecodeEscapes(record.InstructionalMethodDescription),
	}

	var courseDataID int64
	existing, err := txqry.GetCourseData(ctx, db.GetCourseDataParams{
		CourseID: courseID,
		Crn:      record.CourseReferenceNumber,
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		courseDataID, err = txqry.CreateCourseData(ctx, db.CreateCourseDataParams{
			CourseID:                       courseID,
			ScrapeID:                       gen.ID,
			Crn:                            record.CourseReferenceNumber,
			UpstreamID:                     incoming.UpstreamID,
			CourseTitle:                    incoming.CourseTitle,
			Subject:                        incoming.Subject,
			SubjectLong:                    incoming.SubjectLong,
			SequenceNumber:                 incoming.SequenceNumber,
			CampusDescription:              incoming.CampusDescription,
			ClassTypeID:                    incoming.ClassTypeID,
			CreditHours:                    incoming.CreditHours,
			MaximumEnrollment:              incoming.MaximumEnrollment,
			Enrollment:                     incoming.Enrollment,
			SeatsAvailable:                 incoming.SeatsAvailable,
			WaitCapacity:                   incoming.WaitCapacity,
			WaitCount:                      incoming.WaitCount,
			WaitAvailable:                  incoming.WaitAvailable,
			CreditHourHigh:                 incoming.CreditHourHigh,
			CreditHourLow:                  incoming.CreditHourLow,
			OpenSection:                    incoming.OpenSection,
			LinkIdentifier:                 incoming.LinkIdentifier,
			IsSectionLinked:                incoming.IsSectionLinked,
			InstructionalMethod:            incoming.InstructionalMethod,
			InstructionalMethodDescription: incoming.InstructionalMethodDescription,
		})
		if err != nil {
			return fmt.Errorf("create section: %w", err)
		}
	case err != nil:
		return fmt.Errorf("lookup section: %w", err)
	default:
		courseDataID = existing.CourseDataID
		// The generation stamp only advances when a tracked field
		// actually changed, so unchanged sections keep the stamp of
		// the run that last touched them.
		if !sectionChanged(existing, incoming) {
			incoming.ScrapeID = existing.ScrapeID
		}
		incoming.CourseDataID = courseDataID
		err = txqry.UpdateCourseData(ctx, incoming)
		if err != nil {
			return fmt.Errorf("update section: %w", err)
		}
	}

	err = s.reconcileFaculty(ctx, txqry, gen, courseDataID, record.Faculty)
	if err != nil {
		return err
	}
	err = s.reconcileMeetings(ctx, txqry, schoolID, courseDataID, record.MeetingsFaculty)
	if err != nil {
		return err
	}
	if restrictionMap != nil {
		err = s.reconcileRestrictions(ctx, txqry, courseDataID, restrictionMap)
		if err != nil {
			return err
		}
	}
	return nil
}

// sectionChanged reports whether any tracked descriptive field differs
// between the stored row and the incoming record. Enrollment counters
// move every scrape and are deliberately not tracked.
func sectionChanged(existing db.CourseData, incoming db.UpdateCourseDataParams) bool {
	return existing.CourseTitle != incoming.CourseTitle ||
		existing.Subject != incoming.Subject ||
		existing.SubjectLong != incoming.SubjectLong ||
		existing.SequenceNumber != incoming.SequenceNumber ||
		existing.CampusDescription != incoming.CampusDescription ||
		existing.ClassTypeID != incoming.ClassTypeID ||
		existing.InstructionalMethod != incoming.InstructionalMethod ||
		existing.InstructionalMethodDescription != incoming.InstructionalMethodDescription
}

func (s *Store) reconcileFaculty(
	ctx context.Context,
	txqry *db.Queries,
	gen Generation,
	courseDataID int64,
	faculty []banner.Faculty,
) error {
	for _, f := range faculty {
		name := textutil.DecodeEscapes(f.DisplayName)
		identity := InstructorIdentity(name, f.EmailAddress)
		row, err := intern(
			func() (db.Faculty, error) {
				return txqry.GetFacultyByBannerID(ctx, identity)
			},
			func() (db.Faculty, error) {
				return txqry.CreateFaculty(ctx, db.CreateFacultyParams{
					BannerID:        identity,
					ScrapeID:        gen.ID,
					InstructorName:  name,
					InstructorEmail: f.EmailAddress,
				})
			},
		)
		if err != nil {
			return fmt.Errorf("upsert instructor %q: %w", name, err)
		}

		_, err = txqry.GetCourseFaculty(ctx, db.GetCourseFacultyParams{
			CourseDataID: courseDataID,
			FacultyID:    row.FacultyID,
		})
		if errors.Is(err, sql.ErrNoRows) {
			err = txqry.CreateCourseFaculty(ctx, db.CreateCourseFacultyParams{
				CourseDataID: courseDataID,
				FacultyID:    row.FacultyID,
			})
			if isUniqueViolation(err) {
				err = nil
			}
		}
		if err != nil {
			return fmt.Errorf("link instructor %q: %w", name, err)
		}
	}
	return nil
}

func (s *Store) reconcileMeetings(
	ctx context.Context,
	txqry *db.Queries,
	schoolID int64,
	courseDataID int64,
	meetings []banner.MeetingFaculty,
) error {
	for _, mf := range meetings {
		mt := mf.MeetingTime

		termCode, err := strconv.ParseInt(mt.Term, 10, 64)
		if err != nil {
			slog.WarnContext(ctx, "skipping meeting with unparseable term code",
				"term", mt.Term, "crn", mt.CourseReferenceNumber)
			continue
		}

		// Meetings can reference a term the term listing never
		// reported, so the term row is created here on demand.
		term, err := intern(
			func() (db.Term, error) {
				return txqry.GetTerm(ctx, db.GetTermParams{SchoolID: schoolID, TermCode: termCode})
			},
			func() (db.Term, error) {
				return txqry.CreateTerm(ctx, db.CreateTermParams{
					SchoolID: schoolID,
					TermCode: termCode,
				})
			},
		)
		if err != nil {
			return fmt.Errorf("upsert meeting term %d: %w", termCode, err)
		}

		startDate := normalizeDate(mt.StartDate)
		endDate := normalizeDate(mt.EndDate)
		daysOfWeek := EncodeWeekdays(WeekdayFlags{
			Monday:    mt.Monday,
			Tuesday:   mt.Tuesday,
			Wednesday: mt.Wednesday,
			Thursday:  mt.Thursday,
			Friday:    mt.Friday,
			Saturday:  mt.Saturday,
			Sunday:    mt.Sunday,
		})
		hash := MeetingIdentity(
			mt.CourseReferenceNumber, termCode,
			mt.Building, mt.MeetingType,
			startDate, endDate,
			mt.BeginTime, mt.EndTime,
			daysOfWeek, mt.Room,
		)

		_, err = txqry.GetMeetingByHash(ctx, hash)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("lookup meeting: %w", err)
		}

		err = txqry.CreateMeeting(ctx, db.CreateMeetingParams{
			MeetingHash:            hash,
			CourseDataID:           courseDataID,
			TermID:                 term.TermID,
			Crn:                    mt.CourseReferenceNumber,
			Building:               mt.Building,
			BuildingDescription:    textutil.DecodeEscapes(mt.BuildingDescription),
			Campus:                 mt.Campus,
			CampusDescription:      textutil.DecodeEscapes(mt.CampusDescription),
			MeetingType:            mt.MeetingType,
			MeetingTypeDescription: textutil.DecodeEscapes(mt.MeetingTypeDescription),
			StartDate:              startDate,
			EndDate:                endDate,
			BeginTime:              mt.BeginTime,
			EndTime:                mt.EndTime,
			DaysOfWeek:             daysOfWeek,
			Room:                   mt.Room,
			Category:               mt.Category,
			CreditHourSession:      mt.CreditHourSession,
			HoursWeek:              mt.HoursWeek,
			MeetingScheduleType:    mt.MeetingScheduleType,
		})
		if isUniqueViolation(err) {
			err = nil
		}
		if err != nil {
			return fmt.Errorf("create meeting: %w", err)
		}
	}
	return nil
}

// normalizeDate canonicalizes the few date formats the api has been
// seen using, so the same meeting hashes identically no matter which
// format a particular backend picked. Unrecognized values pass through
// untouched.
func normalizeDate(value string) string {
	t, err := textutil.ParseDate(value)
	if err != nil {
		return value
	}
	return t.Format("2006-01-02")
}

func (s *Store) reconcileRestrictions(
	ctx context.Context,
	txqry *db.Queries,
	courseDataID int64,
	restrictionMap map[string][]banner.RestrictionValue,
) error {
	for label, values := range restrictionMap {
		restrictionType, err := intern(
			func() (db.RestrictionType, error) {
				return txqry.GetRestrictionType(ctx, label)
			},
			func() (db.RestrictionType, error) {
				return txqry.CreateRestrictionType(ctx, label)
			},
		)
		if err != nil {
			return fmt.Errorf("upsert restriction type %q: %w", label, err)
		}

		for _, v := range values {
			value := textutil.DecodeEscapes(v.Value)
			restriction, err := intern(
				func() (db.Restriction, error) {
					return txqry.GetRestriction(ctx, db.GetRestrictionParams{
						RestrictionTypeID: restrictionType.RestrictionTypeID,
						Restriction:       value,
						MustBeIn:          v.MustBeIn,
					})
				},
				func() (db.Restriction, error) {
					return txqry.CreateRestriction(ctx, db.CreateRestrictionParams{
						RestrictionTypeID: restrictionType.RestrictionTypeID,
						Restriction:       value,
						MustBeIn:          v.MustBeIn,
					})
				},
			)
			if err != nil {
				return fmt.Errorf("upsert restriction %q: %w", value, err)
			}

			_, err = txqry.GetCourseRestriction(ctx, db.GetCourseRestrictionParams{
				CourseDataID:  courseDataID,
				RestrictionID: restriction.RestrictionID,
			})
			if errors.Is(err, sql.ErrNoRows) {
				err = txqry.CreateCourseRestriction(ctx, db.CreateCourseRestrictionParams{
					CourseDataID:  courseDataID,
					RestrictionID: restriction.RestrictionID,
				})
				if isUniqueViolation(err) {
					err = nil
				}
			}
			if err != nil {
				return fmt.Errorf("link restriction %q: %w", value, err)
			}
		}
	}
	return nil
}

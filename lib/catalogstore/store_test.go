package catalogstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/EZCampusDevs/dataScraper/lib/catalogstore/db"
	"github.com/EZCampusDevs/dataScraper/lib/scrapers/banner"
	"github.com/EZCampusDevs/dataScraper/lib/testutil"
)

func sampleRecord() banner.SectionRecord {
	return banner.SectionRecord{
		Id:                      400001,
		CourseReferenceNumber:   "70233",
		Subject:                 "CSCI",
		SubjectDescription:      "Computer Science",
		SubjectCourse:           "CSCI2000U",
		CourseTitle:             "Systems Programming &amp; Design",
		SequenceNumber:          "001",
		CampusDescription:       "North Campus",
		ScheduleTypeDescription: "Lecture",
		MaximumEnrollment:       120,
		Enrollment:              97,
		SeatsAvailable:          23,
		CreditHourHigh:          3,
		CreditHourLow:           3,
		OpenSection:             true,
		InstructionalMethod:     "CLS",
		Faculty: []banner.Faculty{
			{DisplayName: "Jane Doe", EmailAddress: "jdoe@example.edu"},
		},
		MeetingsFaculty: []banner.MeetingFaculty{
			{MeetingTime: banner.MeetingTime{
				Term:                  "202409",
				CourseReferenceNumber: "70233",
				Building:              "SCI",
				BuildingDescription:   "Science Building",
				MeetingType:           "CLAS",
				StartDate:             "09/01/2024",
				EndDate:               "12/15/2024",
				BeginTime:             "0910",
				EndTime:               "1030",
				Room:                  "101",
				Monday:                true,
				Wednesday:             true,
			}},
		},
	}
}

func countRows(t *testing.T, store *Store, table string) int64 {
	var n int64
	err := store.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestReconcileIdempotence(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "catalogstore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := NewStore(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	schoolID, err := store.EnsureSchool(ctx, "Example University", "example", "America/Toronto")
	require.NoError(t, err)
	again, err := store.EnsureSchool(ctx, "Example University", "example", "America/Toronto")
	require.NoError(t, err)
	require.Equal(t, schoolID, again)

	gen, err := store.NewGeneration(ctx, time.Unix(1700000000, 0))
	require.NoError(t, err)

	termIDs, err := store.AddTerms(ctx, schoolID, []TermUpsert{
		{Code: 202409, Description: "Fall 2024"},
	})
	require.NoError(t, err)
	require.Len(t, termIDs, 1)

	courseIDs, err := store.AddCourses(ctx, termIDs[0], []CourseUpsert{
		{Code: "CSCI2000U", Description: "Systems Programming"},
	})
	require.NoError(t, err)
	require.Len(t, courseIDs, 1)

	record := sampleRecord()
	restrictions := []map[string][]banner.RestrictionValue{
		{
			"levels":  {{Value: "Undergraduate", MustBeIn: true}},
			"degrees": {},
		},
	}

	reconcile := func() {
		err := store.AddSectionData(ctx, gen, schoolID, courseIDs,
			[]banner.SectionRecord{record}, restrictions)
		require.NoError(t, err)
	}

	reconcile()
	reconcile()

	require.Equal(t, int64(1), countRows(t, store, "tbl_course_data"))
	require.Equal(t, int64(1), countRows(t, store, "tbl_faculty"))
	require.Equal(t, int64(1), countRows(t, store, "tbl_course_faculty"))
	require.Equal(t, int64(1), countRows(t, store, "tbl_meeting"))
	require.Equal(t, int64(1), countRows(t, store, "tbl_classtype"))
	require.Equal(t, int64(1), countRows(t, store, "tbl_restriction"))
	require.Equal(t, int64(1), countRows(t, store, "tbl_course_restriction"))

	// entities are normalized on the way in
	qry := db.New(setup.DB)
	section, err := qry.GetCourseData(ctx, db.GetCourseDataParams{
		CourseID: courseIDs[0],
		Crn:      "70233",
	})
	require.NoError(t, err)
	require.Equal(t, "Systems Programming & Design", section.CourseTitle)
}

func TestGenerationStamp(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "catalogstore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := NewStore(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	schoolID, err := store.EnsureSchool(ctx, "Example University", "example", "America/Toronto")
	require.NoError(t, err)
	termIDs, err := store.AddTerms(ctx, schoolID, []TermUpsert{{Code: 202409, Description: "Fall 2024"}})
	require.NoError(t, err)
	courseIDs, err := store.AddCourses(ctx, termIDs[0], []CourseUpsert{{Code: "CSCI2000U"}})
	require.NoError(t, err)

	gen1, err := store.NewGeneration(ctx, time.Unix(1700000000, 0))
	require.NoError(t, err)
	gen2, err := store.NewGeneration(ctx, time.Unix(1700003600, 0))
	require.NoError(t, err)
	require.NotEqual(t, gen1.ID, gen2.ID)

	record := sampleRecord()
	err = store.AddSectionData(ctx, gen1, schoolID, courseIDs, []banner.SectionRecord{record}, nil)
	require.NoError(t, err)

	qry := db.New(setup.DB)
	get := func() db.CourseData {
		section, err := qry.GetCourseData(ctx, db.GetCourseDataParams{
			CourseID: courseIDs[0],
			Crn:      record.CourseReferenceNumber,
		})
		require.NoError(t, err)
		return section
	}
	require.Equal(t, gen1.ID, get().ScrapeID)

	// an unchanged record must not advance the stamp, but counter
	// movement alone is still written through
	record.Enrollment = 99
	err = store.AddSectionData(ctx, gen2, schoolID, courseIDs, []banner.SectionRecord{record}, nil)
	require.NoError(t, err)
	section := get()
	require.Equal(t, gen1.ID, section.ScrapeID)
	require.Equal(t, int64(99), section.Enrollment)

	record.CourseTitle = "Systems Programming II"
	err = store.AddSectionData(ctx, gen2, schoolID, courseIDs, []banner.SectionRecord{record}, nil)
	require.NoError(t, err)
	section = get()
	require.Equal(t, gen2.ID, section.ScrapeID)
	require.Equal(t, "Systems Programming II", section.CourseTitle)
}

func TestMeetingDedupAcrossSections(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "catalogstore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := NewStore(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	schoolID, err := store.EnsureSchool(ctx, "Example University", "example", "America/Toronto")
	require.NoError(t, err)
	termIDs, err := store.AddTerms(ctx, schoolID, []TermUpsert{{Code: 202409, Description: "Fall 2024"}})
	require.NoError(t, err)
	courseIDs, err := store.AddCourses(ctx, termIDs[0], []CourseUpsert{{Code: "CSCI2000U"}})
	require.NoError(t, err)
	gen, err := store.NewGeneration(ctx, time.Unix(1700000000, 0))
	require.NoError(t, err)

	record := sampleRecord()
	// hashed fields identical, unhashed detail differs
	altered := sampleRecord()
	altered.MeetingsFaculty[0].MeetingTime.BuildingDescription = "Renamed Science Building"

	err = store.AddSectionData(ctx, gen, schoolID, courseIDs, []banner.SectionRecord{record}, nil)
	require.NoError(t, err)
	err = store.AddSectionData(ctx, gen, schoolID, courseIDs, []banner.SectionRecord{altered}, nil)
	require.NoError(t, err)

	require.Equal(t, int64(1), countRows(t, store, "tbl_meeting"))
}

func TestMeetingBadTermSkipped(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "catalogstore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := NewStore(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	schoolID, err := store.EnsureSchool(ctx, "Example University", "example", "America/Toronto")
	require.NoError(t, err)
	termIDs, err := store.AddTerms(ctx, schoolID, []TermUpsert{{Code: 202409, Description: "Fall 2024"}})
	require.NoError(t, err)
	courseIDs, err := store.AddCourses(ctx, termIDs[0], []CourseUpsert{{Code: "CSCI2000U"}})
	require.NoError(t, err)
	gen, err := store.NewGeneration(ctx, time.Unix(1700000000, 0))
	require.NoError(t, err)

	record := sampleRecord()
	record.MeetingsFaculty[0].MeetingTime.Term = "not-a-term"

	err = store.AddSectionData(ctx, gen, schoolID, courseIDs, []banner.SectionRecord{record}, nil)
	require.NoError(t, err)

	// the record itself still lands, only the meeting is dropped
	require.Equal(t, int64(1), countRows(t, store, "tbl_course_data"))
	require.Equal(t, int64(0), countRows(t, store, "tbl_meeting"))
}

func TestSectionDataLengthMismatch(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "catalogstore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	store := NewStore(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	gen := Generation{ID: 1}
	err := store.AddSectionData(ctx, gen, 1, []int64{1, 2},
		[]banner.SectionRecord{sampleRecord()}, nil)
	require.Error(t, err)
}

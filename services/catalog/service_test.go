package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/EZCampusDevs/dataScraper/lib/catalogstore/db"
	"github.com/EZCampusDevs/dataScraper/lib/scrapers/banner"
	"github.com/EZCampusDevs/dataScraper/lib/testutil"
)

// fakeBanner serves just enough of the StudentRegistrationSsb surface
// for a full pipeline run.
func fakeBanner(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/StudentRegistrationSsb/ssb/term/termSelection", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/StudentRegistrationSsb/ssb/term/search", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/StudentRegistrationSsb/ssb/classSearch/getTerms", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]banner.TermEntry{
			{Code: "202409", Description: "Fall 2024"},
			{Code: "200001", Description: "Winter 2000"},
		})
	})
	mux.HandleFunc("/StudentRegistrationSsb/ssb/classSearch/get_subjectcoursecombo", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "202409", r.URL.Query().Get("term"))
		json.NewEncoder(w).Encode([]banner.CourseCodeEntry{
			{Code: "CSCI2000U", Description: "Systems Programming"},
			{Code: "MATH1010U", Description: "Calculus I"},
		})
	})
	mux.HandleFunc("/StudentRegistrationSsb/ssb/searchResults/searchResults", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(struct {
			Success    bool                   `json:"success"`
			TotalCount int                    `json:"totalCount"`
			Data       []banner.SectionRecord `json:"data"`
		}{
			Success:    true,
			TotalCount: 2,
			Data: []banner.SectionRecord{
				{
					Id:                      1,
					CourseReferenceNumber:   "70233",
					Subject:                 "CSCI",
					SubjectCourse:           "CSCI2000U",
					CourseTitle:             "Systems Programming",
					ScheduleTypeDescription: "Lecture",
					Faculty: []banner.Faculty{
						{DisplayName: "Jane Doe", EmailAddress: "jdoe@example.edu"},
					},
					MeetingsFaculty: []banner.MeetingFaculty{
						{MeetingTime: banner.MeetingTime{
							Term:                  "202409",
							CourseReferenceNumber: "70233",
							Building:              "SCI",
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
				},
				{
					Id:                      2,
					CourseReferenceNumber:   "70234",
					Subject:                 "MATH",
					SubjectCourse:           "MATH1010U",
					CourseTitle:             "Calculus I",
					ScheduleTypeDescription: "Lecture",
					Faculty: []banner.Faculty{
						{DisplayName: "Jane Doe", EmailAddress: "jdoe@example.edu"},
					},
				},
			},
		})
	})
	mux.HandleFunc("/StudentRegistrationSsb/ssb/searchResults/getRestrictions", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<section>
<span>Must be enrolled in one of the following Levels:</span>
<span class="detail-popup-indentation">Undergraduate</span>
</section>`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestPipeline(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	server := fakeBanner(t)
	retries := 0
	profile := banner.Profile{
		Name:      "Test University",
		Subdomain: "test",
		Hostname:  "test.invalid",
		MepCode:   "TEST",
		Timezone:  "America/Toronto",
		BaseUrl:   server.URL,
		Retries:   &retries,
		Timeout:   time.Second * 5,
	}

	service := NewService(setup.DB)
	now := time.Unix(1700000000, 0)
	service.now = func() time.Time { return now }

	opts := Options{
		Workers:           2,
		FetchRestrictions: true,
		TermCutoff:        202301,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	results, err := service.Run(ctx, []banner.Profile{profile}, opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	require.Equal(t, 1, results[0].Terms)
	require.Equal(t, 2, results[0].Courses)
	require.Equal(t, 2, results[0].Sections)

	count := func(table string) int64 {
		var n int64
		err := setup.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
		require.NoError(t, err)
		return n
	}

	// both terms recorded, only the recent one fetched
	require.Equal(t, int64(2), count("tbl_term"))
	require.Equal(t, int64(2), count("tbl_course"))
	require.Equal(t, int64(2), count("tbl_course_data"))
	require.Equal(t, int64(1), count("tbl_faculty"))
	require.Equal(t, int64(2), count("tbl_course_faculty"))
	require.Equal(t, int64(1), count("tbl_meeting"))
	require.Equal(t, int64(2), count("tbl_course_restriction"))

	// a second run under a new generation changes nothing
	now = now.Add(time.Hour)
	results, err = service.Run(ctx, []banner.Profile{profile}, opts)
	require.NoError(t, err)
	require.NoError(t, results[0].Err)

	require.Equal(t, int64(2), count("tbl_scrape_history"))
	require.Equal(t, int64(2), count("tbl_term"))
	require.Equal(t, int64(2), count("tbl_course"))
	require.Equal(t, int64(2), count("tbl_course_data"))
	require.Equal(t, int64(1), count("tbl_faculty"))
	require.Equal(t, int64(1), count("tbl_meeting"))
	require.Equal(t, int64(2), count("tbl_course_restriction"))
}

func TestDebugBreak(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	server := fakeBanner(t)
	retries := 0
	profile := banner.Profile{
		Name:      "Test University",
		Subdomain: "test",
		Hostname:  "test.invalid",
		MepCode:   "TEST",
		Timezone:  "America/Toronto",
		BaseUrl:   server.URL,
		Retries:   &retries,
		Timeout:   time.Second * 5,
	}

	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	results, err := service.Run(ctx, []banner.Profile{profile}, Options{
		DebugBreak: true,
		TermCutoff: 202301,
	})
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	require.Equal(t, 2, results[0].Sections)
}

func TestTermFetchFailureLosesOnlyThatTerm(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	mux := http.NewServeMux()
	mux.HandleFunc("/StudentRegistrationSsb/ssb/term/termSelection", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/StudentRegistrationSsb/ssb/term/search", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/StudentRegistrationSsb/ssb/classSearch/getTerms", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]banner.TermEntry{
			{Code: "202409", Description: "Fall 2024"},
			{Code: "202501", Description: "Winter 2025"},
		})
	})
	mux.HandleFunc("/StudentRegistrationSsb/ssb/classSearch/get_subjectcoursecombo", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("term") {
		case "202409":
			json.NewEncoder(w).Encode([]banner.CourseCodeEntry{{Code: "CSCI2000U"}})
		default:
			json.NewEncoder(w).Encode([]banner.CourseCodeEntry{{Code: "MATH1010U"}})
		}
	})
	mux.HandleFunc("/StudentRegistrationSsb/ssb/searchResults/searchResults", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("txt_term") == "202409" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(struct {
			Success    bool                   `json:"success"`
			TotalCount int                    `json:"totalCount"`
			Data       []banner.SectionRecord `json:"data"`
		}{
			Success:    true,
			TotalCount: 1,
			Data: []banner.SectionRecord{
				{
					Id:                      3,
					CourseReferenceNumber:   "80001",
					Subject:                 "MATH",
					SubjectCourse:           "MATH1010U",
					CourseTitle:             "Calculus I",
					ScheduleTypeDescription: "Lecture",
				},
			},
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	retries := 0
	profile := banner.Profile{
		Name:             "Test University",
		Subdomain:        "test",
		Hostname:         "test.invalid",
		MepCode:          "TEST",
		Timezone:         "America/Toronto",
		BaseUrl:          server.URL,
		Retries:          &retries,
		Timeout:          time.Second * 5,
		MaxBatchFailures: 1,
	}

	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	results, err := service.Run(ctx, []banner.Profile{profile}, Options{TermCutoff: 202301})
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	require.Equal(t, []string{"202409"}, results[0].FailedTerms)
	require.Equal(t, 1, results[0].Sections)

	var sections int64
	require.NoError(t, setup.DB.QueryRow("SELECT COUNT(*) FROM tbl_course_data").Scan(&sections))
	require.Equal(t, int64(1), sections)
}

func TestNoTermsIsSoftFailure(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/catalog",
		DbSchema: db.Schema,
	})
	defer cleanup()

	mux := http.NewServeMux()
	mux.HandleFunc("/StudentRegistrationSsb/ssb/term/termSelection", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/StudentRegistrationSsb/ssb/classSearch/getTerms", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]banner.TermEntry{})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	retries := 0
	profile := banner.Profile{
		Name:      "Test University",
		Subdomain: "test",
		Hostname:  "test.invalid",
		MepCode:   "TEST",
		Timezone:  "America/Toronto",
		BaseUrl:   server.URL,
		Retries:   &retries,
		Timeout:   time.Second * 5,
	}

	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	results, err := service.Run(ctx, []banner.Profile{profile}, Options{TermCutoff: 202301})
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	require.Equal(t, 0, results[0].Terms)
	require.Empty(t, results[0].FailedTerms)
}

func TestSelectProfiles(t *testing.T) {
	profiles := BuiltinProfiles()

	require.Equal(t, profiles, SelectProfiles(profiles, nil))

	selected := SelectProfiles(profiles, []string{"otu", "uv"})
	require.Len(t, selected, 2)
	require.Equal(t, "otu", selected[0].Subdomain)
	require.Equal(t, "uv", selected[1].Subdomain)
}

package db

import (
	"context"
)

const createSchool = `-- name: CreateSchool :one
INSERT INTO tbl_school (school_name, subdomain, timezone)
VALUES (?, ?, ?)
RETURNING school_id, school_name, subdomain, timezone
`

type CreateSchoolParams struct {
	SchoolName string
	Subdomain  string
	Timezone   string
}

func (q *Queries) CreateSchool(ctx context.Context, arg CreateSchoolParams) (School, error) {
	row := q.db.QueryRowContext(ctx, createSchool, arg.SchoolName, arg.Subdomain, arg.Timezone)
	var i School
	err := row.Scan(&i.SchoolID, &i.SchoolName, &i.Subdomain, &i.Timezone)
	return i, err
}

const getSchoolBySubdomain = `-- name: GetSchoolBySubdomain :one
SELECT school_id, school_name, subdomain, timezone
FROM tbl_school
WHERE subdomain = ?
`

func (q *Queries) GetSchoolBySubdomain(ctx context.Context, subdomain string) (School, error) {
	row := q.db.QueryRowContext(ctx, getSchoolBySubdomain, subdomain)
	var i School
	err := row.Scan(&i.SchoolID, &i.SchoolName, &i.Subdomain, &i.Timezone)
	return i, err
}

const createScrape = `-- name: CreateScrape :one
INSERT INTO tbl_scrape_history (scrape_time, has_been_indexed)
VALUES (?, FALSE)
RETURNING scrape_id, scrape_time, has_been_indexed
`

func (q *Queries) CreateScrape(ctx context.Context, scrapeTime int64) (ScrapeHistory, error) {
	row := q.db.QueryRowContext(ctx, createScrape, scrapeTime)
	var i ScrapeHistory
	err := row.Scan(&i.ScrapeID, &i.ScrapeTime, &i.HasBeenIndexed)
	return i, err
}

const getScrapeByTime = `-- name: GetScrapeByTime :one
SELECT scrape_id, scrape_time, has_been_indexed
FROM tbl_scrape_history
WHERE scrape_time = ?
`

func (q *Queries) GetScrapeByTime(ctx context.Context, scrapeTime int64) (ScrapeHistory, error) {
	row := q.db.QueryRowContext(ctx, getScrapeByTime, scrapeTime)
	var i ScrapeHistory
	err := row.Scan(&i.ScrapeID, &i.ScrapeTime, &i.HasBeenIndexed)
	return i, err
}

const createTerm = `-- name: CreateTerm :one
INSERT INTO tbl_term (school_id, term_code, term_description)
VALUES (?, ?, ?)
RETURNING term_id, school_id, term_code, term_description
`

type CreateTermParams struct {
	SchoolID        int64
	TermCode        int64
	TermDescription string
}

func (q *Queries) CreateTerm(ctx context.Context, arg CreateTermParams) (Term, error) {
	row := q.db.QueryRowContext(ctx, createTerm, arg.SchoolID, arg.TermCode, arg.TermDescription)
	var i Term
	err := row.Scan(&i.TermID, &i.SchoolID, &i.TermCode, &i.TermDescription)
	return i, err
}

const getTerm = `-- name: GetTerm :one
SELECT term_id, school_id, term_code, term_description
FROM tbl_term
WHERE school_id = ? AND term_code = ?
`

type GetTermParams struct {
	SchoolID int64
	TermCode int64
}

func (q *Queries) GetTerm(ctx context.Context, arg GetTermParams) (Term, error) {
	row := q.db.QueryRowContext(ctx, getTerm, arg.SchoolID, arg.TermCode)
	var i Term
	err := row.Scan(&i.TermID, &i.SchoolID, &i.TermCode, &i.TermDescription)
	return i, err
}

const updateTermDescription = `-- name: UpdateTermDescription :exec
UPDATE tbl_term
SET term_description = ?
WHERE term_id = ?
`

type UpdateTermDescriptionParams struct {
	TermDescription string
	TermID          int64
}

func (q *Queries) UpdateTermDescription(ctx context.Context, arg UpdateTermDescriptionParams) error {
	_, err := q.db.ExecContext(ctx, updateTermDescription, arg.TermDescription, arg.TermID)
	return err
}

const createCourse = `-- name: CreateCourse :one
INSERT INTO tbl_course (term_id, course_code, course_description)
VALUES (?, ?, ?)
RETURNING course_id, term_id, course_code, course_description
`

type CreateCourseParams struct {
	TermID            int64
	CourseCode        string
	CourseDescription string
}

func (q *Queries) CreateCourse(ctx context.Context, arg CreateCourseParams) (Course, error) {
	row := q.db.QueryRowContext(ctx, createCourse, arg.TermID, arg.CourseCode, arg.CourseDescription)
	var i Course
	err := row.Scan(&i.CourseID, &i.TermID, &i.CourseCode, &i.CourseDescription)
	return i, err
}

const getCourse = `-- name: GetCourse :one
SELECT course_id, term_id, course_code, course_description
FROM tbl_course
WHERE term_id = ? AND course_code = ?
`

type GetCourseParams struct {
	TermID     int64
	CourseCode string
}

func (q *Queries) GetCourse(ctx context.Context, arg GetCourseParams) (Course, error) {
	row := q.db.QueryRowContext(ctx, getCourse, arg.TermID, arg.CourseCode)
	var i Course
	err := row.Scan(&i.CourseID, &i.TermID, &i.CourseCode, &i.CourseDescription)
	return i, err
}

const createClassType = `-- name: CreateClassType :one
INSERT INTO tbl_classtype (class_type)
VALUES (?)
RETURNING class_type_id, class_type
`

func (q *Queries) CreateClassType(ctx context.Context, classType string) (ClassType, error) {
	row := q.db.QueryRowContext(ctx, createClassType, classType)
	var i ClassType
	err := row.Scan(&i.ClassTypeID, &i.ClassType)
	return i, err
}

const getClassType = `-- name: GetClassType :one
SELECT class_type_id, class_type
FROM tbl_classtype
WHERE class_type = ?
`

func (q *Queries) GetClassType(ctx context.Context, classType string) (ClassType, error) {
	row := q.db.QueryRowContext(ctx, getClassType, classType)
	var i ClassType
	err := row.Scan(&i.ClassTypeID, &i.ClassType)
	return i, err
}

const createCourseData = `-- name: CreateCourseData :one
INSERT INTO tbl_course_data (
    course_id, scrape_id, crn, upstream_id, course_title, subject,
    subject_long, sequence_number, campus_description, class_type_id,
    credit_hours, maximum_enrollment, enrollment, seats_available,
    wait_capacity, wait_count, wait_available, credit_hour_high,
    credit_hour_low, open_section, link_identifier, is_section_linked,
    instructional_method, instructional_method_description
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING course_data_id
`

type CreateCourseDataParams struct {
	CourseID                       int64
	ScrapeID                       int64
	Crn                            string
	UpstreamID                     int64
	CourseTitle                    string
	Subject                        string
	SubjectLong                    string
	SequenceNumber                 string
	CampusDescription              string
	ClassTypeID                    int64
	CreditHours                    int64
	MaximumEnrollment              int64
	Enrollment                     int64
	SeatsAvailable                 int64
	WaitCapacity                   int64
	WaitCount                      int64
	WaitAvailable                  int64
	CreditHourHigh                 int64
	CreditHourLow                  int64
	OpenSection                    bool
	LinkIdentifier                 string
	IsSectionLinked                bool
	InstructionalMethod            string
	InstructionalMethodDescription string
}

func (q *Queries) CreateCourseData(ctx context.Context, arg CreateCourseDataParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createCourseData,
		arg.CourseID,
		arg.ScrapeID,
		arg.Crn,
		arg.UpstreamID,
		arg.CourseTitle,
		arg.Subject,
		arg.SubjectLong,
		arg.SequenceNumber,
		arg.CampusDescription,
		arg.ClassTypeID,
		arg.CreditHours,
		arg.MaximumEnrollment,
		arg.Enrollment,
		arg.SeatsAvailable,
		arg.WaitCapacity,
		arg.WaitCount,
		arg.WaitAvailable,
		arg.CreditHourHigh,
		arg.CreditHourLow,
		arg.OpenSection,
		arg.LinkIdentifier,
		arg.IsSectionLinked,
		arg.InstructionalMethod,
		arg.InstructionalMethodDescription,
	)
	var courseDataID int64
	err := row.Scan(&courseDataID)
	return courseDataID, err
}

const getCourseData = `-- name: GetCourseData :one
SELECT course_data_id, course_id, scrape_id, crn, upstream_id, course_title,
       subject, subject_long, sequence_number, campus_description,
       class_type_id, credit_hours, maximum_enrollment, enrollment,
       seats_available, wait_capacity, wait_count, wait_available,
       credit_hour_high, credit_hour_low, open_section, link_identifier,
       is_section_linked, instructional_method, instructional_method_description
FROM tbl_course_data
WHERE course_id = ? AND crn = ?
`

type GetCourseDataParams struct {
	CourseID int64
	Crn      string
}

func (q *Queries) GetCourseData(ctx context.Context, arg GetCourseDataParams) (CourseData, error) {
	row := q.db.QueryRowContext(ctx, getCourseData, arg.CourseID, arg.Crn)
	var i CourseData
	err := row.Scan(
		&i.CourseDataID,
		&i.CourseID,
		&i.ScrapeID,
		&i.Crn,
		&i.UpstreamID,
		&i.CourseTitle,
		&i.Subject,
		&i.SubjectLong,
		&i.SequenceNumber,
		&i.CampusDescription,
		&i.ClassTypeID,
		&i.CreditHours,
		&i.MaximumEnrollment,
		&i.Enrollment,
		&i.SeatsAvailable,
		&i.WaitCapacity,
		&i.WaitCount,
		&i.WaitAvailable,
		&i.CreditHourHigh,
		&i.CreditHourLow,
		&i.OpenSection,
		&i.LinkIdentifier,
		&i.IsSectionLinked,
		&i.InstructionalMethod,
		&i.InstructionalMethodDescription,
	)
	return i, err
}

const updateCourseData = `-- name: UpdateCourseData :exec
UPDATE tbl_course_data
SET scrape_id = ?,
    upstream_id = ?,
    course_title = ?,
    subject = ?,
    subject_long = ?,
    sequence_number = ?,
    campus_description = ?,
    class_type_id = ?,
    credit_hours = ?,
    maximum_enrollment = ?,
    enrollment = ?,
    seats_available = ?,
    wait_capacity = ?,
    wait_count = ?,
    wait_available = ?,
    credit_hour_high = ?,
    credit_hour_low = ?,
    open_section = ?,
    link_identifier = ?,
    is_section_linked = ?,
    instructional_method = ?,
    instructional_method_description = ?
WHERE course_data_id = ?
`

type UpdateCourseDataParams struct {
	ScrapeID                       int64
	UpstreamID                     int64
	CourseTitle                    string
	Subject                        string
	SubjectLong                    string
	SequenceNumber                 string
	CampusDescription              string
	ClassTypeID                    int64
	CreditHours                    int64
	MaximumEnrollment              int64
	Enrollment                     int64
	SeatsAvailable                 int64
	WaitCapacity                   int64
	WaitCount                      int64
	WaitAvailable                  int64
	CreditHourHigh                 int64
	CreditHourLow                  int64
	OpenSection                    bool
	LinkIdentifier                 string
	IsSectionLinked                bool
	InstructionalMethod            string
	InstructionalMethodDescription string
	CourseDataID                   int64
}

func (q *Queries) UpdateCourseData(ctx context.Context, arg UpdateCourseDataParams) error {
	_, err := q.db.ExecContext(ctx, updateCourseData,
		arg.ScrapeID,
		arg.UpstreamID,
		arg.CourseTitle,
		arg.Subject,
		arg.SubjectLong,
		arg.SequenceNumber,
		arg.CampusDescription,
		arg.ClassTypeID,
		arg.CreditHours,
		arg.MaximumEnrollment,
		arg.Enrollment,
		arg.SeatsAvailable,
		arg.WaitCapacity,
		arg.WaitCount,
		arg.WaitAvailable,
		arg.CreditHourHigh,
		arg.CreditHourLow,
		arg.OpenSection,
		arg.LinkIdentifier,
		arg.IsSectionLinked,
		arg.InstructionalMethod,
		arg.InstructionalMethodDescription,
		arg.CourseDataID,
	)
	return err
}

const createFaculty = `-- name: CreateFaculty :one
INSERT INTO tbl_faculty (banner_id, scrape_id, instructor_name, instructor_email, instructor_rating)
VALUES (?, ?, ?, ?, 0)
RETURNING faculty_id, banner_id, scrape_id, instructor_name, instructor_email, instructor_rating
`

type CreateFacultyParams struct {
	BannerID        []byte
	ScrapeID        int64
	InstructorName  string
	InstructorEmail string
}

func (q *Queries) CreateFaculty(ctx context.Context, arg CreateFacultyParams) (Faculty, error) {
	row := q.db.QueryRowContext(ctx, createFaculty,
		arg.BannerID,
		arg.ScrapeID,
		arg.InstructorName,
		arg.InstructorEmail,
	)
	var i Faculty
	err := row.Scan(
		&i.FacultyID,
		&i.BannerID,
		&i.ScrapeID,
		&i.InstructorName,
		&i.InstructorEmail,
		&i.InstructorRating,
	)
	return i, err
}

const getFacultyByBannerID = `-- name: GetFacultyByBannerID :one
SELECT faculty_id, banner_id, scrape_id, instructor_name, instructor_email, instructor_rating
FROM tbl_faculty
WHERE banner_id = ?
`

func (q *Queries) GetFacultyByBannerID(ctx context.Context, bannerID []byte) (Faculty, error) {
	row := q.db.QueryRowContext(ctx, getFacultyByBannerID, bannerID)
	var i Faculty
	err := row.Scan(
		&i.FacultyID,
		&i.BannerID,
		&i.ScrapeID,
		&i.InstructorName,
		&i.InstructorEmail,
		&i.InstructorRating,
	)
	return i, err
}

const createCourseFaculty = `-- name: CreateCourseFaculty :exec
INSERT INTO tbl_course_faculty (course_data_id, faculty_id)
VALUES (?, ?)
`

type CreateCourseFacultyParams struct {
	CourseDataID int64
	FacultyID    int64
}

func (q *Queries) CreateCourseFaculty(ctx context.Context, arg CreateCourseFacultyParams) error {
	_, err := q.db.ExecContext(ctx, createCourseFaculty, arg.CourseDataID, arg.FacultyID)
	return err
}

const getCourseFaculty = `-- name: GetCourseFaculty :one
SELECT course_data_id, faculty_id
FROM tbl_course_faculty
WHERE course_data_id = ? AND faculty_id = ?
`

type GetCourseFacultyParams struct {
	CourseDataID int64
	FacultyID    int64
}

func (q *Queries) GetCourseFaculty(ctx context.Context, arg GetCourseFacultyParams) (CourseFaculty, error) {
	row := q.db.QueryRowContext(ctx, getCourseFaculty, arg.CourseDataID, arg.FacultyID)
	var i CourseFaculty
	err := row.Scan(&i.CourseDataID, &i.FacultyID)
	return i, err
}

const createMeeting = `-- name: CreateMeeting :exec
INSERT INTO tbl_meeting (
    meeting_hash, course_data_id, term_id, crn, building,
    building_description, campus, campus_description, meeting_type,
    meeting_type_description, start_date, end_date, begin_time, end_time,
    days_of_week, room, category, credit_hour_session, hours_week,
    meeting_schedule_type
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateMeetingParams struct {
	MeetingHash            []byte
	CourseDataID           int64
	TermID                 int64
	Crn                    string
	Building               string
	BuildingDescription    string
	Campus                 string
	CampusDescription      string
	MeetingType            string
	MeetingTypeDescription string
	StartDate              string
	EndDate                string
	BeginTime              string
	EndTime                string
	DaysOfWeek             int64
	Room                   string
	Category               string
	CreditHourSession      float64
	HoursWeek              float64
	MeetingScheduleType    string
}

func (q *Queries) CreateMeeting(ctx context.Context, arg CreateMeetingParams) error {
	_, err := q.db.ExecContext(ctx, createMeeting,
		arg.MeetingHash,
		arg.CourseDataID,
		arg.TermID,
		arg.Crn,
		arg.Building,
		arg.BuildingDescription,
		arg.Campus,
		arg.CampusDescription,
		arg.MeetingType,
		arg.MeetingTypeDescription,
		arg.StartDate,
		arg.EndDate,
		arg.BeginTime,
		arg.EndTime,
		arg.DaysOfWeek,
		arg.Room,
		arg.Category,
		arg.CreditHourSession,
		arg.HoursWeek,
		arg.MeetingScheduleType,
	)
	return err
}

const getMeetingByHash = `-- name: GetMeetingByHash :one
SELECT meeting_id
FROM tbl_meeting
WHERE meeting_hash = ?
`

func (q *Queries) GetMeetingByHash(ctx context.Context, meetingHash []byte) (int64, error) {
	row := q.db.QueryRowContext(ctx, getMeetingByHash, meetingHash)
	var meetingID int64
	err := row.Scan(&meetingID)
	return meetingID, err
}

const createRestrictionType = `-- name: CreateRestrictionType :one
INSERT INTO tbl_restriction_type (restriction_type)
VALUES (?)
RETURNING restriction_type_id, restriction_type
`

func (q *Queries) CreateRestrictionType(ctx context.Context, restrictionType string) (RestrictionType, error) {
	row := q.db.QueryRowContext(ctx, createRestrictionType, restrictionType)
	var i RestrictionType
	err := row.Scan(&i.RestrictionTypeID, &i.RestrictionType)
	return i, err
}

const getRestrictionType = `-- name: GetRestrictionType :one
SELECT restriction_type_id, restriction_type
FROM tbl_restriction_type
WHERE restriction_type = ?
`

func (q *Queries) GetRestrictionType(ctx context.Context, restrictionType string) (RestrictionType, error) {
	row := q.db.QueryRowContext(ctx, getRestrictionType, restrictionType)
	var i RestrictionType
	err := row.Scan(&i.RestrictionTypeID, &i.RestrictionType)
	return i, err
}

const createRestriction = `-- name: CreateRestriction :one
INSERT INTO tbl_restriction (restriction_type_id, restriction, must_be_in)
VALUES (?, ?, ?)
RETURNING restriction_id, restriction_type_id, restriction, must_be_in
`

type CreateRestrictionParams struct {
	RestrictionTypeID int64
	Restriction       string
	MustBeIn          bool
}

func (q *Queries) CreateRestriction(ctx context.Context, arg CreateRestrictionParams) (Restriction, error) {
	row := q.db.QueryRowContext(ctx, createRestriction, arg.RestrictionTypeID, arg.Restriction, arg.MustBeIn)
	var i Restriction
	err := row.Scan(&i.RestrictionID, &i.RestrictionTypeID, &i.Restriction, &i.MustBeIn)
	return i, err
}

const getRestriction = `-- name: GetRestriction :one
SELECT restriction_id, restriction_type_id, restriction, must_be_in
FROM tbl_restriction
WHERE restriction_type_id = ? AND restriction = ? AND must_be_in = ?
`

type GetRestrictionParams struct {
	RestrictionTypeID int64
	Restriction       string
	MustBeIn          bool
}

func (q *Queries) GetRestriction(ctx context.Context, arg GetRestrictionParams) (Restriction, error) {
	row := q.db.QueryRowContext(ctx, getRestriction, arg.RestrictionTypeID, arg.Restriction, arg.MustBeIn)
	var i Restriction
	err := row.Scan(&i.RestrictionID, &i.RestrictionTypeID, &i.Restriction, &i.MustBeIn)
	return i, err
}

const createCourseRestriction = `-- name: CreateCourseRestriction :exec
INSERT INTO tbl_course_restriction (course_data_id, restriction_id)
VALUES (?, ?)
`

type CreateCourseRestrictionParams struct {
	CourseDataID  int64
	RestrictionID int64
}

func (q *Queries) CreateCourseRestriction(ctx context.Context, arg CreateCourseRestrictionParams) error {
	_, err := q.db.ExecContext(ctx, createCourseRestriction, arg.CourseDataID, arg.RestrictionID)
	return err
}

const getCourseRestriction = `-- name: GetCourseRestriction :one
SELECT course_data_id, restriction_id
FROM tbl_course_restriction
WHERE course_data_id = ? AND restriction_id = ?
`

type GetCourseRestrictionParams struct {
	CourseDataID  int64
	RestrictionID int64
}

func (q *Queries) GetCourseRestriction(ctx context.Context, arg GetCourseRestrictionParams) (CourseRestriction, error) {
	row := q.db.QueryRowContext(ctx, getCourseRestriction, arg.CourseDataID, arg.RestrictionID)
	var i CourseRestriction
	err := row.Scan(&i.CourseDataID, &i.RestrictionID)
	return i, err
}

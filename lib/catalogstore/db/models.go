package db

type School struct {
	SchoolID   int64
	SchoolName string
	Subdomain  string
	Timezone   string
}

type ScrapeHistory struct {
	ScrapeID       int64
	ScrapeTime     int64
	HasBeenIndexed bool
}

type Term struct {
	TermID          int64
	SchoolID        int64
	TermCode        int64
	TermDescription string
}

type Course struct {
	CourseID          int64
	TermID            int64
	CourseCode        string
	CourseDescription string
}

type ClassType struct {
	ClassTypeID int64
	ClassType   string
}

type CourseData struct {
	CourseDataID                   int64
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

type Faculty struct {
	FacultyID        int64
	BannerID         []byte
	ScrapeID         int64
	InstructorName   string
	InstructorEmail  string
	InstructorRating int64
}

type CourseFaculty struct {
	CourseDataID int64
	FacultyID    int64
}

type Meeting struct {
	MeetingID              int64
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

type RestrictionType struct {
	RestrictionTypeID int64
	RestrictionType   string
}

type Restriction struct {
	RestrictionID     int64
	RestrictionTypeID int64
	Restriction       string
	MustBeIn          bool
}

type CourseRestriction struct {
	CourseDataID  int64
	RestrictionID int64
}

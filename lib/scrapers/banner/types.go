package banner

// JSON shapes returned by the StudentRegistrationSsb endpoints. Only
// the fields the pipeline stores are declared, the api returns many
// more.

type TermEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type CourseCodeEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Faculty struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
}

type MeetingTime struct {
	Term                   string  `json:"term"`
	CourseReferenceNumber  string  `json:"courseReferenceNumber"`
	Building               string  `json:"building"`
	BuildingDescription    string  `json:"buildingDescription"`
	Campus                 string  `json:"campus"`
	CampusDescription      string  `json:"campusDescription"`
	MeetingType            string  `json:"meetingType"`
	MeetingTypeDescription string  `json:"meetingTypeDescription"`
	StartDate              string  `json:"startDate"`
	EndDate                string  `json:"endDate"`
	BeginTime              string  `json:"beginTime"`
	EndTime                string  `json:"endTime"`
	Room                   string  `json:"room"`
	Category               string  `json:"category"`
	CreditHourSession      float64 `json:"creditHourSession"`
	HoursWeek              float64 `json:"hoursWeek"`
	MeetingScheduleType    string  `json:"meetingScheduleType"`

	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

type MeetingFaculty struct {
	MeetingTime MeetingTime `json:"meetingTime"`
}

type SectionRecord struct {
	Id                             int64            `json:"id"`
	CourseReferenceNumber          string           `json:"courseReferenceNumber"`
	Subject                        string           `json:"subject"`
	SubjectDescription             string           `json:"subjectDescription"`
	SubjectCourse                  string           `json:"subjectCourse"`
	CourseTitle                    string           `json:"courseTitle"`
	SequenceNumber                 string           `json:"sequenceNumber"`
	CampusDescription              string           `json:"campusDescription"`
	ScheduleTypeDescription        string           `json:"scheduleTypeDescription"`
	CreditHours                    int64            `json:"creditHours"`
	MaximumEnrollment              int64            `json:"maximumEnrollment"`
	Enrollment                     int64            `json:"enrollment"`
	SeatsAvailable                 int64            `json:"seatsAvailable"`
	WaitCapacity                   int64            `json:"waitCapacity"`
	WaitCount                      int64            `json:"waitCount"`
	WaitAvailable                  int64            `json:"waitAvailable"`
	CreditHourHigh                 int64            `json:"creditHourHigh"`
	CreditHourLow                  int64            `json:"creditHourLow"`
	OpenSection                    bool             `json:"openSection"`
	LinkIdentifier                 string           `json:"linkIdentifier"`
	IsSectionLinked                bool             `json:"isSectionLinked"`
	InstructionalMethod            string           `json:"instructionalMethod"`
	InstructionalMethodDescription string           `json:"instructionalMethodDescription"`
	Faculty                        []Faculty        `json:"faculty"`
	MeetingsFaculty                []MeetingFaculty `json:"meetingsFaculty"`
}

type RestrictionValue struct {
	Value    string `json:"value"`
	MustBeIn bool   `json:"must_be_in"`
}

type searchResult struct {
	Success    bool            `json:"success"`
	TotalCount int64           `json:"totalCount"`
	Data       []SectionRecord `json:"data"`
}

package catalogstore

import (
	"crypto/sha256"
	"fmt"
)

// InstructorIdentity derives a stable identity for an instructor from
// the only fields the api reliably reports. Identical (name, email)
// pairs collapse to the same row no matter which institution or run
// produced them.
func InstructorIdentity(displayName string, email string) []byte {
	sum := sha256.Sum256([]byte(displayName + email))
	return sum[:]
}

// MeetingIdentity hashes the fields that make a meeting semantically
// distinct. Meetings are content addressed: two fetches of the same
// meeting always map to the same stored row, and a changed time simply
// produces a new row.
func MeetingIdentity(
	crn string,
	termCode int64,
	building string,
	meetingType string,
	startDate string,
	endDate string,
	beginTime string,
	endTime string,
	daysOfWeek int64,
	room string,
) []byte {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d\x00%s\x00%s\x00%s\x00%s\x00%s\x00%s\x00%d\x00%s",
		crn, termCode, building, meetingType,
		startDate, endDate, beginTime, endTime,
		daysOfWeek, room)
	return h.Sum(nil)
}

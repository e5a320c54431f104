package catalogstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstructorIdentity(t *testing.T) {
	a := InstructorIdentity("Jane Doe", "jdoe@example.edu")
	b := InstructorIdentity("Jane Doe", "jdoe@example.edu")
	require.Equal(t, a, b)
	require.Len(t, a, 32)

	require.NotEqual(t, a, InstructorIdentity("Jane Doe", ""))
	require.NotEqual(t, a, InstructorIdentity("jane doe", "jdoe@example.edu"))
}

func TestMeetingIdentity(t *testing.T) {
	base := MeetingIdentity("12345", 202409, "SCI", "CLAS",
		"09/01/2024", "12/15/2024", "0900", "1020", 0b0010101, "101")
	same := MeetingIdentity("12345", 202409, "SCI", "CLAS",
		"09/01/2024", "12/15/2024", "0900", "1020", 0b0010101, "101")
	require.Equal(t, base, same)

	differentRoom := MeetingIdentity("12345", 202409, "SCI", "CLAS",
		"09/01/2024", "12/15/2024", "0900", "1020", 0b0010101, "102")
	require.NotEqual(t, base, differentRoom)

	differentDays := MeetingIdentity("12345", 202409, "SCI", "CLAS",
		"09/01/2024", "12/15/2024", "0900", "1020", 0b0101010, "101")
	require.NotEqual(t, base, differentDays)
}

package catalogstore

// WeekdayFlags mirrors the boolean-per-day shape the registration api
// reports meeting schedules in.
type WeekdayFlags struct {
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

// EncodeWeekdays packs the flags into a 7-bit mask, Monday at bit 0
// through Sunday at bit 6.
func EncodeWeekdays(flags WeekdayFlags) int64 {
	var mask int64
	days := [7]bool{
		flags.Monday,
		flags.Tuesday,
		flags.Wednesday,
		flags.Thursday,
		flags.Friday,
		flags.Saturday,
		flags.Sunday,
	}
	for i, set := range days {
		if set {
			mask |= 1 << i
		}
	}
	return mask
}

// DecodeWeekdays is the inverse of EncodeWeekdays. Bits above the
// seventh are ignored.
func DecodeWeekdays(mask int64) WeekdayFlags {
	return WeekdayFlags{
		Monday:    mask&(1<<0) != 0,
		Tuesday:   mask&(1<<1) != 0,
		Wednesday: mask&(1<<2) != 0,
		Thursday:  mask&(1<<3) != 0,
		Friday:    mask&(1<<4) != 0,
		Saturday:  mask&(1<<5) != 0,
		Sunday:    mask&(1<<6) != 0,
	}
}

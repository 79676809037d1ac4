package convert

// headerDateLen is the width of a YYYYMMDD column label
const headerDateLen = 8

// ParseHeaderDate turns a YYYYMMDD column label into YYYY-MM-DD. Labels that
// are not exactly eight ASCII digits, like "12 days", are not dates. The
// label is not checked against the calendar.
func ParseHeaderDate(label string) (string, bool) {
	if len(label) != headerDateLen {
		return "", false
	}
	for i := 0; i < len(label); i++ {
		if label[i] < '0' || label[i] > '9' {
			return "", false
		}
	}
	return label[:4] + "-" + label[4:6] + "-" + label[6:], true
}

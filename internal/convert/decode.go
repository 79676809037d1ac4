package convert

import (
	"strings"

	"github.com/julianstephens/practicelog/internal/constants"
	"github.com/julianstephens/practicelog/internal/models"
)

// codeMarkers are the only characters of an activity code that carry meaning.
// Anything else ("V", "?", spaces) is annotation left in the spreadsheet.
const codeMarkers = "pPaAXx"

// Rule maps the presence of any of Markers in a cleaned code to a result.
type Rule struct {
	Name    string
	Markers string
	Result  models.DecodedActivity
}

// Matches reports whether the cleaned code contains one of the rule's markers
func (r Rule) Matches(clean string) bool {
	return strings.ContainsAny(clean, r.Markers)
}

// Rules is evaluated top to bottom and the first match wins. Performance
// markers outrank practice markers, and practice rules are listed by
// descending level so the first match is the highest level present.
var Rules = []Rule{
	{
		Name:    "satisfactory performance",
		Markers: "X",
		Result:  models.DecodedActivity{Type: models.ActivityPerformance, Level: 2, PerformanceType: constants.DefaultPerformanceType},
	},
	{
		Name:    "unsatisfactory performance",
		Markers: "x",
		Result:  models.DecodedActivity{Type: models.ActivityPerformance, Level: 1, PerformanceType: constants.DefaultPerformanceType},
	},
	{
		Name:    "perfect complete practice",
		Markers: "P",
		Result:  models.DecodedActivity{Type: models.ActivityPractice, Level: 4, PerformanceType: constants.DefaultPerformanceType},
	},
	{
		Name:    "complete with review practice",
		Markers: "A",
		Result:  models.DecodedActivity{Type: models.ActivityPractice, Level: 2, PerformanceType: constants.DefaultPerformanceType},
	},
	{
		Name:    "essentials practice",
		Markers: "pa",
		Result:  models.DecodedActivity{Type: models.ActivityPractice, Level: 1, PerformanceType: constants.DefaultPerformanceType},
	},
}

// CleanCode drops every character that is not an activity marker
func CleanCode(code string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(codeMarkers, r) {
			return r
		}
		return -1
	}, code)
}

// Match returns the rule that decides the code. It returns false when the
// code holds no recognized marker.
func Match(code string) (Rule, bool) {
	clean := CleanCode(code)
	if clean == "" {
		return Rule{}, false
	}
	for _, rule := range Rules {
		if rule.Matches(clean) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Decode interprets a spreadsheet activity code. It returns false when the
// code holds no recognized marker and the cell should be ignored.
func Decode(code string) (models.DecodedActivity, bool) {
	rule, ok := Match(code)
	if !ok {
		return models.DecodedActivity{}, false
	}
	return rule.Result, true
}

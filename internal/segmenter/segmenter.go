package segmenter

import (
	"regexp"
	"strings"

	"rules-embed/internal/domain"
)

// headerPattern matches the start of a rule entry: three digits, optional
// dotted sub-numbers, optional trailing letter ("100", "100.1", "205.3a").
// Anything after the number on the same line is the inline rule body.
var headerPattern = regexp.MustCompile(`^(\d{3}(?:\.\d+)*[a-z]?)\s*(.*)$`)

// Segment splits the raw rules text into numbered rule records, in document
// order. A header line closes the previous record and opens a new one; other
// lines are appended to the record in progress. Lines before the first header
// are dropped, and repeated rule numbers yield repeated records. Segment
// never fails: input without headers simply yields no records.
func Segment(raw string) []domain.RuleRecord {
	var (
		records []domain.RuleRecord
		number  string
		buffer  []string
	)
	flush := func() {
		if number == "" {
			return
		}
		records = append(records, domain.RuleRecord{
			Number: number,
			Text:   strings.TrimSpace(strings.Join(buffer, "\n")),
		})
		number = ""
		buffer = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			flush()
			number = m[1]
			buffer = append(buffer, line)
			continue
		}
		if number != "" {
			buffer = append(buffer, line)
		}
	}
	flush()
	return records
}

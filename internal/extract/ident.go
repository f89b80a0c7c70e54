package extract

import (
	"regexp"
	"strings"
)

const stateSuffix = "state"

var nonLetter = regexp.MustCompile(`[^a-z]`)

// StateIdent normalizes a state's long name ("Before attribute name state")
// into its camel-case identifier ("BeforeAttributeName"). The name is
// lower-cased, the trailing "state" suffix (required, case-insensitively) is
// stripped, every non-letter becomes a word break, and each word is
// title-cased and concatenated. Section numbers in heading text wash out with
// the other non-letters.
//
// The function is pure; it returns a MalformedStateNameError when the suffix
// is missing.
func StateIdent(longname string) (string, error) {
	lower := strings.ToLower(longname)
	if !strings.HasSuffix(lower, stateSuffix) {
		return "", &MalformedStateNameError{LongName: longname}
	}
	lower = lower[:len(lower)-len(stateSuffix)]

	var b strings.Builder
	for _, w := range strings.Fields(nonLetter.ReplaceAllString(lower, " ")) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String(), nil
}

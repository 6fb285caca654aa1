package filter

import "strings"

// Keywords is a relevance gate over subject lines. A message passes when
// its lowercased subject contains at least one keyword. False negatives
// are accepted; false positives only cost one extraction call.
type Keywords []string

// DefaultKeywords marks a message as plausibly job-application related.
func DefaultKeywords() Keywords {
	return Keywords{
		"job",
		"application",
		"career",
		"hiring",
		"interview",
		"position",
		"offer",
		"role",
		"rejected",
	}
}

// New returns the configured keyword set, or the default set when the
// configuration leaves it empty.
func New(configured []string) Keywords {
	if len(configured) == 0 {
		return DefaultKeywords()
	}
	out := make(Keywords, 0, len(configured))
	for _, k := range configured {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return DefaultKeywords()
	}
	return out
}

// Match reports whether the subject contains any keyword, case-insensitively.
func (k Keywords) Match(subject string) bool {
	subject = strings.ToLower(subject)
	for _, keyword := range k {
		if strings.Contains(subject, keyword) {
			return true
		}
	}
	return false
}

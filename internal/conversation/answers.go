// Package conversation drives the question-and-answer flow that collects a
// recipe from the user, and turns free-form replies into structured answers.
package conversation

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/costcook/internal/logger"
)

// Sentinel is the reply that ends ingredient entry.
const Sentinel = "xxx"

// Reply classifies a short answer.
type Reply int

const (
	ReplyUnknown Reply = iota
	ReplyYes
	ReplyNo
	ReplyDone // the sentinel
)

// String returns a human-readable reply type.
func (r Reply) String() string {
	switch r {
	case ReplyYes:
		return "yes"
	case ReplyNo:
		return "no"
	case ReplyDone:
		return "done"
	default:
		return "unknown"
	}
}

// AnswerParser matches replies against keyword patterns.
type AnswerParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex *regexp.Regexp
	reply Reply
}

// NewAnswerParser creates a keyword-based reply parser. A yes/no answer
// matches the whole word or its first letter.
func NewAnswerParser(log *logger.Logger) *AnswerParser {
	return &AnswerParser{
		log: log,
		patterns: []patternRule{
			{regexp.MustCompile(`(?i)^(yes|y)$`), ReplyYes},
			{regexp.MustCompile(`(?i)^(no|n)$`), ReplyNo},
			{regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(Sentinel) + `$`), ReplyDone},
		},
	}
}

// Parse classifies input. Surrounding whitespace is ignored.
func (p *AnswerParser) Parse(input string) Reply {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ReplyUnknown
	}
	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("reply %q matched %s", trimmed, rule.reply)
			return rule.reply
		}
	}
	return ReplyUnknown
}

// IsSentinel reports whether input ends ingredient entry.
func (p *AnswerParser) IsSentinel(input string) bool {
	return p.Parse(input) == ReplyDone
}

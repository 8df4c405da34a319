package meetinglog

import (
	"regexp"
	"strings"
)

const (
	summaryMaxLen = 200
	maxTopics     = 3
)

var (
	canonicalTicketRe = regexp.MustCompile(`\[\[(?:Feature|Bug|Misc|Discussion)\s*#(\d+)\]\]`)
	bareTicketRe      = regexp.MustCompile(`\[(?:Feature|Bug|Misc)\s*#(\d+)\]`)

	topicHeadingRe = regexp.MustCompile(`\A###\s+(.+)`)

	// Ticket references inside topic headings, in every dialect.
	topicCanonicalLinkRe = regexp.MustCompile(`\[\[(?:Feature|Bug|Misc|Discussion)\s*#\d+\]\]\([^)]*\)`)
	topicAltLinkRe       = regexp.MustCompile(`\[\[(?:Feature|Bug|Misc|Discussion)\s*#\d+\]\([^\]]*\)\]`)
	topicBareRe          = regexp.MustCompile(`\[(?:Feature|Bug|Misc|Discussion)\s*#\d+\](?:\([^)]*\))?`)
	trailingParenRe      = regexp.MustCompile(`\(.*?\)\s*\z`)
	aboutReleaseRe       = regexp.MustCompile(`(?i)\AAbout release`)
)

// extractTickets collects ticket numbers referenced in a normalised body,
// first occurrence order, duplicates removed. The canonical [[Kind #N]]
// form is scanned first on each line, then the bare [Kind #N] form; a bare
// match immediately followed by "(" is a markdown link, not a reference.
func extractTickets(body string) []string {
	var tickets []string
	seen := make(map[string]struct{})
	add := func(num string) {
		if _, dup := seen[num]; dup {
			return
		}
		seen[num] = struct{}{}
		tickets = append(tickets, num)
	}

	for _, line := range strings.Split(body, "\n") {
		for _, m := range canonicalTicketRe.FindAllStringSubmatch(line, -1) {
			add(m[1])
		}
		for _, m := range bareTicketRe.FindAllStringSubmatchIndex(line, -1) {
			if end := m[1]; end < len(line) && line[end] == '(' {
				continue
			}
			add(line[m[2]:m[3]])
		}
	}
	return tickets
}

// summaryMarkdown builds a short markdown synopsis of a normalised body.
// It prefers the first topic headings with their ticket references and
// trailing attributions stripped; when no usable heading exists it falls
// back to the first meaningful prose lines. The result is capped at
// summaryMaxLen characters without cutting inside a backtick pair or an
// unclosed bracket.
func summaryMarkdown(body string) string {
	lines := strings.Split(body, "\n")

	var topics []string
	for _, line := range lines {
		m := topicHeadingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		topic := strings.TrimSpace(m[1])
		topic = topicCanonicalLinkRe.ReplaceAllString(topic, "")
		topic = topicAltLinkRe.ReplaceAllString(topic, "")
		topic = topicBareRe.ReplaceAllString(topic, "")
		topic = trailingParenRe.ReplaceAllString(topic, "")
		topic = strings.TrimSpace(topic)
		if topic == "" || aboutReleaseRe.MatchString(topic) {
			continue
		}
		topics = append(topics, topic)
		if len(topics) >= maxTopics {
			break
		}
	}

	var summary string
	if len(topics) > 0 {
		summary = strings.Join(topics, " &middot; ")
	} else {
		var prose []string
		for _, line := range lines {
			if strings.TrimSpace(line) == "" ||
				strings.HasPrefix(line, "#") ||
				strings.HasPrefix(line, "http") ||
				strings.HasPrefix(line, "*") ||
				strings.HasPrefix(line, "-") {
				continue
			}
			prose = append(prose, strings.TrimSpace(line))
			if len(prose) == 2 {
				break
			}
		}
		summary = strings.Join(prose, " ")
	}

	return truncateSummary(summary)
}

// truncateSummary caps a summary at summaryMaxLen characters. A cut that
// would land inside a backtick pair retreats to before the last backtick;
// one leaving more "[" than "]" retreats to before the last "[".
func truncateSummary(summary string) string {
	runes := []rune(summary)
	if len(runes) <= summaryMaxLen {
		return summary
	}

	truncated := runes[:summaryMaxLen+1]
	if countRune(truncated, '`')%2 == 1 {
		if i := lastIndexRune(truncated, '`'); i >= 0 {
			truncated = truncated[:i]
		}
	}
	if countRune(truncated, '[') > countRune(truncated, ']') {
		if i := lastIndexRune(truncated, '['); i >= 0 {
			truncated = truncated[:i]
		}
	}
	return strings.TrimRightFunc(string(truncated), isSpaceASCII) + "..."
}

func countRune(runes []rune, target rune) int {
	n := 0
	for _, r := range runes {
		if r == target {
			n++
		}
	}
	return n
}

func lastIndexRune(runes []rune, target rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == target {
			return i
		}
	}
	return -1
}

package meetinglog

import (
	"net/url"
	"regexp"
)

var (
	// Redacted "[secret]" sections, oldest conventions last.
	secretSectionRe   = regexp.MustCompile(`(?m)^##\s*Check security tickets\s*\n+\[secret\]\s*\n+`)
	secretUnheadedRe  = regexp.MustCompile(`(?m)^Check security tickets\s*\n\[secret\]\s*\n+`)
	secretLineRe      = regexp.MustCompile(`(?m)^\[secret\]\s*\n+`)
	googleRedirectRe  = regexp.MustCompile(`https://www\.google\.com/url\?q=(.*?)&sa=D[^)\s\]]*`)
	escapedBracketsRe = regexp.MustCompile(`\\\[(\[[^\]]*\]\([^)]+\))\\\]`)
	altTicketLinkRe   = regexp.MustCompile(`\[\[((?:Feature|Bug|Misc|Discussion)\s*#\d+)\]\(([^)]+)\)\]`)
	openTicketLinkRe  = regexp.MustCompile(`\[\[((?:Feature|Bug|Misc|Discussion)\s*#\d+)\]\(([^)]+)\)(\s)`)
)

// Normalise applies the ordered cleanup rewrites to a raw meeting body.
// Every rewrite is idempotent, so re-normalising already clean text is a
// no-op. Ticket-link canonicalisation must run last of the link rules
// because ticket extraction only recognises the canonical form.
func Normalise(body string) string {
	body = filterSecrets(body)
	body = unwrapGoogleRedirects(body)
	body = fixEscapedBracketLinks(body)
	body = normaliseTicketLinks(body)
	body = fixUnclosedBracketLinks(body)
	return body
}

// filterSecrets removes redacted "[secret]" sections, including the
// "Check security tickets" heading that usually introduces them.
func filterSecrets(body string) string {
	body = secretSectionRe.ReplaceAllString(body, "")
	body = secretUnheadedRe.ReplaceAllString(body, "")
	body = secretLineRe.ReplaceAllString(body, "")
	return body
}

// unwrapGoogleRedirects replaces Google Docs redirect URLs with their
// decoded target. An undecodable target is left as found rather than
// failing the document.
func unwrapGoogleRedirects(body string) string {
	return googleRedirectRe.ReplaceAllStringFunc(body, func(match string) string {
		target := googleRedirectRe.FindStringSubmatch(match)[1]
		decoded, err := url.QueryUnescape(target)
		if err != nil {
			return match
		}
		return decoded
	})
}

// fixEscapedBracketLinks unwraps the Google Docs export artifact
// \[[text](url)\] to a plain markdown link.
func fixEscapedBracketLinks(body string) string {
	return escapedBracketsRe.ReplaceAllString(body, "${1}")
}

// normaliseTicketLinks rewrites the alternate [[Kind #N](url)] dialect
// to the canonical [[Kind #N]](url) form.
func normaliseTicketLinks(body string) string {
	return altTicketLinkRe.ReplaceAllString(body, "[[${1}]](${2})")
}

// fixUnclosedBracketLinks repairs [[Kind #N](url) links missing their
// closing double bracket.
func fixUnclosedBracketLinks(body string) string {
	return openTicketLinkRe.ReplaceAllString(body, "[[${1}]](${2})${3}")
}

package meetinglog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSecrets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "headed section",
			input: "## Check security tickets\n\n[secret]\n\n## Next topic\nhello\n",
			want:  "## Next topic\nhello\n",
		},
		{
			name:  "unheaded section",
			input: "Check security tickets\n[secret]\n\nhello\n",
			want:  "hello\n",
		},
		{
			name:  "standalone secret line",
			input: "intro\n[secret]\n\noutro\n",
			want:  "intro\noutro\n",
		},
		{
			name:  "no secrets",
			input: "## Agenda\nnothing hidden\n",
			want:  "## Agenda\nnothing hidden\n",
		},
		{
			name:  "secret mentioned inline is kept",
			input: "we discussed the [secret] project\n",
			want:  "we discussed the [secret] project\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterSecrets(tt.input))
		})
	}
}

func TestUnwrapGoogleRedirects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "decodes target",
			input: "see https://www.google.com/url?q=https%3A%2F%2Fexample.org%2Fx&sa=D&usg=abc here",
			want:  "see https://example.org/x here",
		},
		{
			name:  "stops at closing paren",
			input: "[link](https://www.google.com/url?q=https%3A%2F%2Fexample.org&sa=D&usg=abc)",
			want:  "[link](https://example.org)",
		},
		{
			name:  "undecodable target kept as is",
			input: "x https://www.google.com/url?q=bad%zz&sa=D y",
			want:  "x https://www.google.com/url?q=bad%zz&sa=D y",
		},
		{
			name:  "plain urls untouched",
			input: "https://example.org/page",
			want:  "https://example.org/page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unwrapGoogleRedirects(tt.input))
		})
	}
}

func TestFixEscapedBracketLinks(t *testing.T) {
	assert.Equal(t,
		"see [the doc](https://example.org) here",
		fixEscapedBracketLinks(`see \[[the doc](https://example.org)\] here`))

	// Unescaped links are untouched.
	assert.Equal(t,
		"see [the doc](https://example.org) here",
		fixEscapedBracketLinks("see [the doc](https://example.org) here"))
}

func TestNormaliseTicketLinks(t *testing.T) {
	assert.Equal(t,
		"[[Bug #123]](https://example.org/123)",
		normaliseTicketLinks("[[Bug #123](https://example.org/123)]"))

	// Canonical form is a fixed point.
	assert.Equal(t,
		"[[Bug #123]](https://example.org/123)",
		normaliseTicketLinks("[[Bug #123]](https://example.org/123)"))
}

func TestFixUnclosedBracketLinks(t *testing.T) {
	assert.Equal(t,
		"[[Feature #9]](https://example.org/9) discussed",
		fixUnclosedBracketLinks("[[Feature #9](https://example.org/9) discussed"))

	// Requires trailing whitespace after the url.
	assert.Equal(t,
		"[[Feature #9](https://example.org/9)",
		fixUnclosedBracketLinks("[[Feature #9](https://example.org/9)"))
}

func TestNormaliseIsIdempotent(t *testing.T) {
	inputs := []string{
		"## Check security tickets\n\n[secret]\n\n### [[Bug #1](http://x)] fix\n",
		`\[[doc](https://www.google.com/url?q=https%3A%2F%2Fexample.org&sa=D&usg=a)\]` + "\n",
		"[[Discussion #7](http://y) follow up\n",
		"plain text, no rewrites\n",
	}

	for _, input := range inputs {
		once := Normalise(input)
		assert.Equal(t, once, Normalise(once), "input %q", input)
	}
}

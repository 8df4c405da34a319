package meetinglog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTickets(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "canonical references",
			body: "[[Bug #5]] then [[Feature #9]]\n",
			want: []string{"5", "9"},
		},
		{
			name: "duplicates removed order preserved",
			body: "[[Bug #5]] again [[Bug #5]] then [[Feature #9]]\n",
			want: []string{"5", "9"},
		},
		{
			name: "bare references",
			body: "[Bug #7] and [Misc #8]\n",
			want: []string{"7", "8"},
		},
		{
			name: "bare followed by paren is a link not a reference",
			body: "[Bug #7](https://example.org/7)\n",
			want: nil,
		},
		{
			name: "bare discussion is not recognised",
			body: "[Discussion #3]\n",
			want: nil,
		},
		{
			name: "canonical with link url",
			body: "[[Misc #12]](https://example.org/12)\n",
			want: []string{"12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTickets(tt.body))
		})
	}
}

func TestSummaryMarkdownFromTopics(t *testing.T) {
	body := "### [[Bug #100]](http://x) Fix GC crash (ko1)\n" +
		"text\n" +
		"### About release 3.2\n" +
		"### [[Feature #200](http://y)] Add syntax\n" +
		"### [Misc #300] Meeting schedule\n" +
		"### fourth topic never reached\n"

	got := summaryMarkdown(body)
	assert.Equal(t, "Fix GC crash &middot; Add syntax &middot; Meeting schedule", got)
}

func TestSummaryMarkdownSkipsEmptyTopics(t *testing.T) {
	body := "### [[Bug #1]](http://x)\n### Real topic\n"
	assert.Equal(t, "Real topic", summaryMarkdown(body))
}

func TestSummaryMarkdownFallbackProse(t *testing.T) {
	body := "# Title\n" +
		"\n" +
		"* bullet\n" +
		"- dash\n" +
		"http://example.org\n" +
		"  First real sentence.\n" +
		"Second sentence.\n" +
		"Third is ignored.\n"

	assert.Equal(t, "First real sentence. Second sentence.", summaryMarkdown(body))
}

func TestSummaryMarkdownEmptyBody(t *testing.T) {
	assert.Equal(t, "", summaryMarkdown(""))
}

func TestTruncateSummary(t *testing.T) {
	t.Run("short input untouched", func(t *testing.T) {
		assert.Equal(t, "short", truncateSummary("short"))
	})

	t.Run("long input capped with ellipsis", func(t *testing.T) {
		long := strings.Repeat("a", 250)
		got := truncateSummary(long)
		assert.Equal(t, strings.Repeat("a", 201)+"...", got)
	})

	t.Run("never cuts inside a backtick pair", func(t *testing.T) {
		long := strings.Repeat("a", 195) + " `code span that runs long`"
		got := truncateSummary(long)
		assert.Equal(t, 0, strings.Count(got, "`")%2)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("never cuts inside an open bracket", func(t *testing.T) {
		long := strings.Repeat("a", 195) + " [link text](http://example.org)"
		got := truncateSummary(long)
		assert.Equal(t, strings.Count(got, "["), strings.Count(got, "]"))
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("multibyte text counts characters not bytes", func(t *testing.T) {
		long := strings.Repeat("会", 250)
		got := truncateSummary(long)
		assert.Equal(t, strings.Repeat("会", 201)+"...", got)
	})
}

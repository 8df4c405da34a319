package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

func datedMeeting(id string, lang domain.Language, y, m, d int) *domain.Meeting {
	date := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	slug := date.Format("01-02")
	if lang == domain.LanguageJA {
		slug += "-ja"
	}
	return &domain.Meeting{
		ID:       id,
		Language: lang,
		Date:     &date,
		Year:     y,
		Month:    m,
		Day:      d,
		Title:    date.Format("Jan 2006") + " Meeting",
		Slug:     slug,
		URL:      "/meetings/" + date.Format("2006") + "/" + slug + "/",
	}
}

func TestPairLanguages(t *testing.T) {
	en := datedMeeting("en", domain.LanguageEN, 2008, 2, 15)
	ja := datedMeeting("ja", domain.LanguageJA, 2008, 2, 15)
	other := datedMeeting("other", domain.LanguageEN, 2008, 3, 10)

	out := PairLanguages([]*domain.Meeting{en, ja, other})
	require.Len(t, out, 3)

	assert.Equal(t, ja.URL, out[0].LanguagePairURL)
	assert.Equal(t, en.URL, out[1].LanguagePairURL)
	assert.Empty(t, out[2].LanguagePairURL)

	// Inputs are untouched.
	assert.Empty(t, en.LanguagePairURL)
	assert.Empty(t, ja.LanguagePairURL)
}

func TestPairLanguagesRequiresBothLanguages(t *testing.T) {
	a := datedMeeting("a", domain.LanguageEN, 2010, 5, 1)
	b := datedMeeting("b", domain.LanguageEN, 2010, 5, 1)

	out := PairLanguages([]*domain.Meeting{a, b})
	assert.Empty(t, out[0].LanguagePairURL)
	assert.Empty(t, out[1].LanguagePairURL)
}

func TestPairLanguagesIgnoresUndated(t *testing.T) {
	undated := &domain.Meeting{ID: "x", Language: domain.LanguageEN, Year: 2010}
	ja := datedMeeting("ja", domain.LanguageJA, 2010, 5, 1)

	out := PairLanguages([]*domain.Meeting{undated, ja})
	assert.Empty(t, out[0].LanguagePairURL)
	assert.Empty(t, out[1].LanguagePairURL)
}

func TestDisambiguateTitles(t *testing.T) {
	m1 := datedMeeting("1", domain.LanguageEN, 2019, 3, 25)
	m2 := datedMeeting("2", domain.LanguageEN, 2019, 3, 5)
	m3 := datedMeeting("3", domain.LanguageEN, 2019, 3, 14)
	lone := datedMeeting("4", domain.LanguageEN, 2019, 4, 1)

	out := DisambiguateTitles([]*domain.Meeting{m1, m2, m3, lone})

	// Numbering is chronological, independent of input order.
	assert.Equal(t, "Mar 2019 Meeting #3", out[0].Title)
	assert.Equal(t, "Mar 2019 Meeting #1", out[1].Title)
	assert.Equal(t, "Mar 2019 Meeting #2", out[2].Title)
	assert.Equal(t, "Apr 2019 Meeting", out[3].Title)

	// Inputs are untouched.
	assert.Equal(t, "Mar 2019 Meeting", m1.Title)
}

func TestDisambiguateTitlesSkipsPairedJapanese(t *testing.T) {
	en := datedMeeting("en", domain.LanguageEN, 2008, 2, 15)
	ja := datedMeeting("ja", domain.LanguageJA, 2008, 2, 15)
	second := datedMeeting("2nd", domain.LanguageEN, 2008, 2, 28)

	meetings := PairLanguages([]*domain.Meeting{en, ja, second})
	out := DisambiguateTitles(meetings)

	// The paired JA record does not occupy a slot; the two EN meetings
	// are numbered and the JA title is left alone.
	assert.Equal(t, "Feb 2008 Meeting #1", out[0].Title)
	assert.Equal(t, "Feb 2008 Meeting", out[1].Title)
	assert.Equal(t, "Feb 2008 Meeting #2", out[2].Title)
}

func TestDisambiguateTitlesCountsUnpairedJapanese(t *testing.T) {
	ja := datedMeeting("ja", domain.LanguageJA, 2008, 2, 15)
	en := datedMeeting("en", domain.LanguageEN, 2008, 2, 28)

	out := DisambiguateTitles([]*domain.Meeting{ja, en})

	assert.Equal(t, "Feb 2008 Meeting #1", out[0].Title)
	assert.Equal(t, "Feb 2008 Meeting #2", out[1].Title)
}

func TestSortByDateDesc(t *testing.T) {
	old := datedMeeting("old", domain.LanguageEN, 2018, 1, 10)
	recent := datedMeeting("new", domain.LanguageEN, 2020, 6, 1)
	undated := &domain.Meeting{ID: "undated", Year: 2019}

	out := SortByDateDesc([]*domain.Meeting{old, undated, recent})
	require.Len(t, out, 3)

	assert.Equal(t, "new", out[0].ID)
	assert.Equal(t, "undated", out[1].ID, "dateless records sort at Jan 1 of their year")
	assert.Equal(t, "old", out[2].ID)
}

package meetinglog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
)

func TestExtractMetadataDevMeeting(t *testing.T) {
	md, err := extractMetadata("2019/DevMeeting-2019-03-14.md", false)
	require.NoError(t, err)

	require.NotNil(t, md.Date)
	assert.Equal(t, time.Date(2019, time.March, 14, 0, 0, 0, 0, time.UTC), *md.Date)
	assert.Equal(t, 2019, md.Year)
	assert.Equal(t, 3, md.Month)
	assert.Equal(t, 14, md.Day)
	assert.Equal(t, "Mar 2019 Meeting", md.Title)
	assert.Equal(t, "03-14", md.Slug)
	assert.Equal(t, "/meetings/2019/03-14/", md.URL)
	assert.False(t, md.forceJapanese)
}

func TestExtractMetadataDevMeetingJapanese(t *testing.T) {
	t.Run("marker wins without declared language", func(t *testing.T) {
		md, err := extractMetadata("2019/DevMeeting-2019-03-14-JA.md", false)
		require.NoError(t, err)

		assert.Equal(t, "03-14-ja", md.Slug)
		assert.Equal(t, "/meetings/2019/03-14-ja/", md.URL)
		assert.True(t, md.forceJapanese)
	})

	t.Run("frontmatter language suppresses marker", func(t *testing.T) {
		md, err := extractMetadata("2019/DevMeeting-2019-03-14-JA.md", true)
		require.NoError(t, err)

		assert.Equal(t, "03-14", md.Slug)
		assert.False(t, md.forceJapanese)
	})
}

func TestExtractMetadataDevelopersMeeting(t *testing.T) {
	md, err := extractMetadata("2013/DevelopersMeeting20131129Japan.md", false)
	require.NoError(t, err)

	require.NotNil(t, md.Date)
	assert.Equal(t, "Nov 2013 Meeting", md.Title)
	assert.Equal(t, "11-29", md.Slug)
	assert.False(t, md.forceJapanese, "no-separator convention never forces language")
}

func TestExtractMetadataImpossibleDate(t *testing.T) {
	_, err := extractMetadata("2019/DevMeeting-2019-02-30.md", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = extractMetadata("2013/DevelopersMeeting20131340Japan.md", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractMetadataDevCamp(t *testing.T) {
	t.Run("valid date from year segment", func(t *testing.T) {
		md, err := extractMetadata("2023/DevCamp-09-12.md", false)
		require.NoError(t, err)

		require.NotNil(t, md.Date)
		assert.Equal(t, "Sep 2023 DevCamp", md.Title)
		assert.Equal(t, "devcamp-09-12", md.Slug)
		assert.Equal(t, 9, md.Month)
		assert.Equal(t, 12, md.Day)
	})

	t.Run("impossible date keeps month and day", func(t *testing.T) {
		md, err := extractMetadata("2023/DevCamp-02-30.md", false)
		require.NoError(t, err)

		assert.Nil(t, md.Date)
		assert.Equal(t, 2, md.Month)
		assert.Equal(t, 30, md.Day)
		assert.Equal(t, " 2023 DevCamp", md.Title)
		assert.Equal(t, "devcamp-02-30", md.Slug)
	})
}

func TestExtractMetadataFallback(t *testing.T) {
	md, err := extractMetadata("2007/Meeting Notes (Draft).md", false)
	require.NoError(t, err)

	assert.Nil(t, md.Date)
	assert.Equal(t, 2007, md.Year)
	assert.Equal(t, 1, md.Month)
	assert.Equal(t, 1, md.Day)
	assert.Equal(t, "Meeting Notes (Draft)", md.Title)
	assert.Equal(t, "meeting-notes--draft-", md.Slug)
	assert.Equal(t, "/meetings/2007/meeting-notes--draft-/", md.URL)
}

func TestExtractMetadataYearFromDirectory(t *testing.T) {
	// The directory segment is authoritative even when the filename
	// carries a different year.
	md, err := extractMetadata("2020/DevMeeting-2019-03-14.md", false)
	require.NoError(t, err)

	assert.Equal(t, 2020, md.Year)
	require.NotNil(t, md.Date)
	assert.Equal(t, 2019, md.Date.Year())
	assert.Equal(t, "/meetings/2020/03-14/", md.URL)
}

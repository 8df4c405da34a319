package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/minutes-cli/internal/core/domain"
	"github.com/custodia-labs/minutes-cli/internal/logger"
)

// The corpus passes run once, after every document is extracted, and are
// the only stages that look across documents. Order matters: pairing must
// run before disambiguation because disambiguation skips Japanese records
// that have an English counterpart.

// PairLanguages links records that describe the same calendar date in
// different languages. For each date carrying both an "en" and a "ja"
// record, the first of each gets the other's URL as its LanguagePairURL.
// The input is not mutated; updated copies are returned.
func PairLanguages(meetings []*domain.Meeting) []*domain.Meeting {
	out := cloneMeetings(meetings)

	byDate := make(map[string][]*domain.Meeting)
	for _, m := range out {
		if m.Date == nil {
			continue
		}
		key := m.DateString()
		byDate[key] = append(byDate[key], m)
	}

	for _, group := range byDate {
		if len(group) < 2 {
			continue
		}
		var en, ja *domain.Meeting
		for _, m := range group {
			if en == nil && m.Language == domain.LanguageEN {
				en = m
			}
			if ja == nil && m.Language == domain.LanguageJA {
				ja = m
			}
		}
		if en != nil && ja != nil {
			en.LanguagePairURL = ja.URL
			ja.LanguagePairURL = en.URL
			logger.Debug("Language pair: %s <-> %s", en.SourcePath, ja.SourcePath)
		}
	}

	return out
}

// DisambiguateTitles appends " #N" to titles of months holding more than
// one meeting, numbered chronologically. Records without a date never
// collide; Japanese records with an English pair are skipped because the
// English record already represents that slot. The input is not mutated.
func DisambiguateTitles(meetings []*domain.Meeting) []*domain.Meeting {
	out := cloneMeetings(meetings)

	byMonth := make(map[string][]*domain.Meeting)
	for _, m := range out {
		if m.Date == nil {
			continue
		}
		if m.Language == domain.LanguageJA && m.LanguagePairURL != "" {
			continue
		}
		key := fmt.Sprintf("%d-%02d", m.Year, m.Month)
		byMonth[key] = append(byMonth[key], m)
	}

	for _, group := range byMonth {
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(*group[j].Date)
		})
		for i, m := range group {
			m.Title = fmt.Sprintf("%s #%d", m.Title, i+1)
		}
	}

	return out
}

// SortByDateDesc orders meetings newest first. Records without a full date
// sort at January 1 of their year. The input is not mutated.
func SortByDateDesc(meetings []*domain.Meeting) []*domain.Meeting {
	out := make([]*domain.Meeting, len(meetings))
	copy(out, meetings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortDate().After(out[j].SortDate())
	})
	return out
}

func cloneMeetings(meetings []*domain.Meeting) []*domain.Meeting {
	out := make([]*domain.Meeting, len(meetings))
	for i, m := range meetings {
		clone := *m
		out[i] = &clone
	}
	return out
}

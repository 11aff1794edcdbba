package tui

import (
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/mihrab-app/mihrab/internal/quran"
	"github.com/mihrab-app/mihrab/internal/repository"
	"github.com/mihrab-app/mihrab/internal/tui/components/footer"
	"github.com/mihrab-app/mihrab/internal/tui/components/verseitem"
	"github.com/mihrab-app/mihrab/internal/tui/theme"
)

const versesShown = 3 // verses rendered around the selection

type QuranState struct {
	Surahs []quran.Surah
	Err    error

	SurahIdx int
	Verses   []quran.Verse // nil when the surah's text is not bundled
	VerseIdx int

	ShowTranslation bool

	Bookmark    repository.Bookmark
	HasBookmark bool

	Status string // transient feedback line
}

func newQuranState(showTranslation bool) QuranState {
	s := QuranState{ShowTranslation: showTranslation}

	s.Surahs, s.Err = quran.Surahs()
	if s.Err == nil {
		s.loadVerses()
	}

	return s
}

func (s *QuranState) surah() quran.Surah {
	return s.Surahs[s.SurahIdx]
}

func (s *QuranState) loadVerses() {
	s.Verses = nil
	s.VerseIdx = 0
	s.Status = ""

	verses, err := quran.Verses(s.surah().Number)
	switch {
	case err == nil:
		s.Verses = verses
	case errors.Is(err, quran.ErrTextNotBundled):
		// metadata only, the view says so
	default:
		s.Err = err
	}
}

func (s *QuranState) nextSurah() {
	if s.SurahIdx < len(s.Surahs)-1 {
		s.SurahIdx++
		s.loadVerses()
	}
}

func (s *QuranState) prevSurah() {
	if s.SurahIdx > 0 {
		s.SurahIdx--
		s.loadVerses()
	}
}

func (s *QuranState) nextVerse() {
	if s.VerseIdx < len(s.Verses)-1 {
		s.VerseIdx++
	}
}

func (s *QuranState) prevVerse() {
	if s.VerseIdx > 0 {
		s.VerseIdx--
	}
}

// jumpToBookmark moves the selection to the saved position. It is a no-op
// when no bookmark exists or its surah's text is not bundled.
func (s *QuranState) jumpToBookmark() {
	if !s.HasBookmark {
		return
	}

	for i, surah := range s.Surahs {
		if surah.Number == s.Bookmark.Surah {
			s.SurahIdx = i
			s.loadVerses()
			if idx := s.Bookmark.Verse - 1; idx >= 0 && idx < len(s.Verses) {
				s.VerseIdx = idx
			}
			return
		}
	}
}

func (m *Model) QuranView() string {
	q := &m.state.quran

	if q.Err != nil {
		return m.errorView(q.Err)
	}
	if len(q.Surahs) == 0 {
		return m.theme.TextMuted().Render("loading corpus...")
	}

	surah := q.surah()

	title := m.theme.Base().Bold(true).Render(
		fmt.Sprintf("%d. %s  %s", surah.Number, surah.Name, surah.Arabic),
	)
	subtitle := m.theme.TextMuted().Render(
		fmt.Sprintf("%s · %s · %d verses", surah.Meaning, surah.Revelation, surah.Verses),
	)

	sections := []string{title, subtitle, ""}

	if q.Verses == nil {
		sections = append(sections,
			m.theme.TextMuted().Render("text for this surah is not bundled"),
		)
	} else {
		start := q.VerseIdx - versesShown/2
		if start > len(q.Verses)-versesShown {
			start = len(q.Verses) - versesShown
		}
		if start < 0 {
			start = 0
		}
		end := min(start+versesShown, len(q.Verses))

		width := min(m.viewportWidth-8, 72)
		for _, v := range q.Verses[start:end] {
			item := verseitem.Item{
				Verse:           v,
				Selected:        v.Number == q.Verses[q.VerseIdx].Number,
				Bookmarked:      q.HasBookmark && q.Bookmark.Surah == v.Surah && q.Bookmark.Verse == v.Number,
				ShowTranslation: q.ShowTranslation,
				Width:           width,
				Theme:           m.theme,
			}
			sections = append(sections, item.Render(), "")
		}
	}

	if q.Status != "" {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.ColorGold).Render(q.Status),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) quranFooterView() string {
	hints := "h/l surah · j/k verse · t translation · b bookmark · g goto · tab home · q quit"
	right := ""
	if m.state.quran.HasBookmark {
		right = fmt.Sprintf("◆ %d:%d", m.state.quran.Bookmark.Surah, m.state.quran.Bookmark.Verse)
	}
	return footer.New(hints, right, m.viewportWidth, m.theme).Render()
}

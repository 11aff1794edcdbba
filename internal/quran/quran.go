// Package quran holds the static reference tables: surah metadata for all
// 114 surahs, the 30 juz divisions, and full verse text for the bundled
// surahs. Everything is embedded, loaded once, and never mutated.
package quran

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	go_json "github.com/goccy/go-json"
)

//go:embed data/*.json
var dataFS embed.FS

// Surah is one chapter's metadata.
type Surah struct {
	Number     int    `json:"number"`
	Name       string `json:"name"`    // transliterated, e.g. "Al-Kawthar"
	Arabic     string `json:"arabic"`  // e.g. "الكوثر"
	Meaning    string `json:"meaning"` // e.g. "The Abundance"
	Verses     int    `json:"verses"`
	Revelation string `json:"revelation"` // "Meccan" or "Medinan"
}

// Verse is one ayah in its three representations.
type Verse struct {
	Surah           int    `json:"surah"`
	Number          int    `json:"number"`
	Arabic          string `json:"arabic"`
	Translation     string `json:"translation"`
	Transliteration string `json:"transliteration"`
}

// Juz is one of the thirty traditional divisions, identified by the
// surah:verse it starts at.
type Juz struct {
	Number int `json:"number"`
	Surah  int `json:"surah"`
	Verse  int `json:"verse"`
}

type corpus struct {
	surahs []Surah
	juz    []Juz
	verses map[int][]Verse // keyed by surah number
}

var (
	loadOnce sync.Once
	loaded   *corpus
	loadErr  error
)

func load() (*corpus, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse()
	})
	return loaded, loadErr
}

func parse() (*corpus, error) {
	c := &corpus{verses: make(map[int][]Verse)}

	if err := decode("data/surahs.json", &c.surahs); err != nil {
		return nil, err
	}
	if len(c.surahs) != 114 {
		return nil, fmt.Errorf("%w: surah table has %d entries", ErrCorruptData, len(c.surahs))
	}

	if err := decode("data/juz.json", &c.juz); err != nil {
		return nil, err
	}
	if len(c.juz) != 30 {
		return nil, fmt.Errorf("%w: juz table has %d entries", ErrCorruptData, len(c.juz))
	}

	var verses []Verse
	if err := decode("data/verses.json", &verses); err != nil {
		return nil, err
	}
	for _, v := range verses {
		c.verses[v.Surah] = append(c.verses[v.Surah], v)
	}

	return c, nil
}

func decode(name string, dst any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := go_json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Surahs returns all 114 surahs in order.
func Surahs() ([]Surah, error) {
	c, err := load()
	if err != nil {
		return nil, err
	}
	return c.surahs, nil
}

// SurahByNumber returns one surah's metadata.
func SurahByNumber(n int) (Surah, error) {
	c, err := load()
	if err != nil {
		return Surah{}, err
	}
	if n < 1 || n > len(c.surahs) {
		return Surah{}, fmt.Errorf("surah %d: %w", n, ErrUnknownSurah)
	}
	return c.surahs[n-1], nil
}

// Verses returns the full text of a surah. Only a subset of surahs ship
// with text; the rest return ErrTextNotBundled.
func Verses(surah int) ([]Verse, error) {
	c, err := load()
	if err != nil {
		return nil, err
	}
	if surah < 1 || surah > len(c.surahs) {
		return nil, fmt.Errorf("surah %d: %w", surah, ErrUnknownSurah)
	}
	verses, ok := c.verses[surah]
	if !ok {
		return nil, fmt.Errorf("surah %d: %w", surah, ErrTextNotBundled)
	}
	return verses, nil
}

// VerseByNumber returns one ayah of a bundled surah.
func VerseByNumber(surah, n int) (Verse, error) {
	verses, err := Verses(surah)
	if err != nil {
		return Verse{}, err
	}
	if n < 1 || n > len(verses) {
		return Verse{}, fmt.Errorf("verse %d:%d: %w", surah, n, ErrVerseOutOfRange)
	}
	return verses[n-1], nil
}

// JuzDivisions returns the thirty juz in order.
func JuzDivisions() ([]Juz, error) {
	c, err := load()
	if err != nil {
		return nil, err
	}
	return c.juz, nil
}

// Bundled lists the surah numbers that ship with full verse text.
func Bundled() ([]int, error) {
	c, err := load()
	if err != nil {
		return nil, err
	}
	numbers := make([]int, 0, len(c.verses))
	for n := range c.verses {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers, nil
}

package quran

import "errors"

var (
	ErrUnknownSurah    = errors.New("unknown surah")
	ErrVerseOutOfRange = errors.New("verse out of range")
	ErrTextNotBundled  = errors.New("surah text not bundled")
	ErrCorruptData     = errors.New("corrupt reference data")
)

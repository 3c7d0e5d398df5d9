// Package transcript retrieves closed-caption transcripts for YouTube
// videos by scraping the public watch page and the caption track endpoint
// it advertises. There is no stable public API for transcripts, so the
// watch-page markup is the only dependency; all knowledge of that markup
// lives in this package.
package transcript

// Config holds per-request options for a transcript fetch.
type Config struct {
	// Lang is the preferred caption language code, e.g. "en" or "fr".
	// When empty, the first track YouTube returns is used.
	Lang string
}

// CaptionTrack is one language variant of a video's captions as advertised
// by the watch page.
type CaptionTrack struct {
	LanguageCode string `json:"languageCode"`
	BaseURL      string `json:"baseUrl"`
}

// Entry is a single timed segment of a transcript. Offset and Duration are
// in seconds.
type Entry struct {
	Text     string  `json:"text"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
	Lang     string  `json:"lang"`
}

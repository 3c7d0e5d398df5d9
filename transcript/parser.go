package transcript

import (
	"context"
	"regexp"
	"strconv"

	"github.com/rudrodip/ytranscript/errors"
)

// Captures start, dur and the inner text of one timed element. Text is kept
// verbatim; no entity decoding.
var transcriptEntryPattern = regexp.MustCompile(`<text start="([^"]*)" dur="([^"]*)">([^<]*)</text>`)

// fetchAndParse retrieves the transcript document for the selected track
// and parses its timed text elements. Elements that do not match the
// expected shape are skipped, yielding a partial result rather than an
// error.
//
// When no language was requested, entries are labeled with the FIRST
// advertised track's language code, not the selected track's. The two are
// the same track in that case today, but the fallback is defined in terms
// of the first track and consumers rely on that wording.
func (s *Service) fetchAndParse(ctx context.Context, track CaptionTrack, tracks []CaptionTrack, videoID string, cfg *Config) ([]Entry, error) {
	const op = "transcript.fetchAndParse"

	body, status, err := s.get(ctx, track.BaseURL, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.TranscriptNotAvailable(op, videoID, err)
	}
	if status < 200 || status >= 300 {
		return nil, errors.TranscriptNotAvailable(op, videoID, nil)
	}

	lang := ""
	if cfg != nil && cfg.Lang != "" {
		lang = cfg.Lang
	} else if len(tracks) > 0 {
		lang = tracks[0].LanguageCode
	}

	matches := transcriptEntryPattern.FindAllStringSubmatch(body, -1)
	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, Entry{
			Text:     m[3],
			Offset:   parseSeconds(m[1]),
			Duration: parseSeconds(m[2]),
			Lang:     lang,
		})
	}
	return entries, nil
}

// parseSeconds degrades malformed or negative attribute values to 0 so a
// single bad element never fails the request.
func parseSeconds(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

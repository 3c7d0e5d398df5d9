package transcript

import (
	"github.com/rudrodip/ytranscript/errors"
)

// selectTrack picks the caption track to fetch. With a requested language
// the match is exact and case-sensitive; without one the first track wins,
// whatever its language. Pure selection over already-fetched metadata, no
// network I/O.
func selectTrack(tracks []CaptionTrack, cfg *Config, videoID string) (CaptionTrack, error) {
	const op = "transcript.selectTrack"

	if cfg != nil && cfg.Lang != "" {
		for _, track := range tracks {
			if track.LanguageCode == cfg.Lang {
				return checkTrack(track, videoID)
			}
		}
		available := make([]string, 0, len(tracks))
		for _, track := range tracks {
			available = append(available, track.LanguageCode)
		}
		return CaptionTrack{}, errors.TranscriptNotAvailableLanguage(op, cfg.Lang, available, videoID)
	}

	if len(tracks) == 0 {
		return CaptionTrack{}, errors.TranscriptNotAvailable(op, videoID, nil)
	}
	return checkTrack(tracks[0], videoID)
}

// checkTrack rejects tracks advertised without a fetch URL.
func checkTrack(track CaptionTrack, videoID string) (CaptionTrack, error) {
	const op = "transcript.selectTrack"

	if track.BaseURL == "" {
		return CaptionTrack{}, errors.TranscriptNotAvailable(op, videoID, nil)
	}
	return track, nil
}

package transcript

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rudrodip/ytranscript/errors"
)

const (
	captionsMarker     = `"captions":`
	videoDetailsMarker = `,"videoDetails`
	captchaMarker      = `class="g-recaptcha"`
	playabilityMarker  = `"playabilityStatus":`
)

// scrapeCaptionTracks fetches the watch page and extracts the ordered
// caption track list embedded in its script payload.
//
// When the captions marker is absent the failure is classified in this
// order: captcha page means YouTube is rate limiting us, a page without a
// playability status means the video does not exist, anything else means
// captions are turned off. The order matters; the captcha check must come
// before the generic fallback.
func (s *Service) scrapeCaptionTracks(ctx context.Context, videoID string, cfg *Config) ([]CaptionTrack, error) {
	const op = "transcript.scrapeCaptionTracks"

	body, _, err := s.get(ctx, s.watchBase+videoID, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// A page that cannot be fetched is indistinguishable from a video
		// without captions short of a second probe.
		return nil, errors.TranscriptDisabled(op, videoID, err)
	}

	parts := strings.SplitN(body, captionsMarker, 2)
	if len(parts) <= 1 {
		switch {
		case strings.Contains(body, captchaMarker):
			return nil, errors.TooManyRequests(op)
		case !strings.Contains(body, playabilityMarker):
			return nil, errors.VideoUnavailable(op, videoID)
		default:
			return nil, errors.TranscriptDisabled(op, videoID, nil)
		}
	}

	fragment := parts[1]
	if i := strings.Index(fragment, videoDetailsMarker); i >= 0 {
		fragment = fragment[:i]
	}
	fragment = strings.ReplaceAll(fragment, "\n", "")

	// Parse failures are tolerated; the renderer check below reports the
	// absence uniformly.
	var tree map[string]any
	_ = json.Unmarshal([]byte(fragment), &tree)

	renderer, ok := tree["playerCaptionsTracklistRenderer"].(map[string]any)
	if !ok {
		return nil, errors.TranscriptDisabled(op, videoID, nil)
	}

	raw, ok := renderer["captionTracks"]
	if !ok {
		return nil, errors.TranscriptNotAvailable(op, videoID, nil)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, errors.TranscriptNotAvailable(op, videoID, nil)
	}

	tracks := make([]CaptionTrack, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var track CaptionTrack
		if code, ok := fields["languageCode"].(string); ok {
			track.LanguageCode = code
		}
		if u, ok := fields["baseUrl"].(string); ok {
			track.BaseURL = u
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

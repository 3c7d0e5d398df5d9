package transcript

import (
	"regexp"

	"github.com/rudrodip/ytranscript/errors"
)

// Matches the watch, embed, /v/, channel-path and youtu.be URL shapes and
// captures the 11-character video id.
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// ResolveVideoID normalizes a bare video id or a YouTube URL into the
// canonical 11-character identifier. An 11-character input is returned
// unchanged without validating its character set.
func ResolveVideoID(input string) (string, error) {
	const op = "transcript.ResolveVideoID"

	if len(input) == 11 {
		return input, nil
	}

	m := videoIDPattern.FindStringSubmatch(input)
	if m == nil {
		return "", errors.InvalidVideoID(op, nil)
	}
	return m[1], nil
}

package validation

import (
	"net/url"
	"strings"

	"github.com/rudrodip/ytranscript/errors"
)

// Validator performs request-level checks before the transcript pipeline
// runs. The pipeline's resolver is the authority on video identifiers;
// these checks only reject obviously wrong input at the API edge.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateVideoInput accepts an 11-character bare id or an HTTP(S) YouTube
// URL.
func (v *Validator) ValidateVideoInput(input string) error {
	const op = "Validator.ValidateVideoInput"

	input = strings.TrimSpace(input)
	if input == "" {
		return errors.InvalidVideoID(op, nil)
	}

	if len(input) == 11 {
		return nil
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return errors.InvalidVideoID(op, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.InvalidVideoID(op, nil)
	}

	host := parsedURL.Hostname()
	if !strings.Contains(host, "youtube.com") && !strings.Contains(host, "youtu.be") {
		return errors.InvalidVideoID(op, nil)
	}

	return nil
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind identifies which stage of transcript retrieval failed. Exactly one
// kind applies to any failure.
type Kind string

const (
	KindInvalidVideoID                 Kind = "invalid_video_id"
	KindTooManyRequests                Kind = "too_many_requests"
	KindVideoUnavailable               Kind = "video_unavailable"
	KindTranscriptDisabled             Kind = "transcript_disabled"
	KindTranscriptNotAvailable         Kind = "transcript_not_available"
	KindTranscriptNotAvailableLanguage Kind = "transcript_not_available_language"
)

// Error is the failure type surfaced by the transcript pipeline. Code is the
// HTTP status the API layer responds with; VideoID, Lang and AvailableLangs
// are populated where the kind carries them.
type Error struct {
	Code           int      `json:"-"`
	Kind           Kind     `json:"kind"`
	Message        string   `json:"error"`
	Op             string   `json:"-"`
	Err            error    `json:"-"`
	VideoID        string   `json:"video_id,omitempty"`
	Lang           string   `json:"lang,omitempty"`
	AvailableLangs []string `json:"available_langs,omitempty"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidVideoID(op string, err error) *Error {
	return &Error{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidVideoID,
		Message: "Impossible to retrieve YouTube video ID",
		Op:      op,
		Err:     err,
	}
}

func TooManyRequests(op string) *Error {
	return &Error{
		Code:    http.StatusTooManyRequests,
		Kind:    KindTooManyRequests,
		Message: "YouTube is receiving too many requests from this IP and now requires solving a captcha to continue",
		Op:      op,
	}
}

func VideoUnavailable(op, videoID string) *Error {
	return &Error{
		Code:    http.StatusNotFound,
		Kind:    KindVideoUnavailable,
		Message: fmt.Sprintf("The video is no longer available (%s)", videoID),
		Op:      op,
		VideoID: videoID,
	}
}

func TranscriptDisabled(op, videoID string, err error) *Error {
	return &Error{
		Code:    http.StatusNotFound,
		Kind:    KindTranscriptDisabled,
		Message: fmt.Sprintf("Transcript is disabled on this video (%s)", videoID),
		Op:      op,
		Err:     err,
		VideoID: videoID,
	}
}

func TranscriptNotAvailable(op, videoID string, err error) *Error {
	return &Error{
		Code:    http.StatusNotFound,
		Kind:    KindTranscriptNotAvailable,
		Message: fmt.Sprintf("No transcripts are available for this video (%s)", videoID),
		Op:      op,
		Err:     err,
		VideoID: videoID,
	}
}

func TranscriptNotAvailableLanguage(op, lang string, availableLangs []string, videoID string) *Error {
	return &Error{
		Code: http.StatusNotFound,
		Kind: KindTranscriptNotAvailableLanguage,
		Message: fmt.Sprintf(
			"No transcripts are available in %s for this video (%s). Available languages: %s",
			lang, videoID, strings.Join(availableLangs, ", "),
		),
		Op:             op,
		Lang:           lang,
		AvailableLangs: availableLangs,
		VideoID:        videoID,
	}
}

// GetKind reports the Kind of err when it is or wraps an *Error.
func GetKind(err error) (Kind, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := GetKind(err)
	return ok && k == kind
}

// HTTPCode maps err to the status code the API layer responds with.
// Errors outside the taxonomy map to 500.
func HTTPCode(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the caller-facing message for err without any
// wrapped internal cause.
func PublicMessage(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return "An error occurred while processing your request. Please try again later."
}

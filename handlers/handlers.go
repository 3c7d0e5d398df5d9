package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/rudrodip/ytranscript/config"
	"github.com/rudrodip/ytranscript/errors"
	"github.com/rudrodip/ytranscript/transcript"
	"github.com/rudrodip/ytranscript/utils"
	"github.com/rudrodip/ytranscript/validation"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// TranscriptFetcher is the slice of the transcript service the handlers
// need.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoIDOrURL string, cfg *transcript.Config) ([]transcript.Entry, error)
}

var (
	cfg         *config.Config
	rateLimiter *rate.Limiter
	validator   *validation.Validator
	service     TranscriptFetcher
)

func InitHandlers(config *config.Config) {
	cfg = config
	rateLimiter = rate.NewLimiter(rate.Every(cfg.RateLimitInterval), cfg.RateLimit)
	validator = validation.NewValidator()
	service = transcript.NewService(&http.Client{Timeout: cfg.FetchTimeout})
}

type transcriptResponse struct {
	VideoID string             `json:"video_id"`
	Lang    string             `json:"lang,omitempty"`
	Entries []transcript.Entry `json:"entries"`
}

func TranscriptHandler(w http.ResponseWriter, r *http.Request) {
	logger := logrus.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})
	logger.Info("Received request")

	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		utils.HandleError(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	input := r.FormValue("url")
	lang := r.FormValue("lang")
	if lang == "" {
		lang = cfg.DefaultLang
	}

	if err := validator.ValidateVideoInput(input); err != nil {
		utils.HandleError(w, errors.PublicMessage(err), errors.HTTPCode(err))
		logger.WithError(err).Error("Input validation failed")
		return
	}

	if !rateLimiter.Allow() {
		utils.HandleError(w, "Rate limit exceeded", http.StatusTooManyRequests)
		logger.WithField("url", input).Error("Rate limit exceeded")
		return
	}

	videoID, err := transcript.ResolveVideoID(input)
	if err != nil {
		utils.HandleError(w, errors.PublicMessage(err), errors.HTTPCode(err))
		logger.WithError(err).Error("Video id resolution failed")
		return
	}
	logger = logger.WithField("video_id", videoID)

	ctx, cancel := context.WithTimeout(r.Context(), cfg.FetchTimeout)
	defer cancel()

	var tcfg *transcript.Config
	if lang != "" {
		tcfg = &transcript.Config{Lang: lang}
	}

	entries, err := service.FetchTranscript(ctx, videoID, tcfg)
	if err != nil {
		handleTranscriptError(w, logger, err)
		return
	}

	if err := utils.WriteJSON(w, http.StatusOK, transcriptResponse{
		VideoID: videoID,
		Lang:    lang,
		Entries: entries,
	}); err != nil {
		logger.WithError(err).Error("Failed to send JSON response")
		return
	}
	logger.WithField("entries", len(entries)).Info("Transcript fetch successful")
}

func handleTranscriptError(w http.ResponseWriter, logger *logrus.Entry, err error) {
	if stderrors.Is(err, context.DeadlineExceeded) {
		utils.HandleError(w, "Request timed out", http.StatusGatewayTimeout)
		logger.WithError(err).Error("Transcript fetch timed out")
		return
	}

	utils.HandleError(w, errors.PublicMessage(err), errors.HTTPCode(err))
	logger.WithError(err).Error("Transcript fetch failed")
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

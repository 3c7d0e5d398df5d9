package transcript

import (
	"context"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	defaultWatchBase = "https://www.youtube.com/watch?v="

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_4) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/85.0.4183.83 Safari/537.36,gzip(gfe)"
)

// Service fetches transcripts. A single Service may be used from multiple
// goroutines; the underlying HTTP client is shared for connection reuse and
// no other state is retained between calls.
type Service struct {
	client    *http.Client
	watchBase string
	log       *logrus.Entry
}

// NewService returns a Service using the given HTTP client. A nil client
// falls back to a default client with no timeout; callers wanting bounded
// latency pass a client with one, or cancel via context.
func NewService(client *http.Client) *Service {
	if client == nil {
		client = &http.Client{}
	}
	return &Service{
		client:    client,
		watchBase: defaultWatchBase,
		log:       logrus.WithField("component", "transcript"),
	}
}

// FetchTranscript resolves videoIDOrURL to a video id and returns the timed
// transcript entries for it. cfg may be nil; with a language set the track
// must match it exactly, otherwise the first advertised track is fetched.
//
// The stages run strictly in sequence with no retries: resolve, scrape the
// watch page for caption metadata, select a track, fetch and parse the
// transcript document. The first failure propagates unchanged.
func (s *Service) FetchTranscript(ctx context.Context, videoIDOrURL string, cfg *Config) ([]Entry, error) {
	videoID, err := ResolveVideoID(videoIDOrURL)
	if err != nil {
		return nil, err
	}

	logger := s.log.WithField("video_id", videoID)
	if cfg != nil && cfg.Lang != "" {
		logger = logger.WithField("lang", cfg.Lang)
	}
	logger.Debug("Fetching transcript")

	tracks, err := s.scrapeCaptionTracks(ctx, videoID, cfg)
	if err != nil {
		return nil, err
	}

	track, err := selectTrack(tracks, cfg, videoID)
	if err != nil {
		return nil, err
	}

	entries, err := s.fetchAndParse(ctx, track, tracks, videoID, cfg)
	if err != nil {
		return nil, err
	}

	logger.WithField("entries", len(entries)).Debug("Transcript fetched")
	return entries, nil
}

// get performs a GET with the fixed desktop User-Agent and, when a language
// preference is set, an Accept-Language header. Returns the body and status
// code; err covers transport failures and unreadable bodies only.
func (s *Service) get(ctx context.Context, url string, cfg *Config) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("User-Agent", userAgent)
	if cfg != nil && cfg.Lang != "" {
		req.Header.Set("Accept-Language", cfg.Lang)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}

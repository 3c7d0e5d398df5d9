package transcript

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/rudrodip/ytranscript/errors"
)

// newFixtureServer serves a captured-style watch page advertising an "en"
// and a "fr" track, with the track URLs pointing back at the same server.
func newFixtureServer(t *testing.T) (*Service, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w,
			`<!DOCTYPE html><html><body><script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":"%s/api/timedtext?lang=en","name":{"simpleText":"English"},"languageCode":"en","kind":"asr"},{"baseUrl":"%s/api/timedtext?lang=fr","name":{"simpleText":"French"},"languageCode":"fr"}],"audioTracks":[]},"audioTracks":[]},"videoDetails":{"videoId":"dQw4w9WgXcQ","title":"Fixture"}};</script></body></html>`,
			srv.URL, srv.URL)
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("lang") {
		case "fr":
			fmt.Fprint(w, `<?xml version="1.0" encoding="utf-8" ?><transcript><text start="1.5" dur="2.0">Salut</text><text start="3.5" dur="1.0">Au revoir</text></transcript>`)
		default:
			fmt.Fprint(w, `<?xml version="1.0" encoding="utf-8" ?><transcript><text start="1.5" dur="2.0">Hi</text><text start="3.5" dur="1.0">Bye</text></transcript>`)
		}
	})

	s := NewService(srv.Client())
	s.watchBase = srv.URL + "/watch?v="
	return s, srv
}

func TestFetchTranscript(t *testing.T) {
	s, _ := newFixtureServer(t)

	entries, err := s.FetchTranscript(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Entry{
		{Text: "Hi", Offset: 1.5, Duration: 2.0, Lang: "en"},
		{Text: "Bye", Offset: 3.5, Duration: 1.0, Lang: "en"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v, want %+v", entries, want)
	}
}

func TestFetchTranscriptWithLanguage(t *testing.T) {
	s, _ := newFixtureServer(t)

	entries, err := s.FetchTranscript(context.Background(), "dQw4w9WgXcQ", &Config{Lang: "fr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Entry{
		{Text: "Salut", Offset: 1.5, Duration: 2.0, Lang: "fr"},
		{Text: "Au revoir", Offset: 3.5, Duration: 1.0, Lang: "fr"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v, want %+v", entries, want)
	}
}

func TestFetchTranscriptUnknownLanguage(t *testing.T) {
	s, _ := newFixtureServer(t)

	_, err := s.FetchTranscript(context.Background(), "dQw4w9WgXcQ", &Config{Lang: "de"})
	if !errors.IsKind(err, errors.KindTranscriptNotAvailableLanguage) {
		t.Fatalf("error = %v, want kind %v", err, errors.KindTranscriptNotAvailableLanguage)
	}

	var e *errors.Error
	stderrors.As(err, &e)
	want := []string{"en", "fr"}
	if !reflect.DeepEqual(e.AvailableLangs, want) {
		t.Errorf("AvailableLangs = %v, want %v", e.AvailableLangs, want)
	}
}

func TestFetchTranscriptInvalidInput(t *testing.T) {
	s, _ := newFixtureServer(t)

	_, err := s.FetchTranscript(context.Background(), "https://example.com/nope", nil)
	if !errors.IsKind(err, errors.KindInvalidVideoID) {
		t.Errorf("error = %v, want kind %v", err, errors.KindInvalidVideoID)
	}
}

// Repeated runs over the same fixture documents must produce the same
// ordered entry sequence.
func TestFetchTranscriptDeterministic(t *testing.T) {
	s, _ := newFixtureServer(t)

	first, err := s.FetchTranscript(context.Background(), "dQw4w9WgXcQ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.FetchTranscript(context.Background(), "dQw4w9WgXcQ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ: %+v vs %+v", first, second)
	}
}

func TestFetchTranscriptCancellation(t *testing.T) {
	s, _ := newFixtureServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.FetchTranscript(ctx, "dQw4w9WgXcQ", nil)
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

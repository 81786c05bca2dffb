package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sentinel errors for the provider-side failure modes the original API
// distinguishes. Handlers map these to 4xx outcomes.
var (
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
	ErrNoTranscript        = errors.New("no transcript found for this video")
	ErrVideoUnavailable    = errors.New("video is unavailable")
)

// Provider fetches an opaque transcript result for a video. The result shape
// is deliberately untyped: callers must run it through Normalize.
type Provider interface {
	Fetch(ctx context.Context, videoID string) (any, error)
}

// YouTubeClient retrieves caption tracks through the timedtext endpoint.
type YouTubeClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewYouTubeClient creates a new timedtext client
func NewYouTubeClient() *YouTubeClient {
	return &YouTubeClient{
		baseURL: "https://video.google.com/timedtext",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// trackList mirrors the timedtext track listing XML.
type trackList struct {
	Tracks []track `xml:"track"`
}

type track struct {
	LangCode string `xml:"lang_code,attr"`
	Name     string `xml:"name,attr"`
	Kind     string `xml:"kind,attr"`
}

// timedTextBody mirrors the json3 caption payload.
type timedTextBody struct {
	Events []timedTextEvent `json:"events"`
}

type timedTextEvent struct {
	StartMs    int64              `json:"tStartMs"`
	DurationMs int64              `json:"dDurationMs"`
	Segs       []timedTextSegment `json:"segs"`
}

type timedTextSegment struct {
	UTF8 string `json:"utf8"`
}

// FetchedTranscript is the materialized result handed back to callers. It
// exposes the snippet and language capabilities the normalizer probes for.
type FetchedTranscript struct {
	snippets []any
	language string
}

func (t *FetchedTranscript) Snippets() []any      { return t.snippets }
func (t *FetchedTranscript) LanguageCode() string { return t.language }

// Fetch lists the video's caption tracks, picks English when available and the
// first advertised track otherwise, and materializes its timed records.
func (c *YouTubeClient) Fetch(ctx context.Context, videoID string) (any, error) {
	tracks, err := c.listTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, ErrNoTranscript
	}

	chosen := tracks[0]
	for _, t := range tracks {
		if t.LangCode == "en" || strings.HasPrefix(t.LangCode, "en-") {
			chosen = t
			break
		}
	}

	segments, err := c.fetchTrack(ctx, videoID, chosen)
	if err != nil {
		return nil, err
	}

	snippets := make([]any, len(segments))
	for i, s := range segments {
		snippets[i] = s
	}
	return &FetchedTranscript{snippets: snippets, language: chosen.LangCode}, nil
}

func (c *YouTubeClient) listTracks(ctx context.Context, videoID string) ([]track, error) {
	listURL := fmt.Sprintf("%s?type=list&v=%s", c.baseURL, url.QueryEscape(videoID))
	body, err := c.get(ctx, listURL)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		// The endpoint answers 200 with an empty body when captioning is off.
		return nil, ErrTranscriptsDisabled
	}

	var list trackList
	if err := xml.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("parsing track list: %w", err)
	}
	return list.Tracks, nil
}

func (c *YouTubeClient) fetchTrack(ctx context.Context, videoID string, t track) ([]Segment, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", t.LangCode)
	q.Set("fmt", "json3")
	if t.Name != "" {
		q.Set("name", t.Name)
	}
	if t.Kind != "" {
		q.Set("kind", t.Kind)
	}

	body, err := c.get(ctx, c.baseURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var payload timedTextBody
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parsing timed text: %w", err)
	}

	var segments []Segment
	for _, ev := range payload.Events {
		var b strings.Builder
		for _, seg := range ev.Segs {
			b.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(b.String())
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start:    float64(ev.StartMs) / 1000,
			Duration: float64(ev.DurationMs) / 1000,
			Text:     text,
		})
	}
	return segments, nil
}

func (c *YouTubeClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching transcript: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, ErrVideoUnavailable
	case resp.StatusCode == http.StatusForbidden:
		return nil, ErrTranscriptsDisabled
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

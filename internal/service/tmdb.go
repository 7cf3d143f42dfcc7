package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	tmdbBaseURL   = "https://api.themoviedb.org/3"
	tmdbImageBase = "https://image.tmdb.org/t/p/w500"
)

// TMDBService looks up movie and series metadata from The Movie Database.
type TMDBService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewTMDBService(apiKey string) *TMDBService {
	return &TMDBService{
		apiKey:  apiKey,
		baseURL: tmdbBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// MediaResult is a TMDB item in the application's shape.
type MediaResult struct {
	TMDBID    int64  `json:"tmdb_id"`
	Title     string `json:"title"`
	PosterURL string `json:"poster_url,omitempty"`
	Year      int    `json:"year,omitempty"`
	Type      string `json:"type"`
	Overview  string `json:"overview"`
	IMDBID    string `json:"imdb_id,omitempty"`
}

type tmdbItem struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path"`
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
	Overview     string `json:"overview"`
	IMDBID       string `json:"imdb_id"`
	ExternalIDs  struct {
		IMDBID string `json:"imdb_id"`
	} `json:"external_ids"`
}

// SearchMedia searches movies or series. At most 12 results are
// returned.
func (s *TMDBService) SearchMedia(ctx context.Context, query, mediaType string) ([]MediaResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is not configured")
	}

	endpoint := "search/movie"
	if mediaType == "tv" {
		endpoint = "search/tv"
	}

	u := fmt.Sprintf("%s/%s?api_key=%s&query=%s&language=fr-FR",
		s.baseURL, endpoint, url.QueryEscape(s.apiKey), url.QueryEscape(query))

	var payload struct {
		Results []tmdbItem `json:"results"`
	}
	if err := s.get(ctx, u, &payload); err != nil {
		return nil, err
	}

	results := payload.Results
	if len(results) > 12 {
		results = results[:12]
	}

	out := make([]MediaResult, 0, len(results))
	for _, item := range results {
		out = append(out, s.toResult(item, mediaType))
	}
	return out, nil
}

// GetMediaDetails fetches one item including its IMDB id.
func (s *TMDBService) GetMediaDetails(ctx context.Context, tmdbID int64, mediaType string) (*MediaResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is not configured")
	}

	endpoint := fmt.Sprintf("movie/%d", tmdbID)
	if mediaType == "tv" {
		endpoint = fmt.Sprintf("tv/%d", tmdbID)
	}

	u := fmt.Sprintf("%s/%s?api_key=%s&language=fr-FR&append_to_response=external_ids",
		s.baseURL, endpoint, url.QueryEscape(s.apiKey))

	var item tmdbItem
	if err := s.get(ctx, u, &item); err != nil {
		return nil, err
	}

	result := s.toResult(item, mediaType)
	result.IMDBID = item.IMDBID
	if result.IMDBID == "" {
		result.IMDBID = item.ExternalIDs.IMDBID
	}
	return &result, nil
}

func (s *TMDBService) get(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("TMDB API error: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

func (s *TMDBService) toResult(item tmdbItem, mediaType string) MediaResult {
	title := item.Title
	date := item.ReleaseDate
	resultType := "film"
	if mediaType == "tv" {
		title = item.Name
		date = item.FirstAirDate
		resultType = "serie"
	}

	result := MediaResult{
		TMDBID:   item.ID,
		Title:    title,
		Year:     extractYear(date),
		Type:     resultType,
		Overview: item.Overview,
	}
	if item.PosterPath != "" {
		result.PosterURL = tmdbImageBase + item.PosterPath
	}
	return result
}

func extractYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

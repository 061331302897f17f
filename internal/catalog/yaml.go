package catalog

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInvalidReleaseAt   = errors.New("invalid release_at")
	ErrInvalidTrackLength = errors.New("invalid track duration")
)

// catalogFile is the YAML layout of a catalog file:
//
//	artist:
//	  name: JOMBY GIFTED
//	  platforms:
//	    - {name: Spotify, url: "https://open.spotify.com/artist/abc123xyz"}
//	videos:
//	  playlist_id: PLDuPP0Z_jBnrY47Eo95i0Ms4FA6QRNj-r
//	  video_ids: [3zGEGOJ4WTw]
//	premium:
//	  - sku: unreleased-ep-002
//	    price: 3.99
//	    release_at: 2025-08-21T18:17:00+03:00
//	    tracks:
//	      - {name: Outro, duration: "1:11"}
type catalogFile struct {
	Artist struct {
		Name    string `yaml:"name"`
		Tagline string `yaml:"tagline"`
		Avatar  string `yaml:"avatar"`
		Hero    string `yaml:"hero"`
		Socials struct {
			YouTube   string `yaml:"youtube"`
			Instagram string `yaml:"instagram"`
			TikTok    string `yaml:"tiktok"`
			X         string `yaml:"x"`
			Facebook  string `yaml:"facebook"`
		} `yaml:"socials"`
		Platforms []struct {
			Name string `yaml:"name"`
			URL  string `yaml:"url"`
		} `yaml:"platforms"`
	} `yaml:"artist"`
	Videos struct {
		PlaylistID string   `yaml:"playlist_id"`
		ChannelID  string   `yaml:"channel_id"`
		VideoIDs   []string `yaml:"video_ids"`
	} `yaml:"videos"`
	Event struct {
		Title       string `yaml:"title"`
		Venue       string `yaml:"venue"`
		Date        string `yaml:"date"`
		Description string `yaml:"description"`
	} `yaml:"event"`
	Premium []struct {
		SKU         string `yaml:"sku"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Cover       string `yaml:"cover"`
		Price       string `yaml:"price"`
		ReleaseAt   string `yaml:"release_at"`
		Tracks      []struct {
			Name     string `yaml:"name"`
			Duration string `yaml:"duration"`
		} `yaml:"tracks"`
	} `yaml:"premium"`
}

// Load reads a YAML catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog. Release instants must carry an explicit UTC
// offset so that the embargo never depends on the host time zone.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	artist := Artist{
		Name:    f.Artist.Name,
		Tagline: f.Artist.Tagline,
		Avatar:  f.Artist.Avatar,
		Hero:    f.Artist.Hero,
		Socials: Socials{
			YouTube:   f.Artist.Socials.YouTube,
			Instagram: f.Artist.Socials.Instagram,
			TikTok:    f.Artist.Socials.TikTok,
			X:         f.Artist.Socials.X,
			Facebook:  f.Artist.Socials.Facebook,
		},
	}
	for _, p := range f.Artist.Platforms {
		artist.Platforms = append(artist.Platforms, Platform{Name: p.Name, URL: p.URL})
	}

	videos := Videos{
		PlaylistID: f.Videos.PlaylistID,
		ChannelID:  f.Videos.ChannelID,
		VideoIDs:   f.Videos.VideoIDs,
	}

	event := Event{Title: f.Event.Title, Venue: f.Event.Venue, Description: f.Event.Description}
	if f.Event.Date != "" {
		d, err := time.Parse(time.DateOnly, f.Event.Date)
		if err != nil {
			return nil, fmt.Errorf("event date: %w", err)
		}
		event.Date = d
	}

	items := make([]PremiumItem, 0, len(f.Premium))
	for _, p := range f.Premium {
		price, err := ParseCents(p.Price)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", p.SKU, err)
		}

		var releaseAt time.Time
		if p.ReleaseAt != "" {
			releaseAt, err = time.Parse(time.RFC3339, p.ReleaseAt)
			if err != nil {
				return nil, fmt.Errorf("item %s: %w %q: %w", p.SKU, ErrInvalidReleaseAt, p.ReleaseAt, err)
			}
		}

		item := PremiumItem{
			SKU:         p.SKU,
			Title:       p.Title,
			Description: p.Description,
			Cover:       p.Cover,
			Price:       price,
			ReleaseAt:   releaseAt,
		}
		for _, tr := range p.Tracks {
			d, err := parseTrackLength(tr.Duration)
			if err != nil {
				return nil, fmt.Errorf("item %s track %q: %w", p.SKU, tr.Name, err)
			}
			item.Tracks = append(item.Tracks, Track{Name: tr.Name, Duration: d})
		}
		items = append(items, item)
	}

	return New(artist, videos, event, items)
}

// ParseCents parses a non-negative dollar amount with at most two decimal
// places ("5", "5.9", "5.99") into cents. An empty string is zero.
func ParseCents(s string) (Cents, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" {
		return 0, nil
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w %q", ErrNegativePrice, s)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return 0, fmt.Errorf("%w %q", ErrInvalidPrice, s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	dollars, err := strconv.ParseUint(whole, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidPrice, s)
	}
	cents, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidPrice, s)
	}
	return Cents(dollars*100 + cents), nil
}

// parseTrackLength parses "m:ss". An empty string is zero.
func parseTrackLength(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	m, sec, ok := strings.Cut(s, ":")
	if !ok || len(sec) != 2 {
		return 0, fmt.Errorf("%w %q", ErrInvalidTrackLength, s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 {
		return 0, fmt.Errorf("%w %q", ErrInvalidTrackLength, s)
	}
	seconds, err := strconv.Atoi(sec)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("%w %q", ErrInvalidTrackLength, s)
	}
	return time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
}

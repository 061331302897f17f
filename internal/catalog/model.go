// Package catalog holds the read-only site configuration the premium gate is
// driven by: the artist profile, streaming links, video ids and the list of
// purchasable premium items.
package catalog

import (
	"fmt"
	"time"
)

// Cents is a non-negative USD amount in cents.
type Cents int64

// String formats c as US dollars, e.g. "$5.99".
func (c Cents) String() string {
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}

type Track struct {
	Name     string
	Duration time.Duration
}

// Length formats the track duration as m:ss.
func (t Track) Length() string {
	total := int(t.Duration.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// PremiumItem is a purchasable bundle. ReleaseAt is fixed when the catalog is
// built; a zero ReleaseAt means the item is not embargoed.
type PremiumItem struct {
	SKU         string
	Title       string
	Description string
	Cover       string
	Price       Cents
	ReleaseAt   time.Time
	Tracks      []Track
}

type Platform struct {
	Name string
	URL  string
}

type Socials struct {
	YouTube   string
	Instagram string
	TikTok    string
	X         string
	Facebook  string
}

type Artist struct {
	Name      string
	Tagline   string
	Avatar    string
	Hero      string
	Socials   Socials
	Platforms []Platform
}

// Videos describes the YouTube feed. PlaylistID wins over ChannelID when both
// are set.
type Videos struct {
	PlaylistID string
	ChannelID  string
	VideoIDs   []string
}

// FeedURL returns the embeddable feed URL for the playlist, or the channel's
// uploads when no playlist is configured.
func (v Videos) FeedURL() string {
	if v.PlaylistID != "" {
		return "https://www.youtube.com/embed/videoseries?list=" + v.PlaylistID
	}
	return "https://www.youtube.com/embed?listType=user_uploads&list=" + v.ChannelID
}

// WatchURL returns the short watch link for a video id.
func WatchURL(id string) string { return "https://youtu.be/" + id }

type Event struct {
	Title       string
	Venue       string
	Date        time.Time
	Description string
}

// Catalog is immutable once built; accessors return copies.
type Catalog struct {
	artist Artist
	videos Videos
	event  Event
	items  []PremiumItem
}

func (c *Catalog) Artist() Artist { return c.artist }

func (c *Catalog) Videos() Videos { return c.videos }

func (c *Catalog) Event() Event { return c.event }

// Items returns the premium items in catalog order.
func (c *Catalog) Items() []PremiumItem {
	out := make([]PremiumItem, len(c.items))
	for i, it := range c.items {
		out[i] = it
		out[i].Tracks = append([]Track(nil), it.Tracks...)
	}
	return out
}

// Item looks up a premium item by SKU.
func (c *Catalog) Item(sku string) (PremiumItem, bool) {
	for _, it := range c.items {
		if it.SKU == sku {
			it.Tracks = append([]Track(nil), it.Tracks...)
			return it, true
		}
	}
	return PremiumItem{}, false
}

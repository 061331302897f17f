package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/premiumgate/internal/catalog"
)

const dateLayout = "Jan 2, 2006"

func (a *App) Profile() {
	artist := a.catalog.Artist()

	var b strings.Builder
	fmt.Fprintln(&b, artist.Name)
	if artist.Tagline != "" {
		fmt.Fprintln(&b, artist.Tagline)
	}

	socials := []struct{ name, url string }{
		{"YouTube", artist.Socials.YouTube},
		{"Instagram", artist.Socials.Instagram},
		{"TikTok", artist.Socials.TikTok},
		{"X", artist.Socials.X},
		{"Facebook", artist.Socials.Facebook},
	}
	for _, s := range socials {
		if s.url != "" {
			fmt.Fprintf(&b, "  %-10s %s\n", s.name, s.url)
		}
	}

	if ev := a.catalog.Event(); ev.Title != "" {
		fmt.Fprintf(&b, "Upcoming: %s", ev.Title)
		if ev.Venue != "" {
			fmt.Fprintf(&b, ", %s", ev.Venue)
		}
		if !ev.Date.IsZero() {
			fmt.Fprintf(&b, " (%s)", ev.Date.Format(dateLayout))
		}
		b.WriteString("\n")
		if ev.Description != "" {
			fmt.Fprintf(&b, "  %s\n", ev.Description)
		}
	}

	a.Println(strings.TrimRight(b.String(), "\n"))
}

func (a *App) Links() {
	platforms := a.catalog.Artist().Platforms
	if len(platforms) == 0 {
		a.Println("No streaming links.")
		return
	}

	var b strings.Builder
	fmt.Fprintln(&b, "Listen on:")
	for _, p := range platforms {
		fmt.Fprintf(&b, "  %-12s %s\n", p.Name, p.URL)
	}
	a.Println(strings.TrimRight(b.String(), "\n"))
}

func (a *App) Videos() {
	v := a.catalog.Videos()
	if v.PlaylistID == "" && v.ChannelID == "" && len(v.VideoIDs) == 0 {
		a.Println("No videos.")
		return
	}

	var b strings.Builder
	if v.PlaylistID != "" || v.ChannelID != "" {
		fmt.Fprintf(&b, "Feed: %s\n", v.FeedURL())
	}
	for _, id := range v.VideoIDs {
		fmt.Fprintf(&b, "  %s\n", catalog.WatchURL(id))
	}
	a.Println(strings.TrimRight(b.String(), "\n"))
}

// Catalog lists the premium items. Track names stay hidden until unlocked.
func (a *App) Catalog() {
	items := a.catalog.Items()
	if len(items) == 0 {
		a.Println("No premium items.")
		return
	}

	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "[%s] %s  %s  (%d tracks)\n", it.SKU, it.Title, it.Price, len(it.Tracks))
	}
	a.Println(strings.TrimRight(b.String(), "\n"))
}

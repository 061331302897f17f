package catalog

import "time"

// EAT is East Africa Time. A fixed offset keeps release instants independent
// of the host's tzdata.
var EAT = time.FixedZone("EAT", 3*60*60)

// PremiumReleaseAt is when the 2025 premium drops become purchasable.
var PremiumReleaseAt = time.Date(2025, time.August, 21, 18, 17, 0, 0, EAT)

func track(name string, m, s int) Track {
	return Track{Name: name, Duration: time.Duration(m)*time.Minute + time.Duration(s)*time.Second}
}

// Default returns the built-in catalog used when no catalog file is
// configured.
func Default() *Catalog {
	c, err := New(
		Artist{
			Name:    "JOMBY GIFTED",
			Tagline: "Rising star from Nakuru, known for 'The Streets of Moleko' in 2025",
			Avatar:  "/assets/jomby-avatar.jpg",
			Hero:    "/assets/jomby-hero.jpg",
			Socials: Socials{
				YouTube:   "https://youtube.com/@jombygifted",
				Instagram: "https://www.instagram.com/jombygifted",
				TikTok:    "https://www.tiktok.com/@jombygifted",
				X:         "https://x.com/jombygifted",
				Facebook:  "https://www.facebook.com/profile.php?id=100008883249350",
			},
			Platforms: []Platform{
				{Name: "Spotify", URL: "https://open.spotify.com/artist/abc123xyz"},
				{Name: "Apple Music", URL: "https://music.apple.com/artist/abc123xyz"},
				{Name: "Deezer", URL: "https://www.deezer.com/artist/abc123xyz"},
				{Name: "Audiomack", URL: "https://audiomack.com/jombygifted"},
				{Name: "Boomplay", URL: "https://www.boomplay.com/artists/abc123xyz"},
			},
		},
		Videos{
			PlaylistID: "PLDuPP0Z_jBnrY47Eo95i0Ms4FA6QRNj-r",
			ChannelID:  "UC-DEMO-CHANNEL-ID-REPLACE",
			VideoIDs:   []string{"3zGEGOJ4WTw", "3NKBDTwtDzE", "tykT2Wp9OKM"},
		},
		Event{
			Title:       "The Streets of Moleko Live",
			Venue:       "Nakuru",
			Date:        time.Date(2025, time.December, 24, 0, 0, 0, 0, EAT),
			Description: "Join Jomby Gifted for an exclusive live performance in Nakuru on Dec 24, 2025. Tickets go on sale Oct 1, 2025!",
		},
		[]PremiumItem{
			{
				SKU:         "unreleased-album-001",
				Title:       "UNRELEASED: Moleko Tapes Vol. 1 (2025)",
				Price:       599,
				Description: "Early access to 8 tracks, alt mixes, and cover art pack - released Aug 2025",
				Cover:       "/assets/moleko-tapes.jpg",
				ReleaseAt:   PremiumReleaseAt,
				Tracks: []Track{
					track("Intro (Gifted)", 1, 5),
					track("Moleko Nights", 3, 21),
					track("Streetwise", 2, 58),
				},
			},
			{
				SKU:         "unreleased-ep-002",
				Title:       "UNRELEASED: Sunset EP (2025)",
				Price:       399,
				Description: "4-track EP + BTS video - available from Aug 21, 2025",
				Cover:       "/assets/sunset-ep.jpg",
				ReleaseAt:   PremiumReleaseAt,
				Tracks: []Track{
					track("Sunset (Demo)", 2, 42),
					track("Golden Hour", 3, 2),
					track("Skyline", 2, 36),
					track("Outro", 1, 11),
				},
			},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}

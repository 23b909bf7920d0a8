package tmdb

import "strings"

// BestTrailer picks the most watchable trailer from a video list: official
// YouTube trailers first, then any YouTube trailer, then any YouTube teaser.
// Returns nil when nothing on YouTube qualifies.
func BestTrailer(videos []Video) *Video {
	var trailer, teaser *Video
	for i := range videos {
		v := &videos[i]
		if !strings.EqualFold(v.Site, "YouTube") || v.Key == "" {
			continue
		}
		switch strings.ToLower(v.Type) {
		case "trailer":
			if v.Official {
				return v
			}
			if trailer == nil {
				trailer = v
			}
		case "teaser":
			if teaser == nil {
				teaser = v
			}
		}
	}
	if trailer != nil {
		return trailer
	}
	return teaser
}

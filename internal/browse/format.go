package browse

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"marquee/internal/tmdb"
)

const overviewLimit = 120

var (
	titleCaser   = cases.Title(language.Und)
	moneyPrinter = message.NewPrinter(language.English)
)

// mediaLabel turns the wire media type ("movie", "tv") into a display label.
func mediaLabel(mediaType string) string {
	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "tv":
		return "TV"
	case "":
		return ""
	default:
		return titleCaser.String(mediaType)
	}
}

// formatYear extracts the year from a TMDB date string (YYYY-MM-DD).
func formatYear(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// formatYearRange renders "2022–2025" for ended shows and "2022–" for ones
// still airing.
func formatYearRange(firstAir, lastAir, status string) string {
	start := formatYear(firstAir)
	if start == "" {
		return ""
	}
	end := formatYear(lastAir)
	if strings.EqualFold(status, "Returning Series") || end == "" {
		return start + "-"
	}
	if end == start {
		return start
	}
	return start + "-" + end
}

// formatRating renders a vote average as a single-decimal score, or "" when
// no one has voted.
func formatRating(average float64, count int64) string {
	if count == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", average)
}

// formatRuntime renders minutes as "2h16m"; zero minutes yields "".
func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	hours := minutes / 60
	rest := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", rest)
	}
	return fmt.Sprintf("%dh%02dm", hours, rest)
}

// formatEpisodeRuntime picks the first advertised episode runtime.
func formatEpisodeRuntime(runtimes []int) string {
	for _, minutes := range runtimes {
		if minutes > 0 {
			return formatRuntime(minutes)
		}
	}
	return ""
}

// formatMoney renders a dollar amount with thousands separators, or "" when
// TMDB has no figure.
func formatMoney(amount int64) string {
	if amount <= 0 {
		return ""
	}
	return moneyPrinter.Sprintf("$%d", amount)
}

func joinGenres(genres []tmdb.Genre) string {
	if len(genres) == 0 {
		return ""
	}
	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		if name := strings.TrimSpace(genre.Name); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

func truncate(text string, limit int) string {
	text = strings.TrimSpace(text)
	if limit <= 0 || len(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}

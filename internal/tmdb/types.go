package tmdb

// ListEntry represents a single title in a paginated listing or search
// response. Movies populate Title/ReleaseDate; TV shows populate
// Name/FirstAirDate. MediaType is set by the client, not the wire payload.
type ListEntry struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	MediaType    string  `json:"media_type"`
	Popularity   float64 `json:"popularity"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
}

// DisplayTitle returns whichever of Title or Name the payload carried.
func (e ListEntry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Name
}

// FirstRelease returns the release date for movies or the first air date for
// TV shows.
func (e ListEntry) FirstRelease() string {
	if e.ReleaseDate != "" {
		return e.ReleaseDate
	}
	return e.FirstAirDate
}

// Page models the TMDB paginated listing envelope.
type Page struct {
	Page         int         `json:"page"`
	Results      []ListEntry `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// Genre is a TMDB genre reference.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the full movie payload. Budget and Revenue are zero when
// TMDB has no financial data for the title.
type MovieDetails struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Tagline      string  `json:"tagline"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	Runtime      int     `json:"runtime"`
	Genres       []Genre `json:"genres"`
	Status       string  `json:"status"`
	Budget       int64   `json:"budget"`
	Revenue      int64   `json:"revenue"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Homepage     string  `json:"homepage"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
}

// Season summarizes one season inside a TV details payload.
type Season struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SeasonNumber int    `json:"season_number"`
	EpisodeCount int    `json:"episode_count"`
	AirDate      string `json:"air_date"`
	Overview     string `json:"overview"`
}

// TVDetails is the full TV show payload. Seasons may be empty for titles TMDB
// has not broken down.
type TVDetails struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Tagline          string   `json:"tagline"`
	Overview         string   `json:"overview"`
	FirstAirDate     string   `json:"first_air_date"`
	LastAirDate      string   `json:"last_air_date"`
	EpisodeRunTime   []int    `json:"episode_run_time"`
	NumberOfSeasons  int      `json:"number_of_seasons"`
	NumberOfEpisodes int      `json:"number_of_episodes"`
	Genres           []Genre  `json:"genres"`
	Status           string   `json:"status"`
	Seasons          []Season `json:"seasons"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int64    `json:"vote_count"`
}

// Video is a trailer, teaser, or clip reference hosted off-platform.
type Video struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
}

type videoList struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

package model

// Movie metadata records mirror the provider's payload shape, keys included,
// so the frontend keeps working against the proxied responses.

type MovieSearchResult struct {
	ImdbId string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type MovieSearchRes struct {
	Search       []MovieSearchResult `json:"Search"`
	TotalResults string              `json:"totalResults,omitempty"`
	Response     string              `json:"Response"`
	Error        string              `json:"Error,omitempty"`
}

type MovieDetail struct {
	ImdbId     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated,omitempty"`
	Released   string `json:"Released,omitempty"`
	Runtime    string `json:"Runtime,omitempty"`
	Genre      string `json:"Genre,omitempty"`
	Director   string `json:"Director,omitempty"`
	Actors     string `json:"Actors,omitempty"`
	Plot       string `json:"Plot,omitempty"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating,omitempty"`
	Type       string `json:"Type,omitempty"`
	Response   string `json:"Response,omitempty"`
	Error      string `json:"Error,omitempty"`
}

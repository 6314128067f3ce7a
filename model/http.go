package model

type CatalogResponse struct {
	Treble []Note `json:"treble"`
	Bass   []Note `json:"bass"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

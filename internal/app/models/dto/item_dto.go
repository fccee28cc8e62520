package dto

import "github.com/berk/parentportal/internal/app/models"

// ItemPage is one page of the demo items listing. It is the unit stored in
// the cache, so the pagination metadata is computed once per producer run.
type ItemPage struct {
	Data       []models.Parent `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

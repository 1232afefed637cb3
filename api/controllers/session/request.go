package session

type filtersRequest struct {
	Category *string `json:"category" validate:"omitempty,max=64"`
	Query    *string `json:"query" validate:"omitempty,max=128"`
}

type toggleRequest struct {
	Open *bool `json:"open" validate:"required"`
}

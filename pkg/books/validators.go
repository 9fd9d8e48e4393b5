package books

type CreateBookPayload struct {
	Title           string  `json:"title" mod:"trim" validate:"required,max=500"`
	PublicationYear *string `json:"publication_year" mod:"trim" validate:"omitempty,max=16"`
	ISBN            *string `json:"isbn" mod:"trim" validate:"omitempty,max=32"`
	PublisherID     int     `json:"publisher_id" validate:"required,gt=0"`
	Summary         *string `json:"summary" mod:"trim" validate:"omitempty,max=10000"`
	Citation        *string `json:"citation" mod:"trim" validate:"omitempty,max=2000"`
	SourceLink      *string `json:"source_link" mod:"trim" validate:"omitempty,url,max=2000"`
	Rating          *int    `json:"rating" validate:"omitempty,gte=0,lte=10"`
	AuthorIDs       []int   `json:"author_ids" validate:"omitempty,dive,gt=0"`
	GenreIDs        []int   `json:"genre_ids" validate:"omitempty,dive,gt=0"`
}

package authors

type CreateAuthorPayload struct {
	FirstName   string  `json:"first_name" mod:"trim" validate:"required,max=255"`
	LastName    string  `json:"last_name" mod:"trim" validate:"required,max=255"`
	BirthYear   *int    `json:"birth_year" validate:"omitempty,gte=0"`
	DeathYear   *int    `json:"death_year" validate:"omitempty,gte=0"`
	Nationality *string `json:"nationality" mod:"trim" validate:"omitempty,max=255"`
	Biography   *string `json:"biography" mod:"trim" validate:"omitempty,max=10000"`
}

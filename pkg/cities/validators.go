package cities

type CreateCityPayload struct {
	Name      string `json:"name" mod:"trim" validate:"required,max=255"`
	StateID   *int   `json:"state_id" validate:"omitempty,gt=0"`
	CountryID int    `json:"country_id" validate:"required,gt=0"`
}

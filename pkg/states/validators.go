package states

type CreateStatePayload struct {
	Name         string `json:"name" mod:"trim" validate:"required,max=255"`
	Abbreviation string `json:"abbreviation" mod:"trim" validate:"required,max=16"`
	CountryID    int    `json:"country_id" validate:"required,gt=0"`
}

package countries

type CreateCountryPayload struct {
	Name string `json:"name" mod:"trim" validate:"required,max=255"`
}

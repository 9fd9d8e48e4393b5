package publishers

type CreatePublisherPayload struct {
	Name   string `json:"name" mod:"trim" validate:"required,max=255"`
	CityID int    `json:"city_id" validate:"required,gt=0"`
}

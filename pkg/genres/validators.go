package genres

type CreateGenrePayload struct {
	Name        string `json:"name" mod:"trim" validate:"required,max=255"`
	Description string `json:"description" mod:"trim" validate:"required,max=2000"`
}

package topics

type CreateTopicPayload struct {
	Name        string `json:"name" mod:"trim" validate:"required,max=255"`
	Description string `json:"description" mod:"trim" validate:"required,max=2000"`
}

type ListTopicsPayload struct {
	Name *string `query:"name" json:"name" validate:"omitempty,max=255"`
}

package quotes

type CreateQuotePayload struct {
	Text        string  `json:"text" mod:"trim" validate:"required,max=10000"`
	BookID      int     `json:"book_id" validate:"required,gt=0"`
	Context     *string `json:"context" mod:"trim" validate:"omitempty,max=2000"`
	PageNumber  *string `json:"page_number" mod:"trim" validate:"omitempty,max=32"`
	QuotedBy    *int    `json:"quoted_by" validate:"omitempty,gt=0"`
	IsImportant bool    `json:"is_important"`
	IsPrivate   bool    `json:"is_private"`
	TopicIDs    []int   `json:"topic_ids" validate:"omitempty,dive,gt=0"`
	TagIDs      []int   `json:"tag_ids" validate:"omitempty,dive,gt=0"`
	TypeIDs     []int   `json:"type_ids" validate:"omitempty,dive,gt=0"`
}

// UpdateQuotePayload uses pointers throughout so an omitted field can be told
// apart from a zero value. The id slices use pointers to slices for the same
// reason: an omitted slice leaves the links alone, an empty one clears them.
type UpdateQuotePayload struct {
	Text        *string `json:"text" mod:"trim" validate:"omitempty,max=10000"`
	BookID      *int    `json:"book_id" validate:"omitempty,gt=0"`
	Context     *string `json:"context" mod:"trim" validate:"omitempty,max=2000"`
	PageNumber  *string `json:"page_number" mod:"trim" validate:"omitempty,max=32"`
	QuotedBy    *int    `json:"quoted_by" validate:"omitempty,gt=0"`
	IsImportant *bool   `json:"is_important"`
	IsPrivate   *bool   `json:"is_private"`
	TopicIDs    *[]int  `json:"topic_ids" validate:"omitempty,dive,gt=0"`
	TagIDs      *[]int  `json:"tag_ids" validate:"omitempty,dive,gt=0"`
	TypeIDs     *[]int  `json:"type_ids" validate:"omitempty,dive,gt=0"`
}

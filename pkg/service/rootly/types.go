package rootly

// JSON:API documents exchanged with the Rootly REST API. Only the fields
// this service reads or writes are declared.

type userAttributes struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type userResource struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Attributes userAttributes `json:"attributes"`
}

type pageMeta struct {
	CurrentPage int  `json:"current_page"`
	NextPage    *int `json:"next_page"`
	TotalPages  int  `json:"total_pages"`
}

type userListResponse struct {
	Data []userResource `json:"data"`
	Meta pageMeta       `json:"meta"`
}

type shiftAttributes struct {
	UserID   int    `json:"user_id"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

type shiftResource struct {
	Type       string          `json:"type"`
	Attributes shiftAttributes `json:"attributes"`
}

type createShiftRequest struct {
	Data shiftResource `json:"data"`
}

type createShiftResponse struct {
	Data *struct {
		ID string `json:"id"`
	} `json:"data"`
}

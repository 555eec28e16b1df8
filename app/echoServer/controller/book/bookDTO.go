package book

type CreateBookReq struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// UpdateBookReq carries only the fields present in the request body;
// nil means "leave unchanged". Borrow state is not reachable from here.
type UpdateBookReq struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

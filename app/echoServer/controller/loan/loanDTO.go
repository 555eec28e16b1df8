package loan

type BorrowReq struct {
	Borrower string `json:"borrower"`
}

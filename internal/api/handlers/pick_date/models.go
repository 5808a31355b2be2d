package pick_date

// PickDateRequest - тело запроса на выбор даты
// Target: "start" или "end", Date: YYYY-MM-DD
type PickDateRequest struct {
	Target string `json:"target"`
	Date   string `json:"date"`
}

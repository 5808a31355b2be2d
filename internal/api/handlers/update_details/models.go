package update_details

// UpdateDetailsRequest - тело запроса на изменение заголовка и примечания
type UpdateDetailsRequest struct {
	Title string `json:"title"`
	Note  string `json:"note"`
}

package set_mode

// SetModeRequest - тело запроса на смену режима формы
type SetModeRequest struct {
	Mode string `json:"mode"`
}

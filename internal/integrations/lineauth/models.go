package lineauth

// Profile профиль пользователя из проверенного id token
type Profile struct {
	UserID      string // LINE user id (claim sub)
	DisplayName string // claim name, может быть пустым
}

// verifyResponse успешный ответ verify endpoint (набор claims токена)
type verifyResponse struct {
	Iss  string `json:"iss"`
	Sub  string `json:"sub"`
	Aud  string `json:"aud"`
	Exp  int64  `json:"exp"`
	Name string `json:"name"`
}

// errorResponse ответ платформы при отклонении токена
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

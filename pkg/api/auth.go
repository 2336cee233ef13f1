package api

// LoginRequest представляет запрос на вход с учетными данными облака
type LoginRequest struct {
	User     string `json:"user"`     // email аккаунта облака
	Password string `json:"password"` // пароль облака
}

// TokenResponse представляет ответ с токеном сессии
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT токен сессии
	ExpiresIn   int64  `json:"expires_in"`   // время жизни токена в секундах
	Trips       int    `json:"trips"`        // количество загруженных поездок
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

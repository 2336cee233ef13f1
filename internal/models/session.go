package models

import "time"

// Session представляет сессию share gateway, выданную после проверки логина в облаке
type Session struct {
	ID        string    `json:"id"`         // UUID сессии (jti в JWT)
	User      string    `json:"user"`       // логин облака
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
}

// TripSnapshot представляет сохраненный снимок поездок пользователя
type TripSnapshot struct {
	FetchedAt time.Time `json:"fetched_at"` // когда данные были получены из облака
	User      string    `json:"user"`       // логин облака
	Trips     []Trip    `json:"trips"`      // поездки в порядке облака (старые первыми)
}

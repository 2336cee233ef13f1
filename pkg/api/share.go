package api

import (
	"time"

	"github.com/iudanet/divelog/internal/models"
	"github.com/iudanet/divelog/internal/profile"
)

// ShareResponse представляет ответ с токеном и ссылкой на погружение
type ShareResponse struct {
	Token string `json:"token"` // токен вида 1-...
	URL   string `json:"url"`   // ссылка на страницу просмотра
}

// ProfileResponse представляет ряды профиля погружения
type ProfileResponse struct {
	Number  int             `json:"number"`
	Date    string          `json:"date"`
	Profile profile.Profile `json:"profile"`
}

// TripsResponse представляет сохраненный снимок поездок
type TripsResponse struct {
	FetchedAt time.Time     `json:"fetched_at"`
	Trips     []models.Trip `json:"trips"`
}

// Package api talks to the dive-log cloud that hosts the user's exported trips.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/divelog/internal/models"
)

var (
	// ErrMissingUser возвращается, если логин не задан
	ErrMissingUser = errors.New("no user has been provided")

	// ErrMissingPassword возвращается, если пароль не задан
	ErrMissingPassword = errors.New("no password has been provided")

	// ErrUnauthorized возвращается, если облако отклонило учетные данные
	ErrUnauthorized = errors.New("cloud rejected the credentials")

	// ErrNoTripData возвращается, если ни file.js, ни trips.json не доступны
	ErrNoTripData = errors.New("neither file.js nor trips.json are available")
)

// DefaultTimeout is used when NewClient gets a zero timeout.
const DefaultTimeout = 30 * time.Second

// Файлы экспорта поездок в порядке опроса
const (
	fileJS    = "file.js"
	tripsJSON = "trips.json"
)

// Client представляет HTTP клиент облака
type Client struct {
	httpClient *http.Client
	now        func() time.Time
	baseURL    string
}

// NewClient создает новый клиент облака
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
		httpClient: &http.Client{
			Timeout: timeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// FetchTrips загружает поездки пользователя. Сначала опрашивается file.js
// ("var trips = [...]"), затем trips.json.
func (c *Client) FetchTrips(ctx context.Context, login models.Login) ([]models.Trip, error) {
	if login.User == "" {
		return nil, ErrMissingUser
	}
	if login.Password == "" {
		return nil, ErrMissingPassword
	}

	rejected := 0
	for _, file := range []string{fileJS, tripsJSON} {
		trips, status, err := c.fetchFile(ctx, login, file)
		if err != nil {
			return nil, err
		}
		if trips != nil {
			return trips, nil
		}
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			rejected++
		}
	}

	if rejected == 2 {
		return nil, ErrUnauthorized
	}
	return nil, ErrNoTripData
}

// DataURL возвращает адрес файла экспорта пользователя
func (c *Client) DataURL(user, file string) string {
	q := url.Values{}
	q.Set("_uncache", strconv.FormatInt(c.now().UnixMilli(), 10))
	return fmt.Sprintf("%s/user/%s/dives.html_files/%s?%s", c.baseURL, url.PathEscape(user), file, q.Encode())
}

// fetchFile возвращает nil поездок без ошибки, если файл недоступен или не разбирается.
// Ошибка возвращается только при сбое самого запроса.
func (c *Client) fetchFile(ctx context.Context, login models.Login, file string) ([]models.Trip, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.DataURL(login.User, file), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(login.User, login.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, nil
	}

	// Читаем тело ответа
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	if file == fileJS {
		var ok bool
		body, ok = scriptPayload(body)
		if !ok {
			slog.Debug("trip script has no assignment", "file", file)
			return nil, resp.StatusCode, nil
		}
	}

	trips := []models.Trip{}
	if err := json.Unmarshal(body, &trips); err != nil {
		slog.Debug("trip data is not valid JSON", "file", file, "error", err)
		return nil, resp.StatusCode, nil
	}
	return trips, resp.StatusCode, nil
}

// scriptPayload вырезает JSON из "var trips = [...];"
func scriptPayload(body []byte) ([]byte, bool) {
	i := bytes.IndexByte(body, '=')
	if i < 0 {
		return nil, false
	}
	payload := bytes.TrimSpace(body[i+1:])
	payload = bytes.TrimSpace(bytes.TrimSuffix(payload, []byte(";")))
	return payload, true
}

package schedulecatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

// Client клиент каталога расписаний
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога расписаний
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailableWindows получает недельные окна специальности, у которых есть хотя бы один врач.
// date - необязательная подсказка, каталог может ее игнорировать.
func (c *Client) GetAvailableWindows(ctx context.Context, specialtyID uuid.UUID, date *time.Time) ([]domain.ScheduleWindow, error) {
	endpoint := fmt.Sprintf("%s/specialties/%s/schedules/available", c.baseURL, specialtyID)
	if date != nil {
		endpoint += "?" + url.Values{"date": []string{date.Format(domain.DateFormat)}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrSpecialtyNotFound, specialtyID)
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(resp.Body))
	}

	// Парсим ответ
	var payload []Window
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	windows := make([]domain.ScheduleWindow, 0, len(payload))
	for _, w := range payload {
		day, err := domain.ParseCanonicalDay(w.DayOfWeek)
		if err != nil {
			return nil, fmt.Errorf("%w: window day: %v", ErrInvalidResponse, err)
		}
		windows = append(windows, domain.ScheduleWindow{
			DayOfWeek: day,
			StartTime: w.StartTime.Time,
			EndTime:   w.EndTime.Time,
		})
	}

	c.log.Info("GetAvailableWindows: specialty=%s, windows=%d", specialtyID, len(windows))
	return windows, nil
}

// errorMessage достает сообщение из тела ошибки, если оно в формате ErrorResponse
func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))

	var payload ErrorResponse
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(raw)
}

package appointmentstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hospital/turns-service/internal/domain"
)

// Client клиент хранилища талонов
type Client struct {
	baseURL    string
	apiKey     string
	location   *time.Location
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища талонов.
// loc - часовой пояс, в котором разбираются календарные даты талонов.
func NewClient(baseURL, apiKey string, timeout time.Duration, loc *time.Location, log Logger) *Client {
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		location: loc,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateTurn создает талон. paymentUrl возвращается как есть.
func (c *Client) CreateTurn(ctx context.Context, payload *domain.TurnPayload) (*CreatedTurn, error) {
	var resp CreateTurnResponse
	if err := c.do(ctx, http.MethodPost, "/turns", newCreateTurnRequest(payload), &resp); err != nil {
		return nil, err
	}

	turn, err := resp.Turn.toDomain(c.location)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTurn - convert turn: %v", ErrInvalidResponse, err)
	}

	c.log.Info("CreateTurn: turn=%s created for user=%s", turn.ID, turn.UserID)
	return &CreatedTurn{Turn: turn, PaymentURL: resp.PaymentURL}, nil
}

// RescheduleTurn переносит талон на новую дату и время
func (c *Client) RescheduleTurn(ctx context.Context, req *domain.RescheduleRequest) (*RescheduledTurn, error) {
	var resp RescheduleResponse
	path := fmt.Sprintf("/turns/%s/reschedule", req.TurnID)
	if err := c.do(ctx, http.MethodPatch, path, newRescheduleRequest(req), &resp); err != nil {
		return nil, err
	}

	turn, err := resp.Turn.toDomain(c.location)
	if err != nil {
		return nil, fmt.Errorf("%w: RescheduleTurn - convert turn: %v", ErrInvalidResponse, err)
	}

	c.log.Info("RescheduleTurn: turn=%s moved to %s %s", turn.ID, turn.Date.Format(domain.DateFormat), turn.Time)
	return &RescheduledTurn{Message: resp.Message, Turn: turn}, nil
}

// UpdateTurnState меняет состояние талона
func (c *Client) UpdateTurnState(ctx context.Context, turnID uuid.UUID, state domain.TurnState) error {
	path := fmt.Sprintf("/turns/%s/state", turnID)
	if err := c.do(ctx, http.MethodPatch, path, UpdateStateRequest{State: string(state)}, nil); err != nil {
		return err
	}

	c.log.Info("UpdateTurnState: turn=%s state=%s", turnID, state)
	return nil
}

// DeleteTurn удаляет талон
func (c *Client) DeleteTurn(ctx context.Context, turnID uuid.UUID) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/turns/%s", turnID), nil, nil); err != nil {
		return err
	}

	c.log.Info("DeleteTurn: turn=%s deleted", turnID)
	return nil
}

// GetTurnByID получает талон по ID
func (c *Client) GetTurnByID(ctx context.Context, turnID uuid.UUID) (*domain.Turn, error) {
	var resp Turn
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/turns/%s", turnID), nil, &resp); err != nil {
		return nil, err
	}

	turn, err := resp.toDomain(c.location)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTurnByID - convert turn: %v", ErrInvalidResponse, err)
	}
	return turn, nil
}

// do выполняет запрос; body и out могут быть nil
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrRejected, errorMessage(resp.Body))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", domain.ErrTurnNotFound, method, path)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, errorMessage(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(resp.Body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
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

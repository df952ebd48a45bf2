package medicareapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const maxErrorBody = 4 << 10

// Client клиент REST API бэкенда MediCare
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента; metrics может быть nil
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsObserver) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// Login получает пару JWT-токенов
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	var tokens TokenPair
	body := LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login/", "", body, &tokens); err != nil {
		return nil, err
	}
	if tokens.Access == "" {
		return nil, fmt.Errorf("%w: login response has no access token", ErrInvalidResponse)
	}
	return &tokens, nil
}

// GetProfile возвращает пользователя, которому принадлежит токен
func (c *Client) GetProfile(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.do(ctx, "profile", http.MethodGet, "/users/profile/", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListDoctors возвращает верифицированных врачей
func (c *Client) ListDoctors(ctx context.Context) ([]User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "list_doctors", http.MethodGet, "/users/doctors/", "", nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[User](raw)
}

// GetUser возвращает пользователя по id
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	path := fmt.Sprintf("/users/%s/", url.PathEscape(id))
	if err := c.do(ctx, "get_user", http.MethodGet, path, "", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAppointments возвращает записи, видимые владельцу токена
func (c *Client) ListAppointments(ctx context.Context, accessToken string) ([]Appointment, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "list_appointments", http.MethodGet, "/appointments/", accessToken, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[Appointment](raw)
}

// CreateAppointment отправляет запись на приём
func (c *Client) CreateAppointment(ctx context.Context, accessToken string, req CreateAppointmentRequest) (*Appointment, error) {
	var appointment Appointment
	if err := c.do(ctx, "create_appointment", http.MethodPost, "/appointments/", accessToken, req, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// UpdateAppointmentStatus меняет статус записи
func (c *Client) UpdateAppointmentStatus(ctx context.Context, accessToken, id, status string) (*Appointment, error) {
	var appointment Appointment
	path := fmt.Sprintf("/appointments/%s/update_status/", url.PathEscape(id))
	body := UpdateStatusRequest{Status: status}
	if err := c.do(ctx, "update_appointment_status", http.MethodPost, path, accessToken, body, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (c *Client) do(ctx context.Context, endpoint, method, path, accessToken string, in, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveBackend(endpoint, outcome(err), time.Since(start))
		}
	}()

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("MediCare API %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, readDetail(resp.Body))
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, readDetail(resp.Body))
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warn("MediCare API %s %s returned %d", method, path, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// decodeList принимает как голый массив, так и DRF-страницу {"results": [...]}
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var page pagedResponse[T]
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, fmt.Errorf("%w: failed to decode page: %v", ErrInvalidResponse, err)
		}
		return page.Results, nil
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode list: %v", ErrInvalidResponse, err)
	}
	return items, nil
}

// readDetail достаёт сообщение из тела ошибки DRF: {"detail": "..."} или {"field": ["..."]}
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return "no details"
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return strings.TrimSpace(string(raw))
	}

	if d, ok := fields["detail"]; ok {
		var s string
		if json.Unmarshal(d, &s) == nil {
			return s
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		var msgs []string
		if json.Unmarshal(fields[k], &msgs) == nil && len(msgs) > 0 {
			parts = append(parts, k+": "+strings.Join(msgs, ", "))
			continue
		}
		var s string
		if json.Unmarshal(fields[k], &s) == nil {
			parts = append(parts, k+": "+s)
		}
	}
	if len(parts) == 0 {
		return strings.TrimSpace(string(raw))
	}
	return strings.Join(parts, "; ")
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrBadRequest):
		return "bad_request"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// Package clients содержит общие типы HTTP-клиентов внешних API.
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrMissingCredential - ключ внешнего API не настроен
	ErrMissingCredential = errors.New("external API credential is not configured")
	// ErrGeocodeFailure - адрес не удалось перевести в координаты
	ErrGeocodeFailure = errors.New("unable to geocode address")
	// ErrNoRoute - между точками нет маршрута
	ErrNoRoute = errors.New("no route found between specified points")
)

// HTTPDoer - минимальный интерфейс HTTP-клиента, подменяемый в тестах
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// UpstreamError - внешний API ответил кодом ошибки
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s API error %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s API error %d: %s", e.Service, e.StatusCode, e.Message)
}

// NewHTTPClient возвращает http.Client с таймаутом
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// GetJSON выполняет GET-запрос и декодирует JSON-ответ в dest.
// Коды >= 400 возвращаются как *UpstreamError.
func GetJSON(ctx context.Context, doer HTTPDoer, service, requestURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", service, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := doer.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute %s request: %w", service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &UpstreamError{Service: service, StatusCode: resp.StatusCode, Message: upstreamMessage(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", service, err)
	}
	return nil
}

// upstreamMessage достает текст ошибки из типичных полей JSON-ответа
func upstreamMessage(body []byte) string {
	var payload struct {
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return string(body)
	}
	switch {
	case payload.ErrorDescription != "":
		return payload.ErrorDescription
	case payload.Message != "":
		return payload.Message
	case payload.Error != "":
		return payload.Error
	}
	return string(body)
}

package holidayservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/LIFF-HolidayService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент holiday-webhook: создание записи и прикрепление напоминаний
type Client struct {
	submitURL    string
	remindersURL string
	httpClient   *http.Client
	log          Logger
}

// NewClient создает новый экземпляр клиента holidayservice
func NewClient(submitURL, remindersURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		submitURL:    submitURL,
		remindersURL: remindersURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateHoliday отправляет запись в webhook и возвращает присвоенный
// идентификатор. Ответ может быть объектом {id} или списком из одного
// элемента [{id}]: обе формы нормализуются. nil без ошибки означает,
// что запись принята, но id сервис не вернул
func (c *Client) CreateHoliday(ctx context.Context, idToken string, record *domain.HolidayRecord) (*int64, error) {
	body, err := c.post(ctx, c.submitURL, idToken, record)
	if err != nil {
		return nil, err
	}

	result, err := decodeCreateResult(body)
	if err != nil {
		return nil, err
	}

	if result.OK != nil && !*result.OK {
		msg := result.serverMessage()
		c.log.Warn("CreateHoliday: rejected by service: %s", msg)
		return nil, &RejectionError{Message: msg}
	}

	if result.ID.String() == "" {
		c.log.Warn("CreateHoliday: service accepted record but returned no id")
		return nil, nil
	}

	id, err := result.ID.Int64()
	if err != nil {
		return nil, fmt.Errorf("%w: unparsable id %q", ErrInvalidResponse, result.ID.String())
	}

	c.log.Info("CreateHoliday: record created, id=%d", id)
	return &id, nil
}

// AttachReminders прикрепляет напоминания к ранее созданной записи
func (c *Client) AttachReminders(ctx context.Context, idToken, userID string, holidayID int64, reminders []string) error {
	req := attachRemindersRequest{
		UserID:    userID,
		HolidayID: holidayID,
		Reminders: reminders,
	}

	if _, err := c.post(ctx, c.remindersURL, idToken, req); err != nil {
		return err
	}

	c.log.Info("AttachReminders: attached %d reminders to holiday id=%d", len(reminders), holidayID)
	return nil
}

// post выполняет JSON POST и возвращает тело 2xx ответа.
// Ошибки отображаются на sentinel errors пакета
func (c *Client) post(ctx context.Context, url, idToken string, payload interface{}) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if idToken != "" {
		req.Header.Set("Authorization", "Bearer "+idToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.log.Warn("post %s: id token rejected (status %d)", url, resp.StatusCode)
		return nil, ErrTokenExpired

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		// Сообщение сервиса важнее кода статуса, если оно есть
		if result, derr := decodeCreateResult(body); derr == nil && result.serverMessage() != "" {
			return nil, &RejectionError{Message: result.serverMessage()}
		}
		return nil, &RejectionError{Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}

	if readErr != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, readErr)
	}

	return body, nil
}

// decodeCreateResult разбирает тело ответа: объект или список из одного объекта
// Пустое тело допустимо (часть workflow отвечает без тела)
func decodeCreateResult(body []byte) (*createResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return &createResult{}, nil
	}

	if trimmed[0] == '[' {
		var list []createResult
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response list: %v", ErrInvalidResponse, err)
		}
		if len(list) == 0 {
			return &createResult{}, nil
		}
		return &list[0], nil
	}

	var result createResult
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return &result, nil
}

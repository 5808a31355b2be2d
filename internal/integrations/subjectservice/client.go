package subjectservice

import (
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

// Client клиент webhook справочника предметов
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента subjectservice
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSubjects получает список занятий пользователя.
// Ответ может быть конвертом {ok, items}, голым массивом занятий
// или массивом групп по дням: все три формата нормализуются
func (c *Client) GetSubjects(ctx context.Context, idToken string) ([]domain.Subject, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+idToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		c.log.Warn("GetSubjects: id token rejected (status %d)", resp.StatusCode)
		return nil, ErrTokenExpired
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Конверт {ok, items} или сразу массив
	raw := json.RawMessage(body)
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Items != nil {
		if env.OK != nil && !*env.OK {
			return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, env.Error)
		}
		raw = env.Items
	}

	subjects, err := normalizeSubjects(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode subjects: %v", ErrInvalidResponse, err)
	}

	c.log.Info("GetSubjects: fetched %d subjects", len(subjects))
	return subjects, nil
}

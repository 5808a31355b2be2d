package lineauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент проверки LINE id token
type Client struct {
	verifyURL  string
	channelID  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента lineauth
func NewClient(verifyURL, channelID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		verifyURL: verifyURL,
		channelID: channelID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// VerifyIDToken проверяет id token через verify endpoint платформы
// и возвращает профиль пользователя. Просроченный токен определяется
// локально по claims до сетевого вызова
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (*Profile, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, fmt.Errorf("%w: empty id token", ErrTokenInvalid)
	}

	// Локальная предпроверка exp: просроченный токен не имеет смысла
	// отправлять на verify endpoint
	if expired := c.isLocallyExpired(idToken); expired {
		c.log.Warn("VerifyIDToken: id token expired (local exp check)")
		return nil, ErrTokenExpired
	}

	form := url.Values{}
	form.Set("id_token", idToken)
	form.Set("client_id", c.channelID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnauthorized:
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			if strings.Contains(strings.ToLower(errResp.ErrorDescription), "expired") {
				c.log.Warn("VerifyIDToken: id token expired: %s", errResp.ErrorDescription)
				return nil, ErrTokenExpired
			}
			return nil, fmt.Errorf("%w: %s", ErrTokenInvalid, errResp.ErrorDescription)
		}
		return nil, ErrTokenInvalid
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var claims verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if claims.Sub == "" {
		return nil, fmt.Errorf("%w: response has no sub claim", ErrInvalidResponse)
	}

	c.log.Info("VerifyIDToken: token verified for user=%s", claims.Sub)
	return &Profile{
		UserID:      claims.Sub,
		DisplayName: claims.Name,
	}, nil
}

// isLocallyExpired читает exp из токена без проверки подписи
// Подпись проверяет verify endpoint; здесь только ранний отсев
func (c *Client) isLocallyExpired(idToken string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		// нечитаемый токен отдадим платформе, она вернет точную причину
		return false
	}
	return !claims.VerifyExpiresAt(time.Now().Unix(), false)
}

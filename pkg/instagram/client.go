package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"promo_go/models"
)

// Пакет instagram отвечает за получение метрик вовлечённости из Graph API.
// Провайдер один, бэкендов два: боевой HTTP-клиент и заглушка без сети.
// Бэкенд выбирается конфигурацией, параллельных путей в пайплайне нет.

// metricFields — поля, запрашиваемые у Graph API для каждого медиа.
const metricFields = "like_count,comments_count,permalink,impressions,reach"

// Provider выдаёт метрики вовлечённости по внешнему идентификатору медиа.
type Provider interface {
	FetchMetrics(ctx context.Context, mediaID string) (models.Metrics, error)
}

// ProviderError описывает неуспешный ответ Graph API.
// Статус и тело сохраняются целиком для диагностики.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("graph api: статус %d: %s", e.StatusCode, e.Body)
}

// StubMetrics возвращает метрики «холодного старта»: один лайк без комментариев.
// Заглушка позволяет гонять пайплайн оценок без токена и при сбоях провайдера.
func StubMetrics() models.Metrics {
	return models.Metrics{LikeCount: 1, CommentCount: 0}
}

// Client — боевой провайдер поверх HTTP GET к Graph API.
// Ретраев нет: подстановка заглушки при сбое — ответственность пайплайна.
type Client struct {
	BaseURL    string // например https://graph.facebook.com
	APIVersion string
	Token      string
	HTTPClient *http.Client
}

// NewClient создаёт клиент Graph API с таймаутом на каждый вызов.
func NewClient(host, apiVersion, token string) *Client {
	return &Client{
		BaseURL:    "https://" + host,
		APIVersion: apiVersion,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchMetrics запрашивает метрики медиа.
// Любой статус вне 2xx и нечитаемое тело превращаются в *ProviderError.
func (c *Client) FetchMetrics(ctx context.Context, mediaID string) (models.Metrics, error) {
	query := url.Values{}
	query.Set("fields", metricFields)
	query.Set("access_token", c.Token)
	endpoint := fmt.Sprintf("%s/%s/%s?%s", c.BaseURL, c.APIVersion, url.PathEscape(mediaID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Metrics{}, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return models.Metrics{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Metrics{}, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return models.Metrics{}, &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		LikeCount     int    `json:"like_count"`
		CommentsCount int    `json:"comments_count"`
		Permalink     string `json:"permalink"`
		Impressions   *int   `json:"impressions"`
		Reach         *int   `json:"reach"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		// Тело не разбирается как ожидаемая структура — тоже ошибка провайдера.
		return models.Metrics{}, &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return models.Metrics{
		LikeCount:    payload.LikeCount,
		CommentCount: payload.CommentsCount,
		Permalink:    payload.Permalink,
		Impressions:  payload.Impressions,
		Reach:        payload.Reach,
	}, nil
}

// StubProvider — бэкенд без сети для работы без настроенного токена.
type StubProvider struct{}

// FetchMetrics всегда возвращает метрики заглушки и не ходит в сеть.
func (StubProvider) FetchMetrics(ctx context.Context, mediaID string) (models.Metrics, error) {
	return StubMetrics(), nil
}

// NewProvider выбирает бэкенд по наличию токена:
// пустой токен включает заглушку, сетевые вызовы не выполняются вовсе.
func NewProvider(host, apiVersion, token string) Provider {
	if token == "" {
		log.Printf("[INSTAGRAM] токен не задан, метрики отдаёт заглушка")
		return StubProvider{}
	}
	return NewClient(host, apiVersion, token)
}

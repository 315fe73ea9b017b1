// Package genai は生成AI APIのHTTPクライアントを提供する。
// generateContentエンドポイントへのリクエスト構築とレスポンス解析を行い、
// チャット応答と画像生成の両方で使用される。
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// defaultBaseURL は生成AI APIのデフォルトベースURL。
const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Part はコンテンツの構成要素。テキストまたはインライン画像データを持つ。
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData はbase64エンコードされたバイナリデータ。
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Content はロール付きのコンテンツ。会話履歴の1要素に相当する。
type Content struct {
	Role  string `json:"role,omitempty"` // "user" または "model"
	Parts []Part `json:"parts"`
}

// ImageConfig は画像生成の設定。
type ImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

// GenerationConfig は生成パラメータ。
type GenerationConfig struct {
	Temperature *float64     `json:"temperature,omitempty"`
	ImageConfig *ImageConfig `json:"imageConfig,omitempty"`
}

// Request はgenerateContentリクエスト。
type Request struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Response はgenerateContentレスポンス。
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate は生成候補。
type Candidate struct {
	Content Content `json:"content"`
}

// Text は先頭候補のテキストパートを連結して返す。候補がない場合は空文字列。
func (r *Response) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var out string
	for _, part := range r.Candidates[0].Content.Parts {
		out += part.Text
	}
	return out
}

// InlineImage は先頭候補から最初のインライン画像データを返す。
// 画像パートが含まれない場合はnilを返す。
func (r *Response) InlineImage() *InlineData {
	if len(r.Candidates) == 0 {
		return nil
	}
	for _, part := range r.Candidates[0].Content.Parts {
		if part.InlineData != nil && part.InlineData.Data != "" {
			return part.InlineData
		}
	}
	return nil
}

// Config はClientの設定。
type Config struct {
	APIKey  string
	BaseURL string // 空の場合はdefaultBaseURL。テスト用に差し替え可能
}

// Client は生成AI APIのHTTPクライアント。
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	baseURL    string
}

// NewClient はClientの新しいインスタンスを生成する。
// httpClientにはSSRF防止付きクライアントを渡すこと。
func NewClient(httpClient *http.Client, logger *slog.Logger, cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
	}
}

// GenerateContent は指定モデルでコンテンツ生成を実行する。
// APIエラー時はステータスコードを含むエラーを返す。
func (c *Client) GenerateContent(ctx context.Context, model string, genReq *Request) (*Response, error) {
	payload, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("リクエストのエンコードに失敗しました: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("HTTPリクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("生成AI APIの呼び出しに失敗しました",
			slog.String("model", model),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("レスポンスボディの読み取りに失敗しました: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("生成AI APIがエラーステータスを返しました",
			slog.String("model", model),
			slog.Int("http_status", resp.StatusCode),
		)
		return nil, fmt.Errorf("生成AI APIがステータス %d を返しました", resp.StatusCode)
	}

	var result Response
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Error("生成AI APIのレスポンスのパースに失敗しました",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("レスポンスJSONのパースに失敗しました: %w", err)
	}

	return &result, nil
}

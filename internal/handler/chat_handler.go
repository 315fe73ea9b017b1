package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gdhispano/hub/internal/assistant"
	"github.com/gdhispano/hub/internal/model"
)

// AssistantServiceInterface はチャットハンドラーが必要とするサービスインターフェース。
type AssistantServiceInterface interface {
	// StartSession は新しいチャットセッションを開始しIDを返す。
	StartSession() string
	// SendMessage はセッションの履歴つきでメッセージを送信し、構造化応答を返す。
	SendMessage(ctx context.Context, sessionID, message string) (*assistant.Reply, error)
	// AnalyzeSiteRisk はサイト名またはURLの単発リスク分析を返す。
	AnalyzeSiteRisk(ctx context.Context, siteNameOrURL string) (string, error)
}

// ChatHandler はAIアシスタントのHTTPハンドラー。
// チャットセッションIDはブラウザセッションに紐づき、初回メッセージで
// 自動的に開始される。
type ChatHandler struct {
	registry SessionResolver
	service  AssistantServiceInterface
}

// NewChatHandler はChatHandlerを生成する。
func NewChatHandler(registry SessionResolver, service AssistantServiceInterface) *ChatHandler {
	return &ChatHandler{
		registry: registry,
		service:  service,
	}
}

// chatMessageRequest はチャットメッセージ送信リクエストのボディ。
type chatMessageRequest struct {
	Message string `json:"message"`
}

// chatMessageResponse は構造化されたチャット応答。
type chatMessageResponse struct {
	Segments []assistant.Segment `json:"segments"`
	Options  []string            `json:"options,omitempty"`
}

// analyzeSiteRequest はサイトリスク分析リクエストのボディ。
type analyzeSiteRequest struct {
	Site string `json:"site"`
}

// analyzeSiteResponse はサイトリスク分析のレスポンス。
type analyzeSiteResponse struct {
	Analysis string `json:"analysis"`
}

// StartSession は新しいチャットセッションを開始する。
// 既存のセッションがある場合は破棄して新規に始める。
// POST /api/chat/session
func (h *ChatHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	id := h.service.StartSession()
	bs.SetChatID(id)

	w.WriteHeader(http.StatusCreated)
}

// SendMessage はアシスタントにメッセージを送信する。
// POST /api/chat/message
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	var req chatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "El mensaje no puede estar vacío.",
			Category: "validation",
			Action:   "Escribe un mensaje antes de enviar.",
		})
		return
	}

	chatID := bs.ChatID()
	if chatID == "" {
		chatID = h.service.StartSession()
		bs.SetChatID(chatID)
	}

	reply, err := h.service.SendMessage(r.Context(), chatID, message)
	if err != nil {
		// 期限切れで掃除されたセッションは透過的に張り直す
		var apiErr *model.APIError
		if errors.As(err, &apiErr) && apiErr.Code == model.ErrCodeSessionNotFound {
			chatID = h.service.StartSession()
			bs.SetChatID(chatID)
			reply, err = h.service.SendMessage(r.Context(), chatID, message)
		}
		if err != nil {
			handleServiceError(w, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chatMessageResponse{
		Segments: reply.Segments,
		Options:  reply.Options,
	})
}

// AnalyzeSite はサイト名またはURLの単発リスク分析を実行する。
// POST /api/chat/analyze-site
func (h *ChatHandler) AnalyzeSite(w http.ResponseWriter, r *http.Request) {
	if _, ok := browserSession(w, r, h.registry); !ok {
		return
	}

	var req analyzeSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	site := strings.TrimSpace(req.Site)
	if site == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "Indica el nombre o la URL del sitio a analizar.",
			Category: "validation",
			Action:   "Escribe el sitio antes de enviar.",
		})
		return
	}

	analysis, err := h.service.AnalyzeSiteRisk(r.Context(), site)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analyzeSiteResponse{Analysis: analysis})
}

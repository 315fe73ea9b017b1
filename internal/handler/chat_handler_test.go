package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gdhispano/hub/internal/assistant"
	"github.com/gdhispano/hub/internal/model"
)

// mockAssistantService はAssistantServiceInterfaceのテスト用モック。
type mockAssistantService struct {
	startSessionFunc    func() string
	sendMessageFunc     func(ctx context.Context, sessionID, message string) (*assistant.Reply, error)
	analyzeSiteRiskFunc func(ctx context.Context, site string) (string, error)
}

func (m *mockAssistantService) StartSession() string {
	if m.startSessionFunc != nil {
		return m.startSessionFunc()
	}
	return "chat-1"
}

func (m *mockAssistantService) SendMessage(ctx context.Context, sessionID, message string) (*assistant.Reply, error) {
	if m.sendMessageFunc != nil {
		return m.sendMessageFunc(ctx, sessionID, message)
	}
	return &assistant.Reply{Segments: []assistant.Segment{{Type: assistant.SegmentText, Text: "hola"}}}, nil
}

func (m *mockAssistantService) AnalyzeSiteRisk(ctx context.Context, site string) (string, error) {
	if m.analyzeSiteRiskFunc != nil {
		return m.analyzeSiteRiskFunc(ctx, site)
	}
	return "", nil
}

// TestChatHandler_SendMessage はメッセージ送信と構造化応答の受け渡しを検証する。
func TestChatHandler_SendMessage(t *testing.T) {
	var gotSessionID, gotMessage string
	service := &mockAssistantService{
		sendMessageFunc: func(ctx context.Context, sessionID, message string) (*assistant.Reply, error) {
			gotSessionID = sessionID
			gotMessage = message
			return &assistant.Reply{
				Segments: []assistant.Segment{
					{Type: assistant.SegmentText, Text: "Revisa "},
					{Type: assistant.SegmentLink, Text: "UserTesting", Href: "#method-1"},
				},
				Options: []string{"Ver más métodos"},
			}, nil
		},
	}
	reg := newTestRegistry(t, &fakeProvider{})
	h := NewChatHandler(reg, service)

	w := doHandlerRequest(t, h.SendMessage, http.MethodPost, "/api/chat/message", "sid-1", chatMessageRequest{Message: "¿Qué método me recomiendas?"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotMessage != "¿Qué método me recomiendas?" {
		t.Errorf("message = %q", gotMessage)
	}
	// セッション未開始なら自動的に開始される
	if gotSessionID != "chat-1" {
		t.Errorf("session id = %q, want chat-1", gotSessionID)
	}

	var resp chatMessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(resp.Segments))
	}
	if resp.Segments[1].Href != "#method-1" {
		t.Errorf("href = %q, want #method-1", resp.Segments[1].Href)
	}
	if len(resp.Options) != 1 || resp.Options[0] != "Ver más métodos" {
		t.Errorf("options = %v", resp.Options)
	}
}

// TestChatHandler_SendMessage_ReusesSession は同一ブラウザセッションで
// チャットセッションが使い回されることを検証する。
func TestChatHandler_SendMessage_ReusesSession(t *testing.T) {
	starts := 0
	service := &mockAssistantService{
		startSessionFunc: func() string {
			starts++
			return "chat-1"
		},
	}
	reg := newTestRegistry(t, &fakeProvider{})
	h := NewChatHandler(reg, service)

	doHandlerRequest(t, h.SendMessage, http.MethodPost, "/api/chat/message", "sid-1", chatMessageRequest{Message: "hola"})
	doHandlerRequest(t, h.SendMessage, http.MethodPost, "/api/chat/message", "sid-1", chatMessageRequest{Message: "otra"})

	if starts != 1 {
		t.Errorf("StartSession called %d times, want 1", starts)
	}
}

// TestChatHandler_SendMessage_EmptyMessage は空メッセージが400になることを検証する。
func TestChatHandler_SendMessage_EmptyMessage(t *testing.T) {
	reg := newTestRegistry(t, &fakeProvider{})
	h := NewChatHandler(reg, &mockAssistantService{})

	tests := []string{"", "   ", "\n\t"}
	for _, msg := range tests {
		w := doHandlerRequest(t, h.SendMessage, http.MethodPost, "/api/chat/message", "sid-1", chatMessageRequest{Message: msg})
		if w.Code != http.StatusBadRequest {
			t.Errorf("message %q: status = %d, want 400", msg, w.Code)
		}
	}
}

// TestChatHandler_SendMessage_ExpiredSessionRestarts は期限切れチャットセッションが
// 透過的に張り直されることを検証する。
func TestChatHandler_SendMessage_ExpiredSessionRestarts(t *testing.T) {
	starts := 0
	service := &mockAssistantService{
		startSessionFunc: func() string {
			starts++
			if starts == 1 {
				return "chat-stale"
			}
			return "chat-fresh"
		},
		sendMessageFunc: func(ctx context.Context, sessionID, message string) (*assistant.Reply, error) {
			if sessionID == "chat-stale" {
				return nil, model.NewSessionNotFoundError()
			}
			return &assistant.Reply{Segments: []assistant.Segment{{Type: assistant.SegmentText, Text: "hola"}}}, nil
		},
	}
	reg := newTestRegistry(t, &fakeProvider{})
	h := NewChatHandler(reg, service)

	// 1通目で古いセッションIDを掴ませる
	doHandlerRequest(t, h.SendMessage, http.MethodPost, "/api/chat/message", "sid-1", chatMessageRequest{Message: "hola"})

	if starts != 2 {
		t.Errorf("StartSession called %d times, want 2 (retry after stale session)", starts)
	}
	if got := reg.Session("sid-1").ChatID(); got != "chat-fresh" {
		t.Errorf("chat id = %q, want chat-fresh", got)
	}
}

// TestChatHandler_SendMessage_AIUnavailable はAI障害が502になることを検証する。
func TestChatHandler_SendMessage_AIUnavailable(t *testing.T) {
	service := &mockAssistantService{
		sendMessageFunc: func(ctx context.Context, sessionID, message string) (*assistant.Reply, error) {
			return nil, model.NewAIUnavailableError()
		},
	}
	reg := newTestRegistry(t, &fakeProvider{})
	h := NewChatHandler(reg, service)

	w := doHandlerRequest(t, h.SendMessage, http.MethodPost, "/api/chat/message", "sid-1", chatMessageRequest{Message: "hola"})

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

// TestChatHandler_StartSession は明示的なセッション開始を検証する。
func TestChatHandler_StartSession(t *testing.T) {
	service := &mockAssistantService{
		startSessionFunc: func() string { return "chat-new" },
	}
	reg := newTestRegistry(t, &fakeProvider{})
	h := NewChatHandler(reg, service)

	w := doHandlerRequest(t, h.StartSession, http.MethodPost, "/api/chat/session", "sid-1", nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if got := reg.Session("sid-1").ChatID(); got != "chat-new" {
		t.Errorf("chat id = %q, want chat-new", got)
	}
}

// TestChatHandler_AnalyzeSite はサイトリスク分析のリクエスト処理を検証する。
func TestChatHandler_AnalyzeSite(t *testing.T) {
	var gotSite string
	service := &mockAssistantService{
		analyzeSiteRiskFunc: func(ctx context.Context, site string) (string, error) {
			gotSite = site
			return "Riesgo alto: plataforma sin regulación conocida.", nil
		},
	}
	reg := newTestRegistry(t, &fakeProvider{})
	h := NewChatHandler(reg, service)

	w := doHandlerRequest(t, h.AnalyzeSite, http.MethodPost, "/api/chat/analyze-site", "sid-1", analyzeSiteRequest{Site: "dudoso-pagos.com"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotSite != "dudoso-pagos.com" {
		t.Errorf("site = %q", gotSite)
	}

	var resp analyzeSiteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Analysis == "" {
		t.Error("expected non-empty analysis")
	}

	// 空サイトは400
	w = doHandlerRequest(t, h.AnalyzeSite, http.MethodPost, "/api/chat/analyze-site", "sid-1", analyzeSiteRequest{Site: "  "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty site: status = %d, want 400", w.Code)
	}
}

// Package assistant はAIアシスタント「Neo」のチャット機能を提供する。
//
// サイトのカタログ全体をシステム指示に埋め込み、推奨時には必ず
// ディープリンク（#method-1等）を返すようモデルを誘導する。
// 会話履歴はセッションIDごとにサーバー側で保持する。
package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gdhispano/hub/internal/genai"
	"github.com/gdhispano/hub/internal/model"
)

const (
	// chatTemperature はチャット応答の生成温度。
	chatTemperature = 0.4
	// analyzeTemperature はサイトリスク分析の生成温度。
	analyzeTemperature = 0.3
	// maxHistoryTurns は1セッションで保持する会話履歴の最大要素数。
	// 超過時は古いものから捨てる。
	maxHistoryTurns = 40
	// sessionTTL は最終アクセスからセッションを破棄するまでの時間。
	sessionTTL = 30 * time.Minute
	// cleanupInterval は期限切れセッションのクリーンアップ間隔。
	cleanupInterval = 5 * time.Minute
)

// SiteData はシステム指示の構築に必要なカタログ操作の部分集合。
type SiteData interface {
	ListMethods(category model.MethodCategory) []model.Method
	ListScams() []model.ScamEntry
	ListPosts() []model.BlogPost
}

// Recorder はチャットメトリクスの記録インターフェース。
type Recorder interface {
	RecordChatMessage(duration time.Duration, success bool)
}

type nopRecorder struct{}

func (nopRecorder) RecordChatMessage(time.Duration, bool) {}

// chatSession は1セッション分の会話履歴。
type chatSession struct {
	history    []genai.Content
	lastAccess time.Time
}

// Service はチャットセッション管理とAI呼び出しを提供する。
type Service struct {
	client    *genai.Client
	chatModel string
	metrics   Recorder

	systemInstruction string

	mu       sync.Mutex
	sessions map[string]*chatSession
	stopCh   chan struct{}
}

// NewService はServiceを生成し、バックグラウンドで期限切れセッションの
// クリーンアップを開始する。システム指示はこの時点のカタログから構築される。
func NewService(client *genai.Client, chatModel string, site SiteData, metrics Recorder) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	s := &Service{
		client:            client,
		chatModel:         chatModel,
		metrics:           metrics,
		systemInstruction: buildSystemInstruction(site),
		sessions:          make(map[string]*chatSession),
		stopCh:            make(chan struct{}),
	}

	go s.cleanupLoop()

	return s
}

// Stop はクリーンアップのバックグラウンドゴルーチンを停止する。
func (s *Service) Stop() {
	close(s.stopCh)
}

// StartSession は新しいチャットセッションを作成し、そのIDを返す。
func (s *Service) StartSession() string {
	id := uuid.New().String()

	s.mu.Lock()
	s.sessions[id] = &chatSession{lastAccess: time.Now()}
	s.mu.Unlock()

	return id
}

// SessionCount は現在保持しているセッション数を返す。テストおよびメトリクス用。
func (s *Service) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// SendMessage はユーザーメッセージを送信し、構造化された応答を返す。
// セッションが存在しない場合はSESSION_NOT_FOUNDエラーを返す。
// AI呼び出し失敗時はAI_UNAVAILABLEエラーを返す（履歴にユーザー発話は残さない）。
func (s *Service) SendMessage(ctx context.Context, sessionID, message string) (*Reply, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, model.NewSessionNotFoundError()
	}
	sess.lastAccess = time.Now()

	// AI呼び出し中はロックを持たない。履歴のスナップショットを取る。
	contents := make([]genai.Content, len(sess.history), len(sess.history)+1)
	copy(contents, sess.history)
	s.mu.Unlock()

	contents = append(contents, genai.Content{
		Role:  "user",
		Parts: []genai.Part{{Text: message}},
	})

	temp := chatTemperature
	start := time.Now()
	resp, err := s.client.GenerateContent(ctx, s.chatModel, &genai.Request{
		Contents:          contents,
		SystemInstruction: &genai.Content{Parts: []genai.Part{{Text: s.systemInstruction}}},
		GenerationConfig:  &genai.GenerationConfig{Temperature: &temp},
	})
	if err != nil {
		s.metrics.RecordChatMessage(time.Since(start), false)
		return nil, model.NewAIUnavailableError()
	}
	s.metrics.RecordChatMessage(time.Since(start), true)

	raw := resp.Text()

	s.mu.Lock()
	if sess, ok := s.sessions[sessionID]; ok {
		sess.history = append(sess.history,
			genai.Content{Role: "user", Parts: []genai.Part{{Text: message}}},
			genai.Content{Role: "model", Parts: []genai.Part{{Text: raw}}},
		)
		if len(sess.history) > maxHistoryTurns {
			sess.history = sess.history[len(sess.history)-maxHistoryTurns:]
		}
	}
	s.mu.Unlock()

	reply := Tokenize(raw)
	return &reply, nil
}

// AnalyzeSiteRisk は指定サイトの簡易リスク分析を実行する。
// 単発呼び出しであり、会話履歴には含めない。
func (s *Service) AnalyzeSiteRisk(ctx context.Context, siteNameOrURL string) (string, error) {
	prompt := fmt.Sprintf(`Analiza el sitio %q brevemente.
Contexto: Auditoría de seguridad para ganar dinero online.

Reglas:
1. Si es Venta de Reseñas, Cuentas o Airdrops -> ES LEGÍTIMO (Grey Hat).
2. Si es Ponzi/Inversión con retorno fijo -> ES SCAM.

Responde en 3 líneas máximo. Formato Markdown.`, siteNameOrURL)

	temp := analyzeTemperature
	resp, err := s.client.GenerateContent(ctx, s.chatModel, &genai.Request{
		Contents:         []genai.Content{{Role: "user", Parts: []genai.Part{{Text: prompt}}}},
		GenerationConfig: &genai.GenerationConfig{Temperature: &temp},
	})
	if err != nil {
		return "", model.NewAIUnavailableError()
	}

	text := resp.Text()
	if text == "" {
		text = "Sin datos suficientes."
	}
	return text, nil
}

// buildSystemInstruction はカタログ全体を埋め込んだシステム指示を構築する。
func buildSystemInstruction(site SiteData) string {
	var ctx strings.Builder

	ctx.WriteString("DATOS DE LA WEB (Gana Dinero Hispano):\n\n")

	ctx.WriteString("1. BASE DE DATOS DE AUDITORÍA (Estafas y Sitios):\n")
	for _, e := range site.ListScams() {
		fmt.Fprintf(&ctx, "- Nombre: %s | Estado: %s | ID: %s | Link: [#scam-%s]\n", e.Name, e.Status, e.ID, e.ID)
	}

	ctx.WriteString("\n2. MÉTODOS Y CURSOS DISPONIBLES EN EL DIRECTORIO:\n")
	for _, m := range site.ListMethods("") {
		premium := "NO (Gratis)"
		if m.IsPremium {
			premium = "SÍ (Pago)"
		}
		fmt.Fprintf(&ctx, "- Nombre: %s | Categoría: %s | Es Premium: %s | ID: %s | Link: [#method-%s]\n", m.Name, m.Category, premium, m.ID, m.ID)
	}

	ctx.WriteString("\n3. GUÍAS DEL BLOG:\n")
	for _, p := range site.ListPosts() {
		premium := "NO"
		if p.IsPremium {
			premium = "SÍ"
		}
		fmt.Fprintf(&ctx, "- Título: %s | Es Premium: %s | Link: [#blog-%s]\n", p.Title, premium, p.ID)
	}

	return fmt.Sprintf(`Eres "Neo", el Auditor Jefe de GDH.

OBJETIVO: Ser un filtro eficiente. Guía al usuario a LA MEJOR opción específica.

CONTEXTO DE DATOS:
%s

REGLAS DE FORMATO (CRÍTICO):
1. **Brevedad:** 1 o 2 frases máximo.
2. **Chips de Decisión:** Si necesitas filtrar, usa: ||OPTIONS: ["Opción A", "Opción B"]||
3. **ENLACES ESPECÍFICOS:**
   - Cuando recomiendes algo, NO uses enlaces genéricos como #directory.
   - USA EL LINK EXACTO DEL CONTEXTO (ej: [Ver Curso](#method-1) o [Ver Ficha](#scam-s1)).
   - Esto es vital para que la web resalte el elemento al usuario.

EJEMPLOS:

Usuario: "Recomiéndame un curso gratis"
Neo: La mejor opción verificada para empezar sin inversión es el testeo de webs.
[Ver UserTesting](#method-1)

Usuario: "¿OmegaPro es real?"
Neo: No. Es una estafa Ponzi confirmada. Aquí tienes el reporte oficial.
[Ver Reporte OmegaPro](#scam-s1)

Usuario: "Quiero invertir"
Neo: ¿Qué perfil de inversión buscas?
||OPTIONS: ["Cripto Activo (Trading)", "Cripto Pasivo (Earn)", "Negocio Digital"]||
`, ctx.String())
}

// cleanupLoop はバックグラウンドで期限切れセッションを定期的にクリーンアップする。
func (s *Service) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup は最終アクセスからsessionTTLを超えたセッションを削除する。
func (s *Service) cleanup() {
	now := time.Now()

	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastAccess) > sessionTTL {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gdhispano/hub/internal/model"
)

// CatalogServiceInterface はカタログハンドラーが必要とするサービスインターフェース。
type CatalogServiceInterface interface {
	// ListMethods はメソッド一覧を返す。categoryが空の場合は全件。
	ListMethods(category model.MethodCategory) []model.Method
	// GetMethod は指定IDのメソッドをガイド本文付きで返す。
	GetMethod(id string, ident *model.Identity) (*model.Method, error)
	// ListScams は監査データベースの全エントリを返す。
	ListScams() []model.ScamEntry
	// GetScam は指定IDの監査エントリを返す。
	GetScam(id string) (*model.ScamEntry, error)
	// ListPosts はブログ記事一覧を返す。
	ListPosts() []model.BlogPost
	// GetPost は指定IDのブログ記事を本文付きで返す。
	GetPost(id string, ident *model.Identity) (*model.BlogPost, error)
}

// DenialRecorder はプレミアムゲート拒否の記録インターフェース。
// metrics.Collectorの部分集合として定義する。
type DenialRecorder interface {
	RecordGateDenial(surface string)
}

type nopDenialRecorder struct{}

func (nopDenialRecorder) RecordGateDenial(string) {}

// CatalogHandler はメソッド/監査/ブログカタログのHTTPハンドラー。
type CatalogHandler struct {
	registry SessionResolver
	service  CatalogServiceInterface
	denials  DenialRecorder
}

// NewCatalogHandler はCatalogHandlerを生成する。denialsはnil可。
func NewCatalogHandler(registry SessionResolver, service CatalogServiceInterface, denials DenialRecorder) *CatalogHandler {
	if denials == nil {
		denials = nopDenialRecorder{}
	}
	return &CatalogHandler{
		registry: registry,
		service:  service,
		denials:  denials,
	}
}

// methodResponse は収益メソッドのAPIレスポンス。
type methodResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	Verified           bool    `json:"verified"`
	InvestmentRequired bool    `json:"investment_required"`
	Difficulty         string  `json:"difficulty"`
	Rating             float64 `json:"rating"`
	Link               string  `json:"link"`
	IsPremium          bool    `json:"is_premium"`
	PotentialEarnings  string  `json:"potential_earnings"`
	Content            string  `json:"content,omitempty"`
}

// scamResponse は監査エントリのAPIレスポンス。
type scamResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	RiskLevel    string `json:"risk_level"`
	Status       string `json:"status"`
	Reason       string `json:"reason"`
	DateReported string `json:"date_reported"`
}

// postResponse はブログ記事のAPIレスポンス。
type postResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content,omitempty"`
	Category  string `json:"category"`
	ReadTime  string `json:"read_time"`
	Date      string `json:"date"`
	ImageURL  string `json:"image_url"`
	IsPremium bool   `json:"is_premium"`
}

func toMethodResponse(m model.Method) methodResponse {
	return methodResponse{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        m.Description,
		Category:           string(m.Category),
		Verified:           m.Verified,
		InvestmentRequired: m.InvestmentRequired,
		Difficulty:         string(m.Difficulty),
		Rating:             m.Rating,
		Link:               m.Link,
		IsPremium:          m.IsPremium,
		PotentialEarnings:  m.PotentialEarnings,
		Content:            m.Content,
	}
}

func toScamResponse(s model.ScamEntry) scamResponse {
	return scamResponse{
		ID:           s.ID,
		Name:         s.Name,
		Type:         s.Type,
		RiskLevel:    string(s.RiskLevel),
		Status:       string(s.Status),
		Reason:       s.Reason,
		DateReported: s.DateReported,
	}
}

func toPostResponse(p model.BlogPost) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		Category:  p.Category,
		ReadTime:  p.ReadTime,
		Date:      p.Date,
		ImageURL:  p.ImageURL,
		IsPremium: p.IsPremium,
	}
}

// recordIfLocked はCONTENT_LOCKEDエラーをゲート拒否として記録する。
func (h *CatalogHandler) recordIfLocked(err error, surface string) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) && apiErr.Code == model.ErrCodeContentLocked {
		h.denials.RecordGateDenial(surface)
	}
}

// ListMethods は収益メソッド一覧を取得する。
// GET /api/methods?category=
func (h *CatalogHandler) ListMethods(w http.ResponseWriter, r *http.Request) {
	category := model.MethodCategory(r.URL.Query().Get("category"))

	methods := h.service.ListMethods(category)
	results := make([]methodResponse, len(methods))
	for i, m := range methods {
		results[i] = toMethodResponse(m)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// GetMethod は収益メソッドをガイド本文付きで取得する。
// GET /api/methods/{id}
func (h *CatalogHandler) GetMethod(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	m, err := h.service.GetMethod(id, bs.Store.Current())
	if err != nil {
		h.recordIfLocked(err, "method")
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toMethodResponse(*m))
}

// ListScams は監査データベースの全エントリを取得する。
// GET /api/scams
func (h *CatalogHandler) ListScams(w http.ResponseWriter, r *http.Request) {
	scams := h.service.ListScams()
	results := make([]scamResponse, len(scams))
	for i, s := range scams {
		results[i] = toScamResponse(s)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// GetScam は監査エントリを取得する。
// GET /api/scams/{id}
func (h *CatalogHandler) GetScam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, err := h.service.GetScam(id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toScamResponse(*s))
}

// ListPosts はブログ記事一覧を取得する。
// GET /api/blog
func (h *CatalogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.service.ListPosts()
	results := make([]postResponse, len(posts))
	for i, p := range posts {
		results[i] = toPostResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// GetPost はブログ記事を本文付きで取得する。
// GET /api/blog/{id}
func (h *CatalogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	p, err := h.service.GetPost(id, bs.Store.Current())
	if err != nil {
		h.recordIfLocked(err, "blog")
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toPostResponse(*p))
}

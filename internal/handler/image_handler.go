package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gdhispano/hub/internal/imagegen"
	"github.com/gdhispano/hub/internal/model"
)

// ImageServiceInterface は画像生成ハンドラーが必要とするサービスインターフェース。
type ImageServiceInterface interface {
	// Generate は2段階の画像生成を実行する。プレミアム資格が必要。
	Generate(ctx context.Context, ident *model.Identity, prompt, styleID, aspectRatio string) (*imagegen.Result, error)
}

// ImageHandler は画像スタジオのHTTPハンドラー。
type ImageHandler struct {
	registry SessionResolver
	service  ImageServiceInterface
	denials  DenialRecorder
}

// NewImageHandler はImageHandlerを生成する。denialsはnil可。
func NewImageHandler(registry SessionResolver, service ImageServiceInterface, denials DenialRecorder) *ImageHandler {
	if denials == nil {
		denials = nopDenialRecorder{}
	}
	return &ImageHandler{
		registry: registry,
		service:  service,
		denials:  denials,
	}
}

// imageGenerateRequest は画像生成リクエストのボディ。
type imageGenerateRequest struct {
	Prompt      string `json:"prompt"`
	StyleID     string `json:"style_id"`
	AspectRatio string `json:"aspect_ratio"`
}

// styleResponse はスタイルプリセットのAPIレスポンス。
type styleResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ListStyles は利用可能なスタイルプリセット一覧を返す。
// GET /api/images/styles
func (h *ImageHandler) ListStyles(w http.ResponseWriter, r *http.Request) {
	styles := imagegen.Styles()
	results := make([]styleResponse, len(styles))
	for i, s := range styles {
		results[i] = styleResponse{ID: s.ID, Label: s.Label}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// Generate はマーケティング画像を生成する。
// POST /api/images/generate
func (h *ImageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	bs, ok := browserSession(w, r, h.registry)
	if !ok {
		return
	}

	var req imageGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "Describe la imagen que quieres generar.",
			Category: "validation",
			Action:   "Escribe un concepto antes de generar.",
		})
		return
	}

	result, err := h.service.Generate(r.Context(), bs.Store.Current(), prompt, req.StyleID, req.AspectRatio)
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) && apiErr.Code == model.ErrCodeContentLocked {
			h.denials.RecordGateDenial("image-studio")
		}
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Package imagegen はマーケティング画像の生成機能を提供する。
//
// 生成は2段階で行う。まずテキストモデルでユーザーの要望を詳細な英語
// プロンプトに書き直し、次に画像モデルでそのプロンプトをレンダリングする。
// 画像生成はプレミアム資格が必要。
package imagegen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdhispano/hub/internal/gate"
	"github.com/gdhispano/hub/internal/genai"
	"github.com/gdhispano/hub/internal/model"
)

// Recorder は画像生成メトリクスの記録インターフェース。
type Recorder interface {
	RecordImageGeneration(duration time.Duration, success bool)
}

type nopRecorder struct{}

func (nopRecorder) RecordImageGeneration(time.Duration, bool) {}

// Result は画像生成の結果。
type Result struct {
	// ImageURL はdata URI形式の画像（data:image/png;base64,...）。
	ImageURL string `json:"image_url"`
	// EnhancedPrompt は実際のレンダリングに使われた強化済みプロンプト。
	EnhancedPrompt string `json:"enhanced_prompt"`
}

// Generator は2段階の画像生成を実行する。
type Generator struct {
	client     *genai.Client
	textModel  string
	imageModel string
	metrics    Recorder
}

// NewGenerator はGeneratorを生成する。metricsはnil可。
func NewGenerator(client *genai.Client, textModel, imageModel string, metrics Recorder) *Generator {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Generator{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
		metrics:    metrics,
	}
}

// Generate はプロンプトを強化し、画像をレンダリングする。
// identにプレミアム資格がない場合はCONTENT_LOCKEDエラーを返す。
// アスペクト比はサポート対象（1:1, 3:4, 4:3, 9:16, 16:9）のみ受け付ける。
// プロンプト強化の失敗は致命的ではなく、フォールバックプロンプトで続行する。
func (g *Generator) Generate(ctx context.Context, ident *model.Identity, prompt, styleID, aspectRatio string) (*Result, error) {
	if gate.IsLocked(true, ident) {
		return nil, model.NewContentLockedError("image-studio")
	}
	if !ValidAspectRatio(aspectRatio) {
		return nil, model.NewInvalidAspectRatioError(aspectRatio)
	}

	keywords := styleKeywords(styleID)
	enhanced := g.enhancePrompt(ctx, prompt, keywords)

	start := time.Now()
	resp, err := g.client.GenerateContent(ctx, g.imageModel, &genai.Request{
		Contents: []genai.Content{
			{Parts: []genai.Part{{Text: enhanced}}},
		},
		GenerationConfig: &genai.GenerationConfig{
			ImageConfig: &genai.ImageConfig{
				AspectRatio: aspectRatio,
				ImageSize:   "1K",
			},
		},
	})
	if err != nil {
		g.metrics.RecordImageGeneration(time.Since(start), false)
		return nil, model.NewAIUnavailableError()
	}

	img := resp.InlineImage()
	if img == nil {
		g.metrics.RecordImageGeneration(time.Since(start), false)
		return nil, model.NewAIUnavailableError()
	}
	g.metrics.RecordImageGeneration(time.Since(start), true)

	mimeType := img.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return &Result{
		ImageURL:       fmt.Sprintf("data:%s;base64,%s", mimeType, img.Data),
		EnhancedPrompt: enhanced,
	}, nil
}

// enhancePrompt はテキストモデルでプロンプトを詳細な英語プロンプトに書き直す。
// 失敗時は元プロンプト+キーワードのフォールバックを返す。
func (g *Generator) enhancePrompt(ctx context.Context, prompt, keywords string) string {
	instruction := fmt.Sprintf(`ACT AS: World-class AI Art Prompt Engineer (Midjourney v6/DALL-E 3 expert).

TASK: Rewrite the user's request into a single, highly detailed English prompt optimized for the image generation model.

INPUT CONCEPT: %q
MANDATORY VISUAL STYLE: %q

GUIDELINES:
1. Start with the main subject clearly.
2. Integrate the MANDATORY VISUAL STYLE naturally but forcefully (e.g., if it says "3D", mention "Octane Render, Unreal Engine 5, Raytracing").
3. Define lighting (e.g., "Volumetric lighting, cinematic studio lights").
4. Define quality (e.g., "8k resolution, highly detailed, sharp focus, masterpiece").
5. DO NOT include "Here is the prompt" or quotes. Just output the raw prompt string.

OUTPUT PROMPT ONLY:`, prompt, keywords)

	resp, err := g.client.GenerateContent(ctx, g.textModel, &genai.Request{
		Contents: []genai.Content{
			{Role: "user", Parts: []genai.Part{{Text: instruction}}},
		},
	})
	if err != nil {
		return fmt.Sprintf("%s, %s, 8k, high quality", prompt, keywords)
	}

	enhanced := strings.TrimSpace(resp.Text())
	if enhanced == "" {
		return fmt.Sprintf("%s, %s, 8k, high quality", prompt, keywords)
	}
	return enhanced
}

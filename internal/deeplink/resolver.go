// Package deeplink はURLフラグメントによるコンテンツ直リンクの解決を提供する。
//
// フラグメントは #method-<id>、#scam-<id>、#blog-<id> の3種類。
// 解決結果にはロック状態と、クライアント側ナビゲーション用のメタデータ
// （フラグメント消去方法とハイライト減衰時間）を含める。
package deeplink

import (
	"strings"

	"github.com/gdhispano/hub/internal/gate"
	"github.com/gdhispano/hub/internal/model"
)

// highlightDecayMS は直リンク先コンテンツのハイライト表示時間（ミリ秒）。
const highlightDecayMS = 2500

// Kind は直リンク先コンテンツの種別を表す。
type Kind string

const (
	// KindMethod は収益メソッド。
	KindMethod Kind = "method"
	// KindScam は監査エントリ。
	KindScam Kind = "scam"
	// KindBlog はブログ記事。
	KindBlog Kind = "blog"
)

// Resolution はフラグメント解決の結果。
type Resolution struct {
	Kind   Kind   `json:"kind"`
	ID     string `json:"id"`
	Locked bool   `json:"locked"`

	// ClearFragment はクライアントがフラグメントを履歴を積まずに
	// 消去すべきことを示す（replaceState相当）。常にtrue。
	ClearFragment bool `json:"clear_fragment"`
	// HighlightMS はハイライト表示の減衰時間（ミリ秒）。
	HighlightMS int `json:"highlight_ms"`
}

// Catalog はフラグメント解決に必要なカタログ操作の部分集合。
type Catalog interface {
	HasMethod(id string) bool
	MethodIsPremium(id string) bool
	HasScam(id string) bool
	HasPost(id string) bool
	PostIsPremium(id string) bool
}

// Resolver はフラグメントを解決する。
type Resolver struct {
	catalog Catalog
}

// NewResolver はResolverを生成する。
func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve はフラグメントを解決する。先頭の'#'は付いていてもいなくてもよい。
// 形式不正および存在しないIDはINVALID_FRAGMENTエラーになる。
// ロック状態は閲覧資格から判定する。監査エントリは常にロックされない。
func (r *Resolver) Resolve(fragment string, ident *model.Identity) (*Resolution, error) {
	raw := strings.TrimPrefix(fragment, "#")

	kind, id, ok := splitFragment(raw)
	if !ok {
		return nil, model.NewInvalidFragmentError(fragment)
	}

	res := &Resolution{
		Kind:          kind,
		ID:            id,
		ClearFragment: true,
		HighlightMS:   highlightDecayMS,
	}

	switch kind {
	case KindMethod:
		if !r.catalog.HasMethod(id) {
			return nil, model.NewInvalidFragmentError(fragment)
		}
		res.Locked = gate.IsLocked(r.catalog.MethodIsPremium(id), ident)
	case KindScam:
		if !r.catalog.HasScam(id) {
			return nil, model.NewInvalidFragmentError(fragment)
		}
	case KindBlog:
		if !r.catalog.HasPost(id) {
			return nil, model.NewInvalidFragmentError(fragment)
		}
		res.Locked = gate.IsLocked(r.catalog.PostIsPremium(id), ident)
	}

	return res, nil
}

// splitFragment は "method-pro-1" 形式のフラグメントを種別とIDに分割する。
// IDにはハイフンを含められるため、最初のハイフンでのみ分割する。
func splitFragment(raw string) (Kind, string, bool) {
	prefix, id, found := strings.Cut(raw, "-")
	if !found || id == "" {
		return "", "", false
	}

	switch prefix {
	case "method":
		return KindMethod, id, true
	case "scam":
		return KindScam, id, true
	case "blog":
		return KindBlog, id, true
	default:
		return "", "", false
	}
}

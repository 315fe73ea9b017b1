// Package catalog は収益メソッド・監査データベース・ブログ記事の
// 読み取り専用カタログを提供する。
//
// 一覧は本文を含まないサマリーを返し、詳細取得時にのみ本文HTMLを
// サニタイズして返す。プレミアムコンテンツの本文は資格判定を通過した
// 場合にのみ配信される。
package catalog

import (
	"github.com/gdhispano/hub/internal/gate"
	"github.com/gdhispano/hub/internal/model"
	"github.com/gdhispano/hub/internal/security"
)

// Service はカタログの読み取りサービス。
// データは起動時に固定され、以後の変更はない。
type Service struct {
	sanitizer security.ContentSanitizerService

	methods    []model.Method
	methodByID map[string]*model.Method
	scams      []model.ScamEntry
	scamByID   map[string]*model.ScamEntry
	posts      []model.BlogPost
	postByID   map[string]*model.BlogPost
}

// NewService はシードデータを索引化したServiceを生成する。
func NewService(sanitizer security.ContentSanitizerService) *Service {
	s := &Service{
		sanitizer:  sanitizer,
		methods:    seedMethods,
		methodByID: make(map[string]*model.Method, len(seedMethods)),
		scams:      seedScams,
		scamByID:   make(map[string]*model.ScamEntry, len(seedScams)),
		posts:      seedPosts,
		postByID:   make(map[string]*model.BlogPost, len(seedPosts)),
	}
	for i := range s.methods {
		s.methodByID[s.methods[i].ID] = &s.methods[i]
	}
	for i := range s.scams {
		s.scamByID[s.scams[i].ID] = &s.scams[i]
	}
	for i := range s.posts {
		s.postByID[s.posts[i].ID] = &s.posts[i]
	}
	return s
}

// ListMethods はメソッド一覧を返す。categoryが空でない場合は該当カテゴリのみ返す。
// 一覧のContentは常に空であり、本文はGetMethodでのみ配信される。
func (s *Service) ListMethods(category model.MethodCategory) []model.Method {
	results := make([]model.Method, 0, len(s.methods))
	for _, m := range s.methods {
		if category != "" && m.Category != category {
			continue
		}
		m.Content = ""
		results = append(results, m)
	}
	return results
}

// GetMethod は指定IDのメソッドを本文付きで返す。
// プレミアムメソッドで閲覧資格がない場合はCONTENT_LOCKEDエラーを返す。
// 本文HTMLはサニタイズ済み。
func (s *Service) GetMethod(id string, ident *model.Identity) (*model.Method, error) {
	m, ok := s.methodByID[id]
	if !ok {
		return nil, model.NewMethodNotFoundError(id)
	}
	if gate.IsLocked(m.IsPremium, ident) {
		return nil, model.NewContentLockedError(id)
	}

	result := *m
	result.Content = s.sanitizer.Sanitize(m.Content)
	return &result, nil
}

// ListScams は監査データベースの全エントリを返す。資格判定は行わない。
func (s *Service) ListScams() []model.ScamEntry {
	results := make([]model.ScamEntry, len(s.scams))
	copy(results, s.scams)
	return results
}

// GetScam は指定IDの監査エントリを返す。
func (s *Service) GetScam(id string) (*model.ScamEntry, error) {
	e, ok := s.scamByID[id]
	if !ok {
		return nil, model.NewScamNotFoundError(id)
	}
	result := *e
	return &result, nil
}

// FindScamByName は名前の完全一致で監査エントリを検索する。
// AIアシスタントのサイトリスク分析で既知エントリの照合に使用する。
// 見つからない場合はnilを返す。
func (s *Service) FindScamByName(name string) *model.ScamEntry {
	for i := range s.scams {
		if s.scams[i].Name == name {
			result := s.scams[i]
			return &result
		}
	}
	return nil
}

// ListPosts はブログ記事一覧を返す。一覧のContentは常に空。
func (s *Service) ListPosts() []model.BlogPost {
	results := make([]model.BlogPost, len(s.posts))
	copy(results, s.posts)
	for i := range results {
		results[i].Content = ""
	}
	return results
}

// GetPost は指定IDのブログ記事を本文付きで返す。
// プレミアム記事で閲覧資格がない場合はCONTENT_LOCKEDエラーを返す。
// 本文HTMLはサニタイズ済み。
func (s *Service) GetPost(id string, ident *model.Identity) (*model.BlogPost, error) {
	p, ok := s.postByID[id]
	if !ok {
		return nil, model.NewPostNotFoundError(id)
	}
	if gate.IsLocked(p.IsPremium, ident) {
		return nil, model.NewContentLockedError(id)
	}

	result := *p
	result.Content = s.sanitizer.Sanitize(p.Content)
	return &result, nil
}

// HasMethod は指定IDのメソッドが存在するかを返す。ディープリンク解決で使用する。
func (s *Service) HasMethod(id string) bool {
	_, ok := s.methodByID[id]
	return ok
}

// MethodIsPremium は指定IDのメソッドがプレミアムかを返す。
// 存在しないIDにはfalseを返す。
func (s *Service) MethodIsPremium(id string) bool {
	m, ok := s.methodByID[id]
	return ok && m.IsPremium
}

// HasScam は指定IDの監査エントリが存在するかを返す。
func (s *Service) HasScam(id string) bool {
	_, ok := s.scamByID[id]
	return ok
}

// HasPost は指定IDのブログ記事が存在するかを返す。
func (s *Service) HasPost(id string) bool {
	_, ok := s.postByID[id]
	return ok
}

// PostIsPremium は指定IDのブログ記事がプレミアムかを返す。
func (s *Service) PostIsPremium(id string) bool {
	p, ok := s.postByID[id]
	return ok && p.IsPremium
}

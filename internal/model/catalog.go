// Package model はドメインモデルを定義する。
package model

// MethodCategory は収益メソッドのカテゴリを表す。
type MethodCategory string

const (
	// CategorySurveys はアンケート系メソッド。
	CategorySurveys MethodCategory = "Encuestas"
	// CategoryCrypto はトレーディング・仮想通貨系メソッド。
	CategoryCrypto MethodCategory = "Trading y Cripto"
	// CategoryAffiliate はアフィリエイト系メソッド。
	CategoryAffiliate MethodCategory = "Marketing de Afiliados"
	// CategoryFreelance はフリーランス系メソッド。
	CategoryFreelance MethodCategory = "Freelancing"
	// CategoryTasks はマイクロタスク系メソッド。
	CategoryTasks MethodCategory = "Micro-Tareas"
	// CategoryEcommerce はEコマース系メソッド。
	CategoryEcommerce MethodCategory = "E-Commerce"
	// CategoryHighTicket はハイチケットクロージング系メソッド。
	CategoryHighTicket MethodCategory = "High Ticket Closing"
)

// Difficulty はメソッドの難易度を表す。
type Difficulty string

const (
	// DifficultyBeginner は初心者向け。
	DifficultyBeginner Difficulty = "Principiante"
	// DifficultyIntermediate は中級者向け。
	DifficultyIntermediate Difficulty = "Intermedio"
	// DifficultyAdvanced は上級者向け。
	DifficultyAdvanced Difficulty = "Avanzado"
	// DifficultyExpert はエキスパート専用。
	DifficultyExpert Difficulty = "Solo Expertos"
)

// Method はディレクトリに掲載される収益メソッドを表す。
type Method struct {
	ID                 string
	Name               string
	Description        string
	Category           MethodCategory
	Verified           bool
	InvestmentRequired bool
	Difficulty         Difficulty
	Rating             float64 // 1-5
	Link               string
	IsPremium          bool
	PotentialEarnings  string
	Content            string // ガイド本文HTML（未サニタイズ）
}

// ScamStatus は監査エントリの判定結果を表す。
type ScamStatus string

const (
	// ScamStatusScam は確定詐欺。
	ScamStatusScam ScamStatus = "SCAM"
	// ScamStatusLegit は正当なサービス。
	ScamStatusLegit ScamStatus = "LEGIT"
	// ScamStatusSuspicious は疑わしいサービス。
	ScamStatusSuspicious ScamStatus = "SUSPICIOUS"
	// ScamStatusWarning はグレーゾーン。
	ScamStatusWarning ScamStatus = "WARNING"
)

// RiskLevel は監査エントリのリスク水準を表す。
type RiskLevel string

const (
	// RiskSafe は安全。
	RiskSafe RiskLevel = "Safe"
	// RiskWarning は注意。
	RiskWarning RiskLevel = "Warning"
	// RiskHigh は高リスク。
	RiskHigh RiskLevel = "High"
	// RiskCritical は重大リスク。
	RiskCritical RiskLevel = "Critical"
)

// ScamEntry は詐欺/正当性監査データベースのエントリを表す。
type ScamEntry struct {
	ID           string
	Name         string
	Type         string
	RiskLevel    RiskLevel
	Status       ScamStatus
	Reason       string
	DateReported string
}

// BlogPost はブログ記事を表す。
type BlogPost struct {
	ID        string
	Title     string
	Excerpt   string
	Content   string // 記事本文HTML（未サニタイズ）
	Category  string
	ReadTime  string
	Date      string
	ImageURL  string
	IsPremium bool
}

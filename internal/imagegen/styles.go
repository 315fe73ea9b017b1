package imagegen

// Style は画像生成のビジュアルスタイルプリセットを表す。
type Style struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Keywords string `json:"-"` // プロンプト強化に使う技術キーワード。クライアントには返さない
}

// defaultStyleKeywords はスタイル未指定・未知スタイル時のフォールバックキーワード。
const defaultStyleKeywords = "Photorealistic, 8k"

// styles はスタイルプリセットの一覧。先頭がデフォルト。
var styles = []Style{
	{
		ID:       "Photorealistic",
		Label:    "Realista",
		Keywords: "Photorealistic, Cinematic lighting, Shot on 35mm lens, Depth of field, ISO 100, 8k, Hyper-detailed",
	},
	{
		ID:       "3D Render",
		Label:    "3D Render",
		Keywords: "3D Octane Render, Unreal Engine 5, Raytracing, Global Illumination, Smooth textures, Clay render aesthetic, 3D masterpiece",
	},
	{
		ID:       "Minimalist Logo",
		Label:    "Logo",
		Keywords: "Vector Art, Flat design, Minimalist, Simple lines, Solid colors, White background, Adobe Illustrator style, Corporate identity",
	},
	{
		ID:       "Cyberpunk",
		Label:    "Cyberpunk",
		Keywords: "Cyberpunk aesthetic, Neon lights, Night city background, High contrast, Futurism, Glitch effect, Pink and Blue color palette",
	},
	{
		ID:       "Oil Painting",
		Label:    "Arte",
		Keywords: "Oil painting on canvas, Heavy brushstrokes, Classical art style, Impasto texture, Artistic masterpiece",
	},
}

// Styles は利用可能なスタイルプリセットの一覧を返す。
func Styles() []Style {
	result := make([]Style, len(styles))
	copy(result, styles)
	return result
}

// styleKeywords は指定IDのスタイルキーワードを返す。未知IDはデフォルトを返す。
func styleKeywords(styleID string) string {
	for _, s := range styles {
		if s.ID == styleID {
			return s.Keywords
		}
	}
	return defaultStyleKeywords
}

// validAspectRatios は画像生成がサポートするアスペクト比。
var validAspectRatios = map[string]bool{
	"1:1":  true,
	"3:4":  true,
	"4:3":  true,
	"9:16": true,
	"16:9": true,
}

// ValidAspectRatio は指定のアスペクト比がサポート対象かを返す。
func ValidAspectRatio(ratio string) bool {
	return validAspectRatios[ratio]
}

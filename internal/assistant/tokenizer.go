package assistant

import (
	"encoding/json"
	"strings"
)

// optionsOpen はチャット応答に埋め込まれる選択肢ディレクティブの開始マーカー。
// 形式: ||OPTIONS: ["Opción A", "Opción B"]||
const (
	optionsOpen  = "||OPTIONS:"
	optionsClose = "||"
)

// SegmentType は応答セグメントの種別を表す。
type SegmentType string

const (
	// SegmentText は通常テキスト。
	SegmentText SegmentType = "text"
	// SegmentBold は強調テキスト（**...**）。
	SegmentBold SegmentType = "bold"
	// SegmentLink はリンク（[label](href)）。hrefには#method-1等のディープリンクが入る。
	SegmentLink SegmentType = "link"
)

// Segment は応答テキストの構造化された1要素。
type Segment struct {
	Type SegmentType `json:"type"`
	Text string      `json:"text"`
	Href string      `json:"href,omitempty"`
}

// Reply は構造化されたチャット応答。
type Reply struct {
	Segments []Segment `json:"segments"`
	Options  []string  `json:"options,omitempty"`
}

// Tokenize は生の応答テキストを構造化する。
// 選択肢ディレクティブを抽出・除去したうえで、残りのテキストを
// text/bold/linkセグメントに分解する。
// 閉じられていないマーカーは通常テキストとして扱う。
func Tokenize(raw string) Reply {
	text, options := extractOptions(raw)
	return Reply{
		Segments: segment(strings.TrimSpace(text)),
		Options:  options,
	}
}

// extractOptions は選択肢ディレクティブを抽出し、本文から除去して返す。
// JSON配列として解釈できないディレクティブは無言で捨てる（応答には残さない）。
func extractOptions(raw string) (string, []string) {
	start := strings.Index(raw, optionsOpen)
	if start < 0 {
		return raw, nil
	}

	rest := raw[start+len(optionsOpen):]
	end := strings.Index(rest, optionsClose)
	if end < 0 {
		return raw, nil
	}

	var options []string
	payload := strings.TrimSpace(rest[:end])
	if err := json.Unmarshal([]byte(payload), &options); err != nil {
		options = nil
	}

	remaining := raw[:start] + rest[end+len(optionsClose):]
	return remaining, options
}

// segment はテキストをtext/bold/linkセグメントに分解する。
func segment(text string) []Segment {
	var segments []Segment
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			segments = append(segments, Segment{Type: SegmentText, Text: plain.String()})
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		// **bold**
		if strings.HasPrefix(text[i:], "**") {
			if end := strings.Index(text[i+2:], "**"); end >= 0 {
				flush()
				segments = append(segments, Segment{Type: SegmentBold, Text: text[i+2 : i+2+end]})
				i += 2 + end + 2
				continue
			}
		}

		// [label](href)
		if text[i] == '[' {
			if label, href, width, ok := parseLink(text[i:]); ok {
				flush()
				segments = append(segments, Segment{Type: SegmentLink, Text: label, Href: href})
				i += width
				continue
			}
		}

		plain.WriteByte(text[i])
		i++
	}
	flush()

	return segments
}

// parseLink は先頭が'['のテキストから[label](href)を読み取る。
// 形式に合致しない場合はok=falseを返す。
func parseLink(text string) (label, href string, width int, ok bool) {
	closeBracket := strings.Index(text, "]")
	if closeBracket < 0 {
		return "", "", 0, false
	}
	if closeBracket+1 >= len(text) || text[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	closeParen := strings.Index(text[closeBracket+2:], ")")
	if closeParen < 0 {
		return "", "", 0, false
	}

	label = text[1:closeBracket]
	href = text[closeBracket+2 : closeBracket+2+closeParen]
	width = closeBracket + 2 + closeParen + 1
	return label, href, width, true
}

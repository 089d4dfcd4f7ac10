package domain

import (
	"math"
	"strings"
	"unicode"
)

const (
	charsPerToken      = 4.0
	tokensPerWord      = 1.3
	tokensPerPunct     = 0.25
	tokensPerCJKRune   = 1.0
	charEstimateWeight = 0.5
)

// EstimateTokens approximates the number of tokens a vendor tokenizer would
// produce for text. It is used when a stream ends without a completion count.
//
// The estimate blends a character count with a word count, adds a share for
// punctuation and counts CJK runes one token each. Every term only grows as
// text grows, so the estimate of a prefix never exceeds the estimate of the
// whole string.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}

	var chars, punct, cjk int
	for _, r := range text {
		switch {
		case isCJK(r):
			cjk++
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			punct++
			chars++
		default:
			chars++
		}
	}
	words := len(strings.Fields(text))

	charEstimate := float64(chars) / charsPerToken
	wordEstimate := float64(words) * tokensPerWord
	blended := charEstimateWeight*charEstimate + (1-charEstimateWeight)*wordEstimate

	return int(math.Ceil(blended + float64(punct)*tokensPerPunct + float64(cjk)*tokensPerCJKRune))
}

func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}

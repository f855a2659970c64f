// Package corpus prepares the files the prediction engines load: it turns raw
// text (or a file of word pairs) into an adjacency corpus and a vocabulary.
package corpus

import "strings"

// DefaultMinSequenceLen drops sentences too short to carry useful pairs.
const DefaultMinSequenceLen = 3

// isTerminator reports whether c ends a sentence.
func isTerminator(c byte) bool {
	return c == '.' || c == '?' || c == '!'
}

// Tokenize lowercases text and splits it into sentences of words. Only ASCII
// letters survive; every other byte separates words, and '.', '?' and '!' also
// end the current sentence. Sentences with fewer than minLen words are dropped.
func Tokenize(text string, minLen int) [][]string {
	text = strings.ToLower(text)

	var (
		sentences [][]string
		current   []string
		start     = -1
	)
	flushWord := func(end int) {
		if start >= 0 {
			current = append(current, text[start:end])
			start = -1
		}
	}
	flushSentence := func() {
		if len(current) >= minLen && len(current) > 0 {
			sentences = append(sentences, current)
		}
		current = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
			if start < 0 {
				start = i
			}
		case isTerminator(c):
			flushWord(i)
			flushSentence()
		default:
			flushWord(i)
		}
	}
	flushWord(len(text))
	flushSentence()
	return sentences
}

// Pairs returns the adjacent ordered word pairs of a sentence.
func Pairs(sentence []string) [][2]string {
	if len(sentence) < 2 {
		return nil
	}
	pairs := make([][2]string, 0, len(sentence)-1)
	for i := 0; i+1 < len(sentence); i++ {
		pairs = append(pairs, [2]string{sentence[i], sentence[i+1]})
	}
	return pairs
}

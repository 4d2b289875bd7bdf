// Package moderation flags reviews containing profanity for the admin
// review-moderation screen.
package moderation

import "strings"

// A conservative default list; deployments extend it via AddWords.
var defaultWords = []string{
	"arse", "arsehole", "ass", "asshole", "bastard", "bitch", "bollocks",
	"bullshit", "crap", "cunt", "damn", "dick", "dickhead", "fuck",
	"fucker", "fucking", "motherfucker", "piss", "prick", "shit",
	"shitty", "slut", "twat", "wanker", "whore",
}

const censorRune = '*'

// Filter matches whole words against its word list, case-insensitively.
type Filter struct {
	words map[string]struct{}
}

func NewFilter() *Filter {
	f := &Filter{words: make(map[string]struct{}, len(defaultWords))}
	f.AddWords(defaultWords...)
	return f
}

// AddWords extends the word list.
func (f *Filter) AddWords(words ...string) {
	for _, w := range words {
		f.words[strings.ToLower(w)] = struct{}{}
	}
}

// IsProfane reports whether any word of the text is on the list.
func (f *Filter) IsProfane(text string) bool {
	for _, word := range strings.Fields(text) {
		if _, hit := f.words[normalize(word)]; hit {
			return true
		}
	}
	return false
}

// Censor replaces every listed word with asterisks, keeping surrounding
// punctuation and the rest of the text intact.
func (f *Filter) Censor(text string) string {
	fields := strings.Fields(text)
	changed := false
	for i, word := range fields {
		if _, hit := f.words[normalize(word)]; !hit {
			continue
		}
		changed = true
		fields[i] = censorWord(word)
	}
	if !changed {
		return text
	}
	return strings.Join(fields, " ")
}

// normalize lowercases and strips leading/trailing punctuation so "Shit!"
// still matches.
func normalize(word string) string {
	return strings.ToLower(strings.TrimFunc(word, isPunct))
}

func censorWord(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		if !isPunct(r) {
			runes[i] = censorRune
		}
	}
	return string(runes)
}

func isPunct(r rune) bool {
	return (r < '0' || r > '9') && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z')
}

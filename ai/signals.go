package ai

import "strings"

// urgencyKeywords is the fixed urgency cue set. The urgency score is the
// fraction of this set found in the text.
var urgencyKeywords = []string{
	"urgent", "asap", "immediately", "deadline", "due", "emergency", "critical",
}

var positiveWords = map[string]struct{}{}
var negativeWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"good", "great", "excellent", "awesome", "amazing", "happy", "glad",
		"love", "nice", "wonderful", "fantastic", "perfect", "success",
		"successful", "win", "won", "easy", "helpful", "thanks", "thank",
		"excited", "enjoy", "progress", "done", "finished", "resolved",
		"improved", "better", "best", "positive",
	} {
		positiveWords[w] = struct{}{}
	}
	for _, w := range []string{
		"bad", "terrible", "awful", "horrible", "sad", "angry", "hate",
		"problem", "problems", "issue", "issues", "fail", "failed", "failure",
		"broken", "bug", "bugs", "wrong", "worse", "worst", "difficult",
		"hard", "stuck", "blocked", "late", "missed", "overdue", "stress",
		"stressed", "worried", "negative",
	} {
		negativeWords[w] = struct{}{}
	}
}

// urgencyScore counts urgency keywords present in the text (case-insensitive
// substring match) and normalizes by the keyword-set size. Always in [0, 1].
func urgencyScore(text string) float64 {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range urgencyKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return clamp(float64(hits)/float64(len(urgencyKeywords)), 0, 1)
}

// sentimentScore estimates lexical polarity in [-1, 1]: the balance of
// positive versus negative cue words among the text's tokens. Neutral or
// empty text scores 0.
func sentimentScore(text string) float64 {
	pos, neg := 0, 0
	for _, tok := range wordTokens(text) {
		if _, ok := positiveWords[tok]; ok {
			pos++
		}
		if _, ok := negativeWords[tok]; ok {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return clamp(float64(pos-neg)/float64(pos+neg), -1, 1)
}

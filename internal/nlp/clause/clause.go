// Package clause provides heuristic clause-level operations on single
// sentences: splitting at a coordinating boundary, merging adjacent
// sentences and reordering a fronted adverbial. The transforms are
// best-effort rewrites, not verified grammar; meaning preservation is a
// quality goal carried by the heuristics, not an enforced invariant.
package clause

import (
	"strings"
	"unicode"
)

// koreanConnectiveSuffixes mark a coordinating boundary at the end of a
// word. Longest first so 지만/는데 win over the bare 고/며/서.
var koreanConnectiveSuffixes = []string{"지만", "는데", "으며", "고", "며", "서"}

// latinCoordinators mark a boundary before the word itself.
var latinCoordinators = map[string]struct{}{
	"and": {}, "but": {}, "or": {}, "so": {},
	"because": {}, "while": {}, "yet": {},
}

// frontedAdverbials are connectors that commonly open a sentence as a
// movable constituent.
var frontedAdverbials = map[string]struct{}{
	"그러나": {}, "하지만": {}, "그렇지만": {}, "그런데": {}, "그리고": {},
	"또한": {}, "게다가": {}, "따라서": {}, "그래서": {}, "그러므로": {},
	"물론": {}, "사실": {}, "결국": {}, "한편": {},
	"however": {}, "therefore": {}, "moreover": {}, "furthermore": {},
	"nevertheless": {}, "consequently": {}, "still": {},
}

// Split divides a sentence into two at the coordinating boundary
// closest to its middle. Returns ok=false when no boundary is found.
func Split(sentence string) (string, string, bool) {
	words := strings.Fields(sentence)
	if len(words) < 4 {
		return "", "", false
	}

	best := -1
	bestDist := len(words)
	mid := len(words) / 2

	for j := 2; j <= len(words)-2; j++ {
		if !isBoundaryBefore(words, j) {
			continue
		}
		dist := j - mid
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best = j
			bestDist = dist
		}
	}
	if best < 0 {
		return "", "", false
	}

	first := append([]string(nil), words[:best]...)
	second := append([]string(nil), words[best:]...)

	// Close the first clause: drop a trailing comma, convert a Korean
	// connective ending to the declarative 다, and terminate.
	last := strings.TrimSuffix(first[len(first)-1], ",")
	last = declarativeForm(last)
	if !endsWithTerminal(last) {
		last += "."
	}
	first[len(first)-1] = last

	// A latin coordinator heads the second clause; drop it and restore
	// sentence case on what follows.
	if _, ok := latinCoordinators[strings.ToLower(second[0])]; ok && len(second) > 1 {
		second = second[1:]
		second[0] = capitaliseFirst(second[0])
	}

	return strings.Join(first, " "), strings.Join(second, " "), true
}

// Merge joins two sentences into one, turning the first terminal into a
// comma. "그 수는 많다. 그리고 늘고 있다." becomes
// "그 수는 많다, 그리고 늘고 있다."
func Merge(first, second string) string {
	head := strings.TrimRight(strings.TrimSpace(first), ".!?")
	tail := strings.TrimSpace(second)
	tail = lowercaseFirst(tail)
	return head + ", " + tail
}

// SwapFronted moves a fronted comma-terminated adverbial behind the
// main clause: "However, it held up." becomes "It held up, however."
// Returns ok=false when the sentence has no short fronted segment.
func SwapFronted(sentence string) (string, bool) {
	sentence = strings.TrimSpace(sentence)
	idx := strings.Index(sentence, ",")
	if idx <= 0 {
		return "", false
	}

	front := strings.TrimSpace(sentence[:idx])
	rest := strings.TrimSpace(sentence[idx+1:])
	if rest == "" || len(strings.Fields(front)) > 4 {
		return "", false
	}

	terminal := "."
	if endsWithTerminal(rest) {
		terminal = rest[len(rest)-1:]
		rest = strings.TrimSpace(rest[:len(rest)-1])
	}
	if rest == "" {
		return "", false
	}

	return capitaliseFirst(rest) + ", " + lowercaseFirst(front) + terminal, true
}

// SetOffFronted marks a fronted connector with a comma, turning
// "그러나 인공지능 기술의 발전은 ..." into "그러나, 인공지능 기술의 발전은 ...".
// Returns ok=false when the sentence does not open with a bare
// connector. Sentences already set off are handled by SwapFronted.
func SetOffFronted(sentence string) (string, bool) {
	words := strings.Fields(strings.TrimSpace(sentence))
	if len(words) < 3 {
		return "", false
	}
	first := words[0]
	if strings.HasSuffix(first, ",") {
		return "", false
	}
	if _, ok := frontedAdverbials[strings.ToLower(first)]; !ok {
		return "", false
	}
	words[0] = first + ","
	return strings.Join(words, " "), true
}

// isBoundaryBefore reports whether a coordinating boundary sits just
// before word j.
func isBoundaryBefore(words []string, j int) bool {
	prev := words[j-1]
	if strings.HasSuffix(prev, ",") {
		return true
	}
	if _, ok := latinCoordinators[strings.ToLower(words[j])]; ok {
		return true
	}
	trimmed := strings.TrimRight(prev, ",.!?")
	for _, suffix := range koreanConnectiveSuffixes {
		if strings.HasSuffix(trimmed, suffix) && len([]rune(trimmed)) > len([]rune(suffix)) {
			return true
		}
	}
	return false
}

// declarativeForm rewrites a Korean connective ending into the plain
// declarative: 발전했고 becomes 발전했다. Words without a connective
// ending pass through unchanged.
func declarativeForm(word string) string {
	trimmed := strings.TrimRight(word, ",.!?")
	for _, suffix := range koreanConnectiveSuffixes {
		if strings.HasSuffix(trimmed, suffix) && len([]rune(trimmed)) > len([]rune(suffix)) {
			return strings.TrimSuffix(trimmed, suffix) + "다"
		}
	}
	return word
}

func endsWithTerminal(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

func capitaliseFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func lowercaseFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

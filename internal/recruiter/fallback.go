package recruiter

import (
	"strings"
	"unicode"

	"github.com/khairibzd/portfolio-chat/internal/portfolio"
)

// followUpMarkers flag questions that continue an earlier exchange
// about specific projects. Such turns must not synthesize fresh cards.
var followUpMarkers = []string{
	"this project",
	"these projects",
	"that project",
	"the project",
	"technologies used",
	"tech stack",
	"how did you build",
	"challenges",
}

// newProjectMarkers flag questions that ask to see projects for the
// first time.
var newProjectMarkers = []string{
	"show me projects",
	"show me your projects",
	"your projects",
	"latest projects",
	"portfolio",
	"project",
	"projects",
}

// cardRule maps a domain keyword found in the question to a fixed list
// of project ids. Rules are evaluated in order; the first hit wins.
type cardRule struct {
	keyword string
	ids     []string
}

var cardRules = []cardRule{
	{keyword: "blockchain", ids: []string{"e-waste"}},
	{keyword: "travel", ids: []string{"deal-discover"}},
	{keyword: "email", ids: []string{"email-reply-agent"}},
	{keyword: "interview", ids: []string{"ai-mock-interview"}},
	{keyword: "carbon", ids: []string{"carbon-calculator"}},
	{keyword: "environment", ids: []string{"carbon-calculator", "e-waste"}},
	{keyword: "machine learning", ids: []string{"ai-mock-interview", "email-reply-agent"}},
	{keyword: "ai", ids: []string{"ai-mock-interview", "email-reply-agent"}},
}

// fallbackCards applies the deterministic card heuristic over the raw
// question when the completion produced no directive. Follow-up
// questions get no cards; new-project questions get rule-selected
// cards, defaulting to the whole catalog.
func (a *Agent) fallbackCards(question string) []portfolio.ProjectCard {
	q := strings.ToLower(question)

	if matchesAnyMarker(q, followUpMarkers) {
		return []portfolio.ProjectCard{}
	}
	if !matchesAnyMarker(q, newProjectMarkers) {
		return []portfolio.ProjectCard{}
	}

	for _, rule := range cardRules {
		if matchesMarker(q, rule.keyword) {
			return a.resolveCards(rule.ids)
		}
	}

	all := a.projects.All()
	cards := make([]portfolio.ProjectCard, len(all))
	for i, rec := range all {
		cards[i] = rec.Card()
	}
	return cards
}

func matchesAnyMarker(question string, markers []string) bool {
	for _, marker := range markers {
		if matchesMarker(question, marker) {
			return true
		}
	}
	return false
}

// matchesMarker checks single-word markers against whole words of the
// question and multi-word markers as literal substrings, so a short
// keyword such as "ai" cannot fire inside an unrelated word.
func matchesMarker(question, marker string) bool {
	if strings.ContainsRune(marker, ' ') {
		return strings.Contains(question, marker)
	}
	for _, word := range questionWords(question) {
		if word == marker {
			return true
		}
	}
	return false
}

func questionWords(question string) []string {
	return strings.FieldsFunc(question, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-'
	})
}

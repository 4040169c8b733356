// Package chatbot answers free-text questions with canned responses. Matching
// is single-turn and keyword based: the first rule with a keyword contained in
// the lower-cased message wins, so rule order is part of the contract.
package chatbot

import "strings"

// Intent names the rule that produced a reply
type Intent string

const (
	IntentBiryani     Intent = "menu.biryani"
	IntentTandoor     Intent = "menu.tandoor"
	IntentMenu        Intent = "menu"
	IntentRestaurants Intent = "restaurants"
	IntentBooking     Intent = "booking"
	IntentOrdering    Intent = "ordering"
	IntentPricing     Intent = "pricing"
	IntentHours       Intent = "hours"
	IntentGreeting    Intent = "greeting"
	IntentFallback    Intent = "fallback"
)

// Rule matches when any keyword is a substring of the message. Refinements are
// tried in order once the rule itself matched; the rule's own response is used
// when none of them apply.
type Rule struct {
	Intent      Intent
	Keywords    []string
	Response    string
	Refinements []Rule
}

func (r Rule) matches(message string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

type Reply struct {
	Intent   Intent `json:"intent"`
	Response string `json:"response"`
}

type Bot struct {
	rules    []Rule
	fallback Reply
}

// New builds a bot over rules evaluated in the given order
func New(rules []Rule, fallback string) *Bot {
	return &Bot{
		rules:    rules,
		fallback: Reply{Intent: IntentFallback, Response: fallback},
	}
}

// Default returns the bot with the restaurant group's canned answers
func Default() *Bot {
	return New(DefaultRules, FallbackResponse)
}

func (b *Bot) Respond(message string) Reply {
	msg := strings.ToLower(message)
	for _, rule := range b.rules {
		if !rule.matches(msg) {
			continue
		}
		for _, sub := range rule.Refinements {
			if sub.matches(msg) {
				return Reply{Intent: sub.Intent, Response: sub.Response}
			}
		}
		return Reply{Intent: rule.Intent, Response: rule.Response}
	}
	return b.fallback
}

// Package safety implements the crisis-keyword gate that runs before any
// routing or LLM call. It is a hard substring filter, not a classifier: it
// can over-trigger on innocuous text and it misses paraphrases. Changing
// that tradeoff is a product decision, not a code cleanup.
package safety

import "strings"

// crisisKeywords are matched case-folded against the raw user text.
// The list is a package variable so a deployment can extend it.
var crisisKeywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"self-harm",
	"self harm",
	"hurt myself",
	"don't want to live",
	"dont want to live",
	"want to die",
	"想死",
	"自殺",
	"自杀",
	"不想活",
	"傷害自己",
	"伤害自己",
}

// safetyMessage is the fixed, non-LLM reply for a blocked turn.
const safetyMessage = "It sounds like you are carrying something really heavy right now, " +
	"and I want you to talk to someone who can truly help. " +
	"Please reach out to your local emergency number or a crisis hotline, " +
	"or someone you trust, right away. I am not able to support a crisis, " +
	"but you deserve real support, and it is available."

// Verdict is the outcome of a safety check.
type Verdict struct {
	Blocked bool
	Reply   string
}

// Gate screens raw user text before the turn enters routing.
type Gate struct {
	keywords []string
	reply    string
}

// NewGate builds a gate with the default keyword list and reply.
func NewGate() *Gate {
	return &Gate{keywords: crisisKeywords, reply: safetyMessage}
}

// Check inspects the text. On a match the turn must short-circuit with the
// fixed reply and never reach the completion provider.
func (g *Gate) Check(text string) Verdict {
	folded := strings.ToLower(text)
	for _, kw := range g.keywords {
		if strings.Contains(folded, kw) {
			return Verdict{Blocked: true, Reply: g.reply}
		}
	}
	return Verdict{}
}

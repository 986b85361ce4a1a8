package search

import (
	"regexp"
	"strings"

	"github.com/rapport-chat/rapport/pkg/models"
)

// Hard-gate budget slack: a plan may exceed the word budget by this factor
// before it is structurally rejected. The budget is advisory to the model
// but not a hard wall, and rejecting every slightly-long plan starves the
// tree.
const budgetSlackFactor = 1.5

// assistantPhrases matches the service-desk register that instantly breaks
// the persona, in both languages the bots speak.
var assistantPhrases = regexp.MustCompile(strings.Join([]string{
	`作为(一个)?(AI|人工智能|语言模型|助手|机器人)`,
	`我是(一个)?(AI|人工智能|语言模型|虚拟助手)`,
	`很高兴为您服务`,
	`有什么(可以|能)帮(到|助)?您`,
	`请问(您)?还有什么`,
	`以下是.{0,6}(建议|步骤|方法)`,
	`(?i)as an? (AI|assistant|language model)`,
	`(?i)i am an? (AI|assistant|language model)`,
	`(?i)how (can|may) i (help|assist) you`,
	`(?i)is there anything else`,
}, "|"))

// adviceListMarkers catches numbered-list advice dumps, a register no one
// uses in casual chat.
var adviceListMarkers = regexp.MustCompile(`(?m)^\s*(\d+[\.、）)]|[-•]\s)`)

// hardGateResult explains a rejection for logging.
type hardGateResult struct {
	ok     bool
	reason string
}

// hardGate runs the cheap structural checks every candidate must pass
// before any judge call is spent on it.
func hardGate(plan models.ReplyPlan, maxMessages, minFirstLen, maxMessageLen, wordBudget, taskBudgetMax int) hardGateResult {
	if plan.Empty() {
		return hardGateResult{reason: "empty plan"}
	}
	if len(plan.Messages) > maxMessages {
		return hardGateResult{reason: "too many messages"}
	}
	// A lone message may be short; a multi-bubble plan must open with
	// something substantial.
	if len(plan.Messages) > 1 && minFirstLen > 0 &&
		len([]rune(strings.TrimSpace(plan.Messages[0].Content))) < minFirstLen {
		return hardGateResult{reason: "first message too short"}
	}
	total := 0
	for _, m := range plan.Messages {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			return hardGateResult{reason: "blank message"}
		}
		runes := len([]rune(content))
		if maxMessageLen > 0 && runes > maxMessageLen {
			return hardGateResult{reason: "message over length cap"}
		}
		total += runes
		if assistantPhrases.MatchString(content) {
			return hardGateResult{reason: "assistant register"}
		}
		if adviceListMarkers.MatchString(content) {
			return hardGateResult{reason: "advice list formatting"}
		}
	}
	if wordBudget > 0 && float64(total) > float64(wordBudget)*budgetSlackFactor {
		return hardGateResult{reason: "over word budget"}
	}
	if taskBudgetMax >= 0 && len(plan.AttemptedTaskIDs) > taskBudgetMax+1 {
		return hardGateResult{reason: "too many tasks pursued"}
	}
	return hardGateResult{ok: true}
}

// clampBreakdown applies the score floor law: a candidate the judge itself
// rated assistant-like or immersion-breaking can never carry a competitive
// overall score into the tree, whatever the judge put in overall_score.
func clampBreakdown(b models.ScoreBreakdown) models.ScoreBreakdown {
	b.Assistantiness = models.Clamp01(b.Assistantiness)
	b.ImmersionBreak = models.Clamp01(b.ImmersionBreak)
	b.PersonaConsistency = models.Clamp01(b.PersonaConsistency)
	b.RelationshipFit = models.Clamp01(b.RelationshipFit)
	b.ModeBehaviorFit = models.Clamp01(b.ModeBehaviorFit)
	b.OverallScore = models.Clamp01(b.OverallScore)
	if b.Assistantiness > 0.5 || b.ImmersionBreak > 0.2 {
		if b.OverallScore >= 0.3 {
			b.OverallScore = 0.29
		}
	}
	return b
}

// Package assistant answers financial-literacy questions through a guarded
// chat interface. A generative backend is optional; without one the assistant
// falls back to a restricted-topic guardrail plus a keyword knowledge base.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/memory"
	"vivek/budget-buddy/internal/models"
)

// RefusalMessage is returned verbatim whenever a query touches a restricted
// topic in offline mode, and is embedded in the online persona's guardrails.
const RefusalMessage = "I'm here only to help with student budgeting and financial literacy. I cannot assist with that topic."

// fallbackMessage is the generic offline reply when no knowledge-base keyword matches.
const fallbackMessage = "🤔 I can help you with budgeting, saving, and tracking expenses. (Add an API Key for smarter answers!)"

// historyContextSize is how many recent messages are embedded in the prompt.
const historyContextSize = 5

// systemInstruction fixes the online persona and its guardrails.
var systemInstruction = `You are Smart Budget Buddy, an AI financial literacy assistant specifically designed for students.
Your goal is to teach budgeting, saving, and responsible money habits.

STRICT GUARDRAILS:
1. You MUST NOT give investment advice (stocks, crypto, trading).
2. You MUST NOT recommend specific loans, credit cards, or debt products.
3. You MUST NOT discuss gambling, politics, adult content, hacking, or illegal acts.
4. You MUST NOT give medical, legal, or mental health advice.
5. If asked about restricted topics, reply EXACTLY: "` + RefusalMessage + `"
6. Keep answers short, crisp, clear, and student-friendly.
7. Use emojis to be engaging.`

// ReplyKind classifies which branch produced a reply.
type ReplyKind string

const (
	// ReplyGenerated came from the generative backend.
	ReplyGenerated ReplyKind = "generated"
	// ReplyOffline came from the guardrail or knowledge base.
	ReplyOffline ReplyKind = "offline"
	// ReplyErrorFallback stands in for a failed backend call this turn.
	ReplyErrorFallback ReplyKind = "error_fallback"
)

// Reply is one assistant answer plus the branch that produced it.
type Reply struct {
	Text string
	Kind ReplyKind
}

// Assistant is the guarded chat layer. It never returns an error to the
// caller; backend failures degrade to an in-band error reply for that turn.
type Assistant struct {
	memory    *memory.Store
	ai        AIClient
	knowledge []KnowledgeEntry
	logger    logging.Logger
}

// New creates an Assistant. ai may be nil, which pins the session to offline mode.
func New(mem *memory.Store, ai AIClient, logger logging.Logger) *Assistant {
	if logger == nil {
		logger = logging.GetLogger()
	}
	knowledge := make([]KnowledgeEntry, len(defaultKnowledge))
	copy(knowledge, defaultKnowledge)
	return &Assistant{
		memory:    mem,
		ai:        ai,
		knowledge: knowledge,
		logger:    logger,
	}
}

// LoadKnowledge merges extra knowledge-base entries from a YAML file. The
// built-in entries keep priority.
func (a *Assistant) LoadKnowledge(path string) error {
	entries, err := loadKnowledgeOverrides(path, a.logger)
	if err != nil {
		return err
	}
	a.knowledge = entries
	return nil
}

// HasGenerativeBackend reports whether a generative backend is configured.
func (a *Assistant) HasGenerativeBackend() bool {
	return a.ai != nil
}

// Ask processes one chat turn. The user message and the reply (refusals and
// error fallbacks included) are both recorded in history. A backend failure
// only affects this turn; the backend stays configured for the next one.
func (a *Assistant) Ask(ctx context.Context, query string) Reply {
	a.record(models.RoleUser, query)

	if a.HasGenerativeBackend() {
		return a.askBackend(ctx, query)
	}
	return a.askOffline(query)
}

func (a *Assistant) askBackend(ctx context.Context, query string) Reply {
	prompt := a.buildPrompt(query)

	text, err := a.ai.Generate(ctx, prompt)
	if err != nil {
		a.logger.WithError(err).Warn("Generative backend failed, answering with error fallback")
		reply := Reply{
			Text: fmt.Sprintf("⚠️ API Error: %v. Switching to offline mode.", err),
			Kind: ReplyErrorFallback,
		}
		a.record(models.RoleAssistant, reply.Text)
		return reply
	}

	a.record(models.RoleAssistant, text)
	return Reply{Text: text, Kind: ReplyGenerated}
}

func (a *Assistant) askOffline(query string) Reply {
	queryLower := strings.ToLower(query)

	for _, topic := range restrictedTopics {
		if strings.Contains(queryLower, topic) {
			a.logger.WithField(logging.FieldReason, topic).Debug("Query refused by guardrail")
			a.record(models.RoleAssistant, RefusalMessage)
			return Reply{Text: RefusalMessage, Kind: ReplyOffline}
		}
	}

	for _, entry := range a.knowledge {
		if strings.Contains(queryLower, entry.Keyword) {
			a.record(models.RoleAssistant, entry.Answer)
			return Reply{Text: entry.Answer, Kind: ReplyOffline}
		}
	}

	a.record(models.RoleAssistant, fallbackMessage)
	return Reply{Text: fallbackMessage, Kind: ReplyOffline}
}

// buildPrompt assembles the system instruction, stored profile, recent
// history and the query into one prompt for the backend.
func (a *Assistant) buildPrompt(query string) string {
	profileJSON := marshalContext(a.memory.Profile())

	history := a.memory.History()
	if len(history) > historyContextSize {
		history = history[len(history)-historyContextSize:]
	}
	historyJSON := marshalContext(history)

	return fmt.Sprintf("%s\n\nContext:\nUser Profile: %s\nRecent History: %s\n\nUser Query: %s",
		systemInstruction, profileJSON, historyJSON, query)
}

func marshalContext(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// record appends a message to history. Persistence failures are logged, not
// surfaced; chat must keep working even when the memory file is unwritable.
func (a *Assistant) record(role, content string) {
	if a.memory == nil {
		return
	}
	if err := a.memory.AddMessage(role, content); err != nil {
		a.logger.WithError(err).Warn("Failed to persist chat message")
	}
}

package assistant

import (
	"fmt"
	"os"

	"vivek/budget-buddy/internal/logging"

	"gopkg.in/yaml.v3"
)

// KnowledgeEntry pairs a trigger keyword with a canned explanatory answer.
// Offline queries are scanned against entries in order; the first keyword
// contained in the query wins.
type KnowledgeEntry struct {
	Keyword string `yaml:"keyword"`
	Answer  string `yaml:"answer"`
}

// knowledgeFile is the YAML structure of an optional knowledge override file.
type knowledgeFile struct {
	Entries []KnowledgeEntry `yaml:"entries"`
}

// defaultKnowledge is the built-in offline knowledge base. Order matters:
// earlier entries win when a query mentions several topics.
var defaultKnowledge = []KnowledgeEntry{
	{"budget", "💡 **Budgeting** is creating a plan for your money. It helps you balance income and expenses so you don't overspend. Try the 50/30/20 rule: 50% needs, 30% wants, 20% savings!"},
	{"saving", "💰 **Saving** means setting aside money for future goals. Start small! Even saving $10 a week adds up. Try automating transfers to a savings account."},
	{"expense", "📉 **Expense tracking** is recording every purchase. Use apps or a simple notebook. Knowing where your money goes is the first step to controlling it."},
	{"goal", "🎯 **Goal-based planning** means saving for specific things (like a laptop or trip). Set a target amount and a deadline, then break it down into monthly savings targets."},
	{"emergency", "🚨 An **emergency fund** is money saved for unexpected costs like car repairs or medical bills. Aim for $500-$1000 to start."},
	{"student", "🎓 **Student Tip**: Take advantage of student discounts! Always carry your ID. Buy used textbooks, cook at home, and use campus resources."},
}

// restrictedTopics are substrings that make the assistant refuse a query in
// offline mode. The online persona carries the same guardrails in its system
// instruction.
var restrictedTopics = []string{
	"stock", "invest", "crypto", "bitcoin", "loan", "credit card", "borrow", "trading",
	"mutual fund", "bond", "debt", "gamble", "gambling", "betting", "casino",
	"politics", "political", "election", "vote", "hack", "hacking", "illegal",
	"drug", "weapon", "adult", "sex", "porn", "medical", "doctor", "lawyer", "legal",
}

// loadKnowledgeOverrides appends extra entries from a YAML file after the
// built-in ones, so the shipped answers keep priority. A missing file is fine.
func loadKnowledgeOverrides(path string, log logging.Logger) ([]KnowledgeEntry, error) {
	entries := make([]KnowledgeEntry, len(defaultKnowledge))
	copy(entries, defaultKnowledge)

	if path == "" {
		return entries, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return entries, fmt.Errorf("error reading knowledge file: %w", err)
	}

	var file knowledgeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return entries, fmt.Errorf("error parsing knowledge file: %w", err)
	}

	for _, entry := range file.Entries {
		if entry.Keyword != "" && entry.Answer != "" {
			entries = append(entries, entry)
		}
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(file.Entries)},
	).Debug("Loaded knowledge overrides")
	return entries, nil
}

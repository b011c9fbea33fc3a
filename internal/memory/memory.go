// Package memory persists the per-user session state (profile, conversation
// history, saved budget plans) as a single JSON document on disk.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/models"
)

// DefaultFile is the memory document used when no path is configured.
const DefaultFile = "user_data.json"

// document is the on-disk shape. The layout is a fixed contract; tools other
// than this one read the same file.
type document struct {
	UserProfile         models.Profile       `json:"user_profile"`
	ConversationHistory []models.ChatMessage `json:"conversation_history"`
	BudgetPlans         []models.BudgetPlan  `json:"budget_plans"`
	Goals               []json.RawMessage    `json:"goals"`
}

func emptyDocument() document {
	return document{
		UserProfile:         models.Profile{},
		ConversationHistory: []models.ChatMessage{},
		BudgetPlans:         []models.BudgetPlan{},
		Goals:               []json.RawMessage{},
	}
}

// Store owns the memory document. It is read-modify-write with a flush after
// every mutation; the system serves one session at a time so no locking is
// applied.
type Store struct {
	path   string
	doc    document
	logger logging.Logger
	now    func() time.Time
}

// NewStore opens (or initializes) the memory document at path. An absent or
// corrupt file yields a fresh empty document rather than an error.
func NewStore(path string, logger logging.Logger) *Store {
	if path == "" {
		path = DefaultFile
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	s := &Store{
		path:   path,
		doc:    emptyDocument(),
		logger: logger,
		now:    time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).WithField(logging.FieldFile, path).Warn("Failed to read memory file, starting fresh")
		}
		return s
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.WithError(err).WithField(logging.FieldFile, path).Warn("Memory file is corrupt, starting fresh")
		return s
	}

	// Nil slices/maps from a sparse document read as empty.
	if doc.UserProfile == nil {
		doc.UserProfile = models.Profile{}
	}
	if doc.ConversationHistory == nil {
		doc.ConversationHistory = []models.ChatMessage{}
	}
	if doc.BudgetPlans == nil {
		doc.BudgetPlans = []models.BudgetPlan{}
	}
	if doc.Goals == nil {
		doc.Goals = []json.RawMessage{}
	}
	s.doc = doc
	return s
}

// flush writes the document back to disk.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.doc, "", "    ")
	if err != nil {
		return fmt.Errorf("error marshaling memory document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating memory directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error writing memory file: %w", err)
	}
	return nil
}

// Profile returns a copy of the stored user profile.
func (s *Store) Profile() models.Profile {
	profile := make(models.Profile, len(s.doc.UserProfile))
	for field, value := range s.doc.UserProfile {
		profile[field] = value
	}
	return profile
}

// UpdateProfile merges partial into the stored profile, last write wins per
// field, and flushes.
func (s *Store) UpdateProfile(partial models.Profile) error {
	s.doc.UserProfile.Merge(partial)
	return s.flush()
}

// AddMessage appends a timestamped chat message and flushes.
func (s *Store) AddMessage(role, content string) error {
	s.doc.ConversationHistory = append(s.doc.ConversationHistory, models.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: s.now().Format(time.RFC3339),
	})
	return s.flush()
}

// History returns the stored conversation history, oldest first.
func (s *Store) History() []models.ChatMessage {
	history := make([]models.ChatMessage, len(s.doc.ConversationHistory))
	copy(history, s.doc.ConversationHistory)
	return history
}

// ClearHistory drops the conversation history and flushes.
func (s *Store) ClearHistory() error {
	s.doc.ConversationHistory = []models.ChatMessage{}
	return s.flush()
}

// SaveBudgetPlan appends a timestamped copy of the plan and flushes. The
// caller's plan is not mutated.
func (s *Store) SaveBudgetPlan(plan models.BudgetPlan) error {
	plan.Timestamp = s.now().Format(time.RFC3339)
	s.doc.BudgetPlans = append(s.doc.BudgetPlans, plan)
	return s.flush()
}

// LatestBudgetPlan returns the most recently saved plan, if any.
func (s *Store) LatestBudgetPlan() (models.BudgetPlan, bool) {
	if len(s.doc.BudgetPlans) == 0 {
		return models.BudgetPlan{}, false
	}
	return s.doc.BudgetPlans[len(s.doc.BudgetPlans)-1], true
}

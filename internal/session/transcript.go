package session

// Speaker role values for TurnRecord.Role.
const (
	RoleEntrepreneur = "Entrepreneur"
	RoleJudge        = "Judge"
)

// TurnRecord is one transcript entry. Insertion order is the conversation
// history and is never reordered or deduplicated.
type TurnRecord struct {
	Role       string `json:"role"`
	Content    string `json:"content"`
	SenderName string `json:"sender_name,omitempty"`
	JudgeName  string `json:"judge_name,omitempty"`
	JudgeRole  string `json:"judge_role,omitempty"`
}

// Transcript is the append-only ordered turn history for one session.
type Transcript struct {
	turns []TurnRecord
}

// Append adds a record to the end of the transcript.
func (t *Transcript) Append(rec TurnRecord) {
	t.turns = append(t.turns, rec)
}

// Snapshot returns a copy of the transcript in insertion order. Callers may
// hold or mutate the copy freely.
func (t *Transcript) Snapshot() []TurnRecord {
	out := make([]TurnRecord, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns.
func (t *Transcript) Len() int { return len(t.turns) }

// Reset clears the transcript.
func (t *Transcript) Reset() { t.turns = nil }

package domain

// Prompt categories. Each game mode draws from one of these; prompts added
// by admins may use any category string.
const (
	CategoryGeneral     = "general"
	CategoryChallenge   = "challenge"
	CategoryPerformance = "performance"
)

// Prompt is a truth or dare question. Kind partitions the bank; TimesUsed
// is monotonically non-decreasing and bumped once per serve into a turn
// record.
type Prompt struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Kind       ActionKind `json:"kind" gorm:"type:varchar(5);not null;index:idx_prompts_kind_diff_cat,priority:1"`
	Text       string     `json:"text" gorm:"not null"`
	Difficulty Difficulty `json:"difficulty" gorm:"type:varchar(10);not null;index:idx_prompts_kind_diff_cat,priority:2"`
	Category   string     `json:"category" gorm:"not null;index:idx_prompts_kind_diff_cat,priority:3"`
	TimesUsed  int        `json:"timesUsed" gorm:"not null;default:0"`
}

func (Prompt) TableName() string {
	return "prompts"
}

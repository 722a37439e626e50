package models

// ActivityEntry is one row of the recent-activity feed. The feed is
// ephemeral: replaced wholesale on every poll, never merged incrementally.
type ActivityEntry struct {
	ID          string `json:"id" yaml:"id"`
	User        string `json:"user" yaml:"user"`
	Action      string `json:"action" yaml:"action"`
	TimeDisplay string `json:"timeDisplay" yaml:"timeDisplay"`
	Timestamp   string `json:"timestamp,omitempty" yaml:"timestamp"`
	Type        string `json:"type" yaml:"type"`     // "success", "upgrade", "warning", "info"
	Source      string `json:"source" yaml:"source"` // "analysis", "registration", "support"
}

package models

// UserStats summarises account counts for the overview page.
type UserStats struct {
	TotalUsers   int    `json:"totalUsers" yaml:"totalUsers"`
	ActiveUsers  int    `json:"activeUsers" yaml:"activeUsers"`
	NewThisWeek  int    `json:"newThisWeek,omitempty" yaml:"newThisWeek"`
	PremiumUsers int    `json:"premiumUsers,omitempty" yaml:"premiumUsers"`
	Timestamp    string `json:"timestamp,omitempty" yaml:"timestamp"`
}

// AIStats is the AI-performance panel payload.
type AIStats struct {
	AIAccuracy       float64        `json:"aiAccuracy" yaml:"aiAccuracy"`
	TotalAnalyses    int            `json:"totalAnalyses" yaml:"totalAnalyses"`
	RecentAnalyses   int            `json:"recentAnalyses" yaml:"recentAnalyses"`
	GrowthPercentage string         `json:"growthPercentage" yaml:"growthPercentage"`
	Confidence       map[string]int `json:"confidenceDistribution" yaml:"confidenceDistribution"`
	Timestamp        string         `json:"timestamp,omitempty" yaml:"timestamp"`
}

// Analytics is the analytics dashboard payload.
type Analytics struct {
	UserEngagement     map[string]float64 `json:"userEngagement" yaml:"userEngagement"`
	FeatureUsage       map[string]float64 `json:"featureUsage" yaml:"featureUsage"`
	PerformanceMetrics map[string]float64 `json:"performanceMetrics" yaml:"performanceMetrics"`
	Timestamp          string             `json:"timestamp,omitempty" yaml:"timestamp"`
}

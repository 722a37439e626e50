package mockdata

import (
	"testing"

	"github.com/xeipuuv/gojsonschema"
)

// The fallback payloads stand in for real backend responses, so their JSON
// shape has to match what the frontend scripts expect. These schemas pin the
// contract.

const ticketsSchema = `{
	"type": "object",
	"required": ["success", "tickets", "pagination"],
	"properties": {
		"success": {"type": "boolean"},
		"tickets": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "ticketId", "type", "priority", "status", "subject", "description", "userEmail", "createdAt"],
				"properties": {
					"type": {"enum": ["general", "feature_request"]},
					"priority": {"enum": ["low", "medium", "high", "urgent"]},
					"status": {"enum": ["open", "closed"]},
					"ageInDays": {"type": "integer", "minimum": 0}
				}
			}
		},
		"pagination": {
			"type": "object",
			"required": ["currentPage", "totalPages", "totalTickets"]
		}
	}
}`

const activitySchema = `{
	"type": "object",
	"required": ["success", "data"],
	"properties": {
		"success": {"type": "boolean"},
		"data": {
			"type": "object",
			"required": ["activities", "totalActivities", "timestamp"],
			"properties": {
				"activities": {
					"type": "array",
					"minItems": 1,
					"items": {
						"type": "object",
						"required": ["id", "user", "action", "timeDisplay", "type", "source"],
						"properties": {
							"type": {"enum": ["success", "upgrade", "warning", "info"]},
							"source": {"enum": ["analysis", "registration", "support"]}
						}
					}
				}
			}
		}
	}
}`

const statsSchema = `{
	"type": "object",
	"required": ["success", "data"],
	"properties": {
		"data": {
			"type": "object",
			"required": ["totalUsers", "activeUsers"],
			"properties": {
				"totalUsers": {"type": "integer", "minimum": 0},
				"activeUsers": {"type": "integer", "minimum": 0}
			}
		}
	}
}`

const aiStatsSchema = `{
	"type": "object",
	"required": ["success", "data"],
	"properties": {
		"data": {
			"type": "object",
			"required": ["aiAccuracy", "totalAnalyses", "confidenceDistribution"],
			"properties": {
				"aiAccuracy": {"type": "number", "minimum": 0, "maximum": 100}
			}
		}
	}
}`

const analyticsSchema = `{
	"type": "object",
	"required": ["success", "data"],
	"properties": {
		"data": {
			"type": "object",
			"required": ["userEngagement", "featureUsage", "performanceMetrics"]
		}
	}
}`

func validate(t *testing.T, schema string, payload interface{}) {
	t.Helper()
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(payload),
	)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	for _, desc := range result.Errors() {
		t.Errorf("schema violation: %s", desc)
	}
}

func TestTicketsMatchContract(t *testing.T) {
	validate(t, ticketsSchema, Tickets())
}

func TestActivitiesMatchContract(t *testing.T) {
	validate(t, activitySchema, Activities())
}

func TestStatsMatchContract(t *testing.T) {
	validate(t, statsSchema, Stats())
}

func TestAIStatsMatchContract(t *testing.T) {
	validate(t, aiStatsSchema, AIStats())
}

func TestAnalyticsMatchContract(t *testing.T) {
	validate(t, analyticsSchema, Analytics())
}

func TestActivityIDsStableAcrossCalls(t *testing.T) {
	first := Activities().Data.Activities
	second := Activities().Data.Activities
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("unexpected activity counts: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("activity %d id changed between calls: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

// Package mockdata holds the documented fallback payloads substituted when
// the backend is unreachable. Only read-only informational endpoints consume
// these; every substitution is logged and counted so operators can tell
// synthetic data apart from real responses.
package mockdata

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/gtohub/admin-portal/internal/models"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtures struct {
	Tickets    []models.SupportTicket `yaml:"tickets"`
	Activities []models.ActivityEntry `yaml:"activities"`
	Stats      models.UserStats       `yaml:"stats"`
	AIStats    models.AIStats         `yaml:"aiStats"`
	Analytics  models.Analytics       `yaml:"analytics"`
}

var (
	once   sync.Once
	loaded fixtures
	// activityIDs are assigned once per process so the feed stays stable
	// across polls of the same fallback data.
	activityIDs []string
)

func load() fixtures {
	once.Do(func() {
		if err := yaml.Unmarshal(fixturesYAML, &loaded); err != nil {
			// Embedded fixtures are covered by tests; a parse failure here
			// is a build defect, not a runtime condition.
			panic(fmt.Sprintf("mockdata: parse fixtures: %v", err))
		}
		for range loaded.Activities {
			activityIDs = append(activityIDs, "mock-"+uuid.NewString())
		}
	})
	return loaded
}

// Tickets returns the fallback support ticket payload.
func Tickets() *models.TicketsResponse {
	f := load()
	tickets := make([]models.SupportTicket, len(f.Tickets))
	copy(tickets, f.Tickets)
	return &models.TicketsResponse{
		Success: true,
		Tickets: tickets,
		Pagination: &models.TicketPagination{
			CurrentPage:  1,
			TotalPages:   1,
			TotalTickets: len(tickets),
		},
	}
}

// Activities returns the fallback recent-activity payload with a fresh
// timestamp.
func Activities() *models.ActivityResponse {
	f := load()
	out := &models.ActivityResponse{Success: true}
	out.Data.Activities = make([]models.ActivityEntry, len(f.Activities))
	for i, a := range f.Activities {
		a.ID = activityIDs[i]
		out.Data.Activities[i] = a
	}
	out.Data.TotalActivities = len(out.Data.Activities)
	out.Data.Timestamp = time.Now().UTC().Format(time.RFC3339)
	return out
}

// Stats returns the fallback user statistics payload.
func Stats() *models.StatsResponse {
	f := load()
	out := &models.StatsResponse{Success: true, Data: f.Stats}
	out.Data.Timestamp = time.Now().UTC().Format(time.RFC3339)
	return out
}

// AIStats returns the fallback AI statistics payload.
func AIStats() *models.AIStatsResponse {
	f := load()
	out := &models.AIStatsResponse{Success: true, Data: f.AIStats}
	out.Data.Timestamp = time.Now().UTC().Format(time.RFC3339)
	return out
}

// Analytics returns the fallback analytics payload.
func Analytics() *models.AnalyticsResponse {
	f := load()
	out := &models.AnalyticsResponse{Success: true, Data: f.Analytics}
	out.Data.Timestamp = time.Now().UTC().Format(time.RFC3339)
	return out
}

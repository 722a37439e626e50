package view

import (
	"strings"

	"github.com/gtohub/admin-portal/internal/models"
)

// TicketFields maps ticket-table column keys to their comparators. Priority,
// status and type order by their rank tables rather than alphabetically.
var TicketFields = map[string]Field[models.SupportTicket]{
	"priority":  RankField(func(t models.SupportTicket) int { return models.PriorityRank[t.Priority] }),
	"status":    RankField(func(t models.SupportTicket) int { return models.StatusRank[t.Status] }),
	"type":      RankField(func(t models.SupportTicket) int { return models.TypeRank[t.Type] }),
	"subject":   StringField(func(t models.SupportTicket) string { return t.Subject }),
	"userEmail": StringField(func(t models.SupportTicket) string { return t.UserEmail }),
	"ticketId":  StringField(func(t models.SupportTicket) string { return t.TicketID }),
	"createdAt": DateField(func(t models.SupportTicket) string { return t.CreatedAt }),
	"updatedAt": DateField(func(t models.SupportTicket) string { return t.UpdatedAt }),
	"ageInDays": NumberField(func(t models.SupportTicket) float64 { return float64(t.AgeInDays) }),
}

// SortTickets orders the slice on the named column. Unknown columns leave
// the snapshot order untouched.
func SortTickets(tickets []models.SupportTicket, field string, dir Direction) {
	f, ok := TicketFields[field]
	if !ok {
		return
	}
	SortBy(tickets, f, dir)
}

// TicketFilter narrows the ticket snapshot. Empty or "all" values on the
// enumerated filters match everything.
type TicketFilter struct {
	Status   string
	Type     string
	Priority string
	Search   string
}

func matchesEnum(filter, value string) bool {
	return filter == "" || filter == "all" || strings.EqualFold(filter, value)
}

// FilterTickets applies the equality filters and a case-insensitive
// substring search over subject, user email, ticket id and user name.
func FilterTickets(tickets []models.SupportTicket, f TicketFilter) []models.SupportTicket {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.SupportTicket, 0, len(tickets))
	for _, t := range tickets {
		if !matchesEnum(f.Status, t.Status) ||
			!matchesEnum(f.Type, t.Type) ||
			!matchesEnum(f.Priority, t.Priority) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Subject), search) &&
			!strings.Contains(strings.ToLower(t.UserEmail), search) &&
			!strings.Contains(strings.ToLower(t.TicketID), search) &&
			!strings.Contains(strings.ToLower(t.UserFullName), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

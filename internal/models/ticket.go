package models

// SupportTicket is a read-only projection of a support request. Sorting and
// filtering happen client-side over the fetched snapshot; the portal never
// mutates tickets in place.
type SupportTicket struct {
	ID            string           `json:"id" yaml:"id"`
	TicketID      string           `json:"ticketId" yaml:"ticketId"`
	Type          string           `json:"type" yaml:"type"`         // "general" or "feature_request"
	Priority      string           `json:"priority" yaml:"priority"` // "low", "medium", "high", "urgent"
	Status        string           `json:"status" yaml:"status"`     // "open" or "closed"
	Subject       string           `json:"subject" yaml:"subject"`
	Description   string           `json:"description" yaml:"description"`
	UserEmail     string           `json:"userEmail" yaml:"userEmail"`
	UserFullName  string           `json:"userFullName,omitempty" yaml:"userFullName"`
	Responses     []TicketResponse `json:"responses" yaml:"responses"`
	CreatedAt     string           `json:"createdAt" yaml:"createdAt"`
	UpdatedAt     string           `json:"updatedAt" yaml:"updatedAt"`
	ClosedAt      string           `json:"closedAt,omitempty" yaml:"closedAt"`
	AgeInDays     int              `json:"ageInDays" yaml:"ageInDays"`
	StatusDisplay string           `json:"statusDisplay" yaml:"statusDisplay"`
}

// TicketResponse is one reply on a ticket thread.
type TicketResponse struct {
	ResponseID  string `json:"responseId,omitempty" yaml:"responseId"`
	Message     string `json:"message" yaml:"message"`
	IsFromAgent bool   `json:"isFromAgent,omitempty" yaml:"isFromAgent"`
	AuthorName  string `json:"authorName,omitempty" yaml:"authorName"`
	CreatedAt   string `json:"createdAt,omitempty" yaml:"createdAt"`
}

// Priority ranks: urgent outranks high outranks medium outranks low.
// Unknown values rank 0 and therefore sort below every known priority.
var PriorityRank = map[string]int{
	"urgent": 4,
	"high":   3,
	"medium": 2,
	"low":    1,
}

// Status ranks: open before closed.
var StatusRank = map[string]int{
	"open":   2,
	"closed": 1,
}

// Type ranks: general issues before feature requests.
var TypeRank = map[string]int{
	"general":         2,
	"feature_request": 1,
}

// TicketPagination mirrors the backend's pagination block.
type TicketPagination struct {
	CurrentPage  int  `json:"currentPage" yaml:"currentPage"`
	TotalPages   int  `json:"totalPages" yaml:"totalPages"`
	TotalTickets int  `json:"totalTickets" yaml:"totalTickets"`
	HasNext      bool `json:"hasNext" yaml:"hasNext"`
	HasPrev      bool `json:"hasPrev" yaml:"hasPrev"`
}

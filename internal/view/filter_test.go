package view

import (
	"testing"

	"github.com/gtohub/admin-portal/internal/models"
)

func TestFilterUsersExcludesSignedInAdmin(t *testing.T) {
	users := []models.ManagedUser{
		{Email: "Admin@Example.com", FullName: "Portal Admin"},
		{Email: "alice@example.com", FullName: "Alice"},
	}
	got := FilterUsers(users, "admin@example.com", "")
	if len(got) != 1 || got[0].Email != "alice@example.com" {
		t.Fatalf("admin row not excluded: %v", got)
	}
}

func TestFilterUsersSearchMatchesNameAndEmail(t *testing.T) {
	users := []models.ManagedUser{
		{Email: "alice@example.com", FullName: "Alice Smith"},
		{Email: "bob@example.com", FullName: "Bob Jones"},
		{Email: "smith@other.com", FullName: "Carol"},
	}
	got := FilterUsers(users, "", "SMITH")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches across name and email, got %d", len(got))
	}
}

func TestFilterTicketsEnumAndSearch(t *testing.T) {
	tickets := []models.SupportTicket{
		{TicketID: "TKT-1", Status: "open", Type: "general", Priority: "high", Subject: "Cannot log in"},
		{TicketID: "TKT-2", Status: "closed", Type: "general", Priority: "high", Subject: "Login loop"},
		{TicketID: "TKT-3", Status: "open", Type: "feature_request", Priority: "low", Subject: "Export hands"},
	}

	got := FilterTickets(tickets, TicketFilter{Status: "open"})
	if len(got) != 2 {
		t.Fatalf("status filter: expected 2, got %d", len(got))
	}

	got = FilterTickets(tickets, TicketFilter{Status: "all", Priority: "high", Search: "login"})
	if len(got) != 1 || got[0].TicketID != "TKT-2" {
		t.Fatalf("combined filter: got %v", got)
	}

	got = FilterTickets(tickets, TicketFilter{Search: "tkt-3"})
	if len(got) != 1 || got[0].TicketID != "TKT-3" {
		t.Fatalf("ticket id search: got %v", got)
	}
}

func TestFilterTicketsAllMatchesEverything(t *testing.T) {
	tickets := []models.SupportTicket{
		{TicketID: "TKT-1", Status: "open"},
		{TicketID: "TKT-2", Status: "closed"},
	}
	got := FilterTickets(tickets, TicketFilter{Status: "all", Type: "all", Priority: "all"})
	if len(got) != 2 {
		t.Fatalf("expected all tickets, got %d", len(got))
	}
}

package view

import (
	"strings"

	"github.com/gtohub/admin-portal/internal/models"
)

// UserFields maps user-table column keys to their comparators.
var UserFields = map[string]Field[models.ManagedUser]{
	"fullName":   StringField(func(u models.ManagedUser) string { return u.FullName }),
	"email":      StringField(func(u models.ManagedUser) string { return u.Email }),
	"planStatus": StringField(func(u models.ManagedUser) string { return u.PlanStatus }),
	"userUsage":  NumberField(func(u models.ManagedUser) float64 { return float64(u.UserUsage) }),
	"lastLogin":  DateField(func(u models.ManagedUser) string { return u.LastLogin }),
	"createdAt":  DateField(func(u models.ManagedUser) string { return u.CreatedAt }),
}

// SortUsers orders the slice on the named column. Unknown columns leave the
// snapshot order untouched.
func SortUsers(users []models.ManagedUser, field string, dir Direction) {
	f, ok := UserFields[field]
	if !ok {
		return
	}
	SortBy(users, f, dir)
}

// FilterUsers drops the signed-in admin's own row and applies a
// case-insensitive substring search over name and email.
func FilterUsers(users []models.ManagedUser, adminEmail, search string) []models.ManagedUser {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]models.ManagedUser, 0, len(users))
	for _, u := range users {
		if adminEmail != "" && strings.EqualFold(u.Email, adminEmail) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.FullName), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		out = append(out, u)
	}
	return out
}

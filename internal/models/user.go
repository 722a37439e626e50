package models

import "strings"

// ManagedUser is an end-user account as administered through the portal.
// The backend owns the record; the portal only holds a refreshable
// projection and requests mutations.
type ManagedUser struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	AdminAllowed bool   `json:"adminAllowed"`
	IsActive     bool   `json:"isActive"`
	LastLogin    string `json:"lastLogin,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
	PlanStatus   string `json:"planStatus"`
	UserUsage    int    `json:"userUsage"`
}

// UsageLabel buckets the raw usage counter for display.
func (u ManagedUser) UsageLabel() string {
	switch {
	case u.UserUsage < 100:
		return "Low"
	case u.UserUsage >= 1000:
		return "High"
	default:
		return "Medium"
	}
}

// PlanStatusDisplay title-cases the raw plan status ("premium" -> "Premium").
func (u ManagedUser) PlanStatusDisplay() string {
	if u.PlanStatus == "" {
		return ""
	}
	return strings.ToUpper(u.PlanStatus[:1]) + strings.ToLower(u.PlanStatus[1:])
}

// AddUserRequest is the validated portal-side input for creating a user.
type AddUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// UpdateUserRequest carries a full user update. Pointer fields distinguish
// "absent" from "false" so validation can reject incomplete requests.
type UpdateUserRequest struct {
	UserID       string `json:"userId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	IsActive     *bool  `json:"isActive"`
	AdminAllowed *bool  `json:"adminAllowed"`
}

package models

// AdminIdentity is the verified profile of the signed-in admin. It is derived
// strictly from a successful token verification and held only per request;
// pages never cache it across mounts.
type AdminIdentity struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	AdminAllowed bool   `json:"adminAllowed"`
	LastLogin    string `json:"lastLogin"`
}

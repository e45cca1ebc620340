package model

// The two access levels of the app. There are no per-user accounts, just a
// shared password per role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

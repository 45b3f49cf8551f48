package models

// Credential is a registered account record. Username, Email and Password
// are stored in the obfuscated form (see internal/obfuscate). Records are
// append-only: never mutated, never deleted.
type Credential struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the de-obfuscated projection of a Credential, held only while
// the user is authenticated. At most one Session exists per process.
type Session struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NotificationKind distinguishes success from error banners.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is the single transient message shown to the user.
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}

// Theme is the two-value appearance mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

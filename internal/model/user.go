package model

import "time"

// Role is the closed set of account roles.  The value is stored in the
// users table and embedded in the JWT "role" claim.  Keeping it a named
// type (rather than loose strings scattered through handlers) means every
// role check goes through the constants below.
type Role string

const (
	RoleBoxer     Role = "boxer"     // may apply to compete in events
	RoleViewer    Role = "viewer"    // may buy tickets only
	RoleOrganizer Role = "organizer" // may create and manage events
)

// ParseRole normalizes and validates a role string supplied at
// registration.  The enumeration is closed: anything outside the three
// known values is rejected rather than defaulted.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleBoxer, RoleViewer, RoleOrganizer:
		return Role(s), true
	}
	return "", false
}

// User mirrors the `users` table.  The role is fixed at registration;
// profile fields are mutable by the owning user only.  Boxer-specific
// fields (weight class, experience, fight record) are stored inline and
// simply left empty for viewers and organizers.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address (stored lower-cased).
//  PasswordHash – bcrypt hashed password.
//  DisplayName  – public name shown as organizerName on created events.
//  Role         – one of boxer, viewer, organizer.
//  Bio          – free-form profile text.
//  WeightClass  – boxer only, e.g. "welterweight".
//  Experience   – boxer only, e.g. "amateur", "professional".
//  Wins/Losses/Draws – boxer fight record counters, each >= 0.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	DisplayName  string    // users.display_name
	Role         Role      // users.role
	Bio          string    // users.bio
	WeightClass  string    // users.weight_class
	Experience   string    // users.experience
	Wins         uint32    // users.wins
	Losses       uint32    // users.losses
	Draws        uint32    // users.draws
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  The plain
// token is never stored; only its SHA-256 hash.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}

package domain

import "time"

// User is the account aggregate owned by the credential store. Role
// memberships are loaded eagerly at the authentication boundary; everywhere
// else the minimal Principal is passed around instead.
type User struct {
	ID                  string
	Name                string
	Email               string
	PasswordHash        string
	Roles               []Role
	IsVerified          bool
	IsActive            bool
	FailedLoginAttempts int
	LockedUntil         *time.Time
	LastLoginAt         *time.Time
	VerificationToken   *string
	OAuthProvider       string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Locked reports whether the account-level lock is currently in effect. This
// is independent of the IP-keyed login attempt tracker; both checks must pass.
func (u *User) Locked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Principal is the authenticated identity attached to a request after token
// validation.
type Principal struct {
	UserID string
	Email  string
	Roles  []Role
}

func (p *Principal) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

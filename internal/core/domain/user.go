package domain

// Role tags for the user profile. A user is either a manager (staff) or a
// client (customer); the tag alone decides the granted authority.
const (
	RoleManager = "manager"
	RoleClient  = "client"
)

// Authority labels derived from role tags.
const (
	AuthorityManager = "ROLE_MANAGER"
	AuthorityClient  = "ROLE_CLIENT"
)

// Account holds the login credential and status flags for a user. It is the
// owning side of the 1:1 with User and is created first during registration
// so the profile row can reference it.
type Account struct {
	ID                    uint   `json:"id" gorm:"primaryKey"`
	Login                 string `json:"login" gorm:"uniqueIndex;not null"`
	Password              string `json:"-" gorm:"not null"`
	Enabled               bool   `json:"enabled" gorm:"not null"`
	AccountNonExpired     bool   `json:"-" gorm:"not null"`
	AccountNonLocked      bool   `json:"-" gorm:"not null"`
	CredentialsNonExpired bool   `json:"-" gorm:"not null"`

	User *User `json:"-" gorm:"foreignKey:AccountID"`
}

// Usable reports whether the account may authenticate at all.
func (a *Account) Usable() bool {
	return a.Enabled && a.AccountNonExpired && a.AccountNonLocked && a.CredentialsNonExpired
}

// User is the profile (principal) attached to an account.
type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Username       string `json:"username" gorm:"not null"`
	FirstName      string `json:"first_name" gorm:"not null"`
	LastName       string `json:"last_name" gorm:"not null"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	Phone          string `json:"phone" gorm:"not null"`
	ProfilePicture []byte `json:"-"`
	LoyaltyPoints  int    `json:"loyalty_points" gorm:"not null;default:0"`
	Preferences    string `json:"preferences,omitempty"`
	Role           string `json:"role" gorm:"not null"`
	AccountID      uint   `json:"-" gorm:"not null"`
}

// Authorities derives the authority labels for a role tag. Unknown tags grant
// nothing.
func Authorities(role string) []string {
	switch role {
	case RoleManager:
		return []string{AuthorityManager}
	case RoleClient:
		return []string{AuthorityClient}
	default:
		return nil
	}
}

// Identity is the resolved caller for one in-flight request. It is installed
// by the identity middleware and discarded when the request ends.
type Identity struct {
	Username    string
	Authorities []string
}

// HasAuthority reports whether the identity carries the given authority label.
func (id Identity) HasAuthority(authority string) bool {
	for _, a := range id.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

package domain

import "time"

type Role string

const (
	RoleTenant Role = "tenant"
	RoleOwner  Role = "owner"
)

func (r Role) IsValid() bool {
	return r == RoleTenant || r == RoleOwner
}

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Session is the authenticated caller. The role is trusted as issued by the
// identity provider.
type Session struct {
	UserID string
	Role   Role
}

func (s Session) IsOwner() bool  { return s.Role == RoleOwner }
func (s Session) IsTenant() bool { return s.Role == RoleTenant }

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           Role
	TelegramChatID *int64
}

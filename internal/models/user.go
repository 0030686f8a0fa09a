package models

// Роли пользователей.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// User - справочный пользователь. managerEmail - ссылка по значению,
// целостность между сущностями не поддерживается.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	ManagerEmail string   `json:"managerEmail,omitempty"`
	Office       string   `json:"office"`
	Teams        []string `json:"teams,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}

func (u *User) PrimaryKey() string {
	return u.ID
}

// IsManager проверяет, является ли пользователь менеджером.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// InTeam проверяет членство в команде по имени.
func (u *User) InTeam(name string) bool {
	for _, team := range u.Teams {
		if team == name {
			return true
		}
	}
	return false
}

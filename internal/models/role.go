package models

// Role - командная роль (тег в users.teams). Имя уникально с точностью
// до обрезки пробелов, сравнение регистрозависимое.
type Role struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (r *Role) PrimaryKey() string {
	return r.ID
}

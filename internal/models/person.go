package models

// Person represents a row from the people table. Role and Team are lookup
// joins used by the team roster; both foreign keys are optional.
type Person struct {
	ID           int64   `json:"id" db:"id"`
	FullName     *string `json:"full_name,omitempty" db:"full_name"`
	Email        *string `json:"email,omitempty" db:"email"`
	ProfileImage *string `json:"profile_image,omitempty" db:"profile_image"`
	LinkedIn     *string `json:"linkedin,omitempty" db:"linkedin"`
	Instagram    *string `json:"instagram,omitempty" db:"instagram"`
	Twitter      *string `json:"twitter,omitempty" db:"twitter"`
	IsActive     bool    `json:"is_active" db:"is_active"`
	DisplayOrder *int    `json:"display_order,omitempty" db:"display_order"`
	RoleID       *int64  `json:"role_id,omitempty" db:"role_id"`
	TeamID       *int64  `json:"team_id,omitempty" db:"team_id"`

	Role *Role `json:"role,omitempty" db:"-"`
	Team *Team `json:"team,omitempty" db:"-"`
}

// Role represents a row from the roles lookup table
type Role struct {
	ID   int64   `json:"id" db:"id"`
	Name *string `json:"name,omitempty" db:"name"`
}

// Team represents a row from the teams lookup table
type Team struct {
	ID           int64   `json:"id" db:"id"`
	Name         *string `json:"name,omitempty" db:"name"`
	DisplayOrder *int    `json:"display_order,omitempty" db:"display_order"`
}

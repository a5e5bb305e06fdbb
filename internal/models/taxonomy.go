package models

// Category is an admin-managed taxonomy entry. Complaints and workers
// reference categories by name only; deleting one leaves dangling
// strings behind, which is accepted.
type Category struct {
	BaseModel
	Name string       `gorm:"not null" json:"name"`
	Type CategoryType `gorm:"type:varchar(10);not null" json:"type"`
}

// RoleDefinition is an admin-managed description of a role. It does
// not gate anything; access control uses the closed UserRole enum.
type RoleDefinition struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}

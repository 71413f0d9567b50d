package models

import "time"

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Email        string  `gorm:"size:254;uniqueIndex;not null"`
	Username     string  `gorm:"size:255;uniqueIndex;not null"`
	FirstName    string  `gorm:"size:30"`
	LastName     string  `gorm:"size:30"`
	Role         string  `gorm:"size:20;not null;default:'client'"`
	IsActive     bool    `gorm:"not null;default:true"`
	PasswordHash string  `gorm:"not null"`
	Carts        []Cart  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders       []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ValidRole reports whether r is one of the roles a user may hold.
func ValidRole(r string) bool {
	return r == RoleClient || r == RoleAdmin
}

package models

import "github.com/facultyfeedback/backend/internal/domain/identity"

// UserModel is the persistence model for the User aggregate
type UserModel struct {
	BaseModel
	Name         string        `gorm:"type:varchar(100);not null"`
	Email        string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string        `gorm:"type:varchar(255);not null"`
	Role         identity.Role `gorm:"type:varchar(20);not null;index"`
	RollNumber   string        `gorm:"type:varchar(50)"`
	Department   string        `gorm:"type:varchar(50);index"`
	Year         *int
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// UserModelFromDomain converts a domain user
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		RollNumber:   u.RollNumber,
		Department:   u.Department,
		Year:         u.Year,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}

// ToDomain converts the model back to a domain user
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.AggregateRoot(),
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Role:              m.Role,
		RollNumber:        m.RollNumber,
		Department:        m.Department,
		Year:              m.Year,
	}
}

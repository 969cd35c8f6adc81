package entity

import (
	"interview-scheduler/core/entity"
)

type User struct {
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
	IsActive bool   `db:"is_active" json:"is_active"`
	entity.BaseEntity
}

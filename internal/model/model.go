package model

import (
	"time"
)

type User struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Username       string   `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email          string   `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword string   `gorm:"not null" json:"-"`
	Role           UserRole `gorm:"type:varchar(16);not null;default:user" json:"role"`
}

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type Movie struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"size:100;not null" json:"title"`
	Overview string  `gorm:"type:text;not null" json:"overview"`
	Year     int     `gorm:"not null" json:"year"`
	Rating   float64 `gorm:"not null" json:"rating"`
	Category string  `gorm:"size:100;not null;index" json:"category"`
}

type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"date_created"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
}

// OrderLine belongs to exactly one order; a movie appears at most once
// per order through the composite key.
type OrderLine struct {
	OrderID  uint `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	MovieID  uint `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	Quantity int  `gorm:"not null" json:"quantity"`
}

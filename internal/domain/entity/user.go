package entity

import "time"

// User representa al operador del punto de venta.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, nunca texto plano
	CreatedAt    time.Time
}

package domain

import "time"

// Review is a customer message. Write-once; admins only read.
type Review struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

func NewReview(name, email, message string) *Review {
	return &Review{
		Name:    name,
		Email:   email,
		Message: message,
	}
}

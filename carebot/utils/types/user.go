package types

import "time"

type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Age            int    `json:"age"`
	MedicalHistory string `json:"medicalHistory"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Age            int    `json:"age"`
	MedicalHistory string `json:"medicalHistory"`
}

type UserPayload struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Age            int       `json:"age"`
	MedicalHistory string    `json:"medicalHistory"`
	CreatedAt      time.Time `json:"created_at"`
}

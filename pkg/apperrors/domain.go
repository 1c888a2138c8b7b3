package apperrors

import "net/http"

// Domain-specific error factories.

func ErrInterviewNotFound() *AppError {
	return New(CodeNotFound, "interview", "Interview not found", http.StatusNotFound)
}

func ErrInvalidStatusTransition(from, to string) *AppError {
	return New(CodeInvalidTransition, "interview", "Illegal status transition", http.StatusConflict).
		WithDetails(map[string]string{"from": from, "to": to})
}

func ErrRatingAlreadyExists() *AppError {
	return New(CodeAlreadyExists, "rating", "Interview already has a rating", http.StatusConflict)
}

func ErrRatingNotFound() *AppError {
	return New(CodeNotFound, "rating", "Rating not found", http.StatusNotFound)
}

func ErrEmailTaken() *AppError {
	return New(CodeAlreadyExists, "auth", "Email is already registered", http.StatusConflict)
}

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
}

func ErrUserNotFound() *AppError {
	return New(CodeNotFound, "user", "User not found", http.StatusNotFound)
}

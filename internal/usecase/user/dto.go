package user

import domain "rest-user-service/internal/domain/user"

// CreateUserRequest represents the request payload for creating a new user.
// The field set has already passed unknown-key validation.
type CreateUserRequest struct {
	Fields domain.Fields
}

// CreateUserResponse represents the response payload after creating a user.
type CreateUserResponse struct {
	ID int64
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// GetUserResponse represents the response payload for user details.
type GetUserResponse struct {
	User User
}

// ListUsersRequest represents the request payload for listing users.
type ListUsersRequest struct{}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users []User
}

// User is the projection of a user for external consumption. FullName and
// Email are derived at read time, never persisted.
type User struct {
	ID        int64
	FirstName *string
	LastName  *string
	FullName  string
	Email     string
}

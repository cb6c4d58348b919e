package user

import "context"

// Service aggregates the user use cases behind one facade for the HTTP
// handler.
type Service struct {
	listUsers  *ListUsersUseCase
	getUser    *GetUserUseCase
	createUser *CreateUserUseCase
	updateUser *UpdateUserUseCase
	deleteUser *DeleteUserUseCase
}

// NewService wires the use cases over a single repository.
func NewService(repo Repository) *Service {
	return &Service{
		listUsers:  NewListUsersUseCase(repo),
		getUser:    NewGetUserUseCase(repo),
		createUser: NewCreateUserUseCase(repo),
		updateUser: NewUpdateUserUseCase(repo),
		deleteUser: NewDeleteUserUseCase(repo),
	}
}

// ListUsers runs the query pipeline.
func (s *Service) ListUsers(ctx context.Context, query ListUsersQuery) (UsersListResult, error) {
	return s.listUsers.Execute(ctx, query)
}

// GetUser fetches a single user.
func (s *Service) GetUser(ctx context.Context, query GetUserQuery) (Result, error) {
	return s.getUser.Execute(ctx, query)
}

// CreateUser inserts a new user.
func (s *Service) CreateUser(ctx context.Context, cmd CreateUserCommand) (Result, error) {
	return s.createUser.Execute(ctx, cmd)
}

// UpdateUser partially updates a user.
func (s *Service) UpdateUser(ctx context.Context, cmd UpdateUserCommand) (Result, error) {
	return s.updateUser.Execute(ctx, cmd)
}

// DeleteUser removes a user.
func (s *Service) DeleteUser(ctx context.Context, cmd DeleteUserCommand) error {
	return s.deleteUser.Execute(ctx, cmd)
}

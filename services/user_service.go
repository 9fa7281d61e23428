package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"api/errs"
	"api/models"
	"api/repositories"
)

// UserService implements profile reads/updates, account deletion and the
// friends-list surface.
type UserService struct {
	users repositories.UserRepository
	graph *Graph
}

func NewUserService(users repositories.UserRepository, graph *Graph) *UserService {
	return &UserService{users: users, graph: graph}
}

// List returns all users, optionally filtered by a case-insensitive search
// over username and display name, ordered by username.
func (s *UserService) List(ctx context.Context, search string) ([]models.User, error) {
	all, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	matched := all[:0]
	for _, u := range all {
		if term == "" ||
			strings.Contains(u.Username, term) ||
			strings.Contains(strings.ToLower(u.Name), term) {
			matched = append(matched, u)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Username < matched[j].Username })
	return matched, nil
}

func (s *UserService) Get(ctx context.Context, id models.ID) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateUserInput carries the updatable profile fields; nil means unchanged.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Name     *string
	Bio      *string
	Avatar   *string
}

// Update modifies the profile. Self only.
func (s *UserService) Update(ctx context.Context, requester, id models.ID, in UpdateUserInput) (*models.User, error) {
	if requester != id {
		return nil, errs.New(errs.KindUnauthorized, "cannot update another user's profile")
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		user.Username = NormalizeUsername(*in.Username)
	}
	if in.Email != nil {
		user.Email = NormalizeEmail(*in.Email)
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Bio != nil {
		user.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account and runs the full cascade. Self only.
func (s *UserService) Delete(ctx context.Context, requester, id models.ID) (*models.User, error) {
	if requester != id {
		return nil, errs.New(errs.KindUnauthorized, "cannot delete another user's account")
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.graph.DeleteUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Friends resolves the user's friends list to full records.
func (s *UserService) Friends(ctx context.Context, id models.ID) ([]models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	friends := make([]models.User, 0, len(user.Friends))
	for _, fid := range user.Friends {
		friend, err := s.users.GetByID(ctx, fid)
		if err != nil {
			if errs.IsKind(err, errs.KindNotFound) {
				continue
			}
			return nil, err
		}
		friends = append(friends, *friend)
	}
	return friends, nil
}

// Unfriend severs the edge in both directions. Self only.
func (s *UserService) Unfriend(ctx context.Context, requester, id, other models.ID) error {
	if requester != id {
		return errs.New(errs.KindUnauthorized, "cannot unfriend on another user's behalf")
	}
	return s.graph.Unfriend(ctx, id, other)
}

// NormalizeUsername trims and lowercases a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByUUID(ctx context.Context, id string) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	Update(ctx context.Context, id string, columns map[string]any) (dao.User, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Email:     user.Email,
		Password:  user.Password,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		DOB:       user.DOB,
		Gender:    user.Gender,
		Phone:     user.Phone,
		Level:     user.Level,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByUUID(ctx context.Context, id string) (domain.User, error) {
	found, err := r.dao.FindByUUID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByUUID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// Update persists the non-nil fields of upd. Password must already be hashed.
func (r *UserRepository) Update(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	columns := map[string]any{}
	if upd.FirstName != nil {
		columns["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		columns["last_name"] = *upd.LastName
	}
	if upd.Phone != nil {
		columns["phone"] = *upd.Phone
	}
	if upd.Gender != nil {
		columns["gender"] = *upd.Gender
	}
	if upd.DOB != nil {
		columns["dob"] = *upd.DOB
	}
	if upd.Password != nil {
		columns["password"] = *upd.Password
	}
	columns["updated_at"] = time.Now()

	updated, err := r.dao.Update(ctx, id, columns)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) UpdateFCMToken(ctx context.Context, id, token string) error {
	if _, err := r.dao.Update(ctx, id, map[string]any{"fcm_token": token}); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *UserRepository) UpdateProfileURL(ctx context.Context, id, url string) (domain.User, error) {
	updated, err := r.dao.Update(ctx, id, map[string]any{"profile_url": url})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	user := domain.User{
		UUID:       u.UUID,
		Email:      u.Email,
		Password:   u.Password,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		DOB:        u.DOB,
		Gender:     u.Gender,
		Phone:      u.Phone,
		ProfileURL: u.ProfileURL,
		Level:      u.Level,
		Points:     u.Points,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
	if u.FCMToken != nil {
		user.FCMToken = *u.FCMToken
	}

	return user
}

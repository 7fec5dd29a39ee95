package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/pkg/storage"
	"github.com/danceapp/events-api/internal/repository"
)

var (
	ErrUserNotFound     = repository.ErrUserNotFound
	ErrInvalidImageType = errors.New("invalid image type, supported: jpg, jpeg, png, gif, webp")
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UserRepository interface {
	FindByUUID(ctx context.Context, id string) (domain.User, error)
	Update(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
	UpdateProfileURL(ctx context.Context, id, url string) (domain.User, error)
}

type UserService struct {
	repo  UserRepository
	files storage.FileStorage
}

func NewUserService(repo UserRepository, files storage.FileStorage) *UserService {
	return &UserService{
		repo:  repo,
		files: files,
	}
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.repo.FindByUUID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByUUID -> %w", err)
	}

	return user, nil
}

// UpdateProfile applies upd, hashing a new password before it is stored.
func (s *UserService) UpdateProfile(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	if upd.Password != nil {
		hash, err := hashPassword(*upd.Password)
		if err != nil {
			return domain.User{}, err
		}
		upd.Password = &hash
	}

	user, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateFCMToken(ctx context.Context, id, token string) error {
	if err := s.repo.UpdateFCMToken(ctx, id, token); err != nil {
		return fmt.Errorf("s.repo.UpdateFCMToken -> %w", err)
	}

	return nil
}

// UploadProfilePicture stores the image and points the user's profile_url at it.
func (s *UserService) UploadProfilePicture(ctx context.Context, id, filename string, data io.Reader) (domain.User, error) {
	ext := strings.ToLower(path.Ext(filename))
	if !imageExtensions[ext] {
		return domain.User{}, ErrInvalidImageType
	}

	name := path.Join("profiles", uuid.NewString()+ext)
	if err := s.files.Save(name, data); err != nil {
		return domain.User{}, fmt.Errorf("s.files.Save -> %w", err)
	}

	user, err := s.repo.UpdateProfileURL(ctx, id, s.files.URL(name))
	if err != nil {
		_ = s.files.Delete(name)
		return domain.User{}, fmt.Errorf("s.repo.UpdateProfileURL -> %w", err)
	}

	return user, nil
}

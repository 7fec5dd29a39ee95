package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	UUID string `gorm:"primaryKey;size:36"`

	Email    string `gorm:"uniqueIndex:uni_users_email;not null"`
	Password string `gorm:"not null"`

	FirstName  string
	LastName   string
	DOB        *time.Time `gorm:"type:date"`
	Gender     string     `gorm:"size:10"`
	Phone      string
	ProfileURL string
	Level      string `gorm:"size:10;not null;default:initial"`
	Points     int64  `gorm:"not null;default:0"`
	FCMToken   *string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	user.UUID = uuid.NewString()
	if user.Level == "" {
		user.Level = "initial"
	}

	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_users_email") {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByUUID(ctx context.Context, id string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "uuid = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// Update writes the given columns of the user and returns the stored row.
func (d *UserDAO) Update(ctx context.Context, id string, columns map[string]any) (User, error) {
	result := d.db.WithContext(ctx).Model(&User{}).Where("uuid = ?", id).Updates(columns)
	if result.Error != nil {
		return User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return User{}, ErrUserNotFound
	}

	return d.FindByUUID(ctx, id)
}

// isUniqueViolation reports whether err is a Postgres unique violation,
// optionally restricted to the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return errors.Is(err, gorm.ErrDuplicatedKey)
	}

	return constraint == "" || pgErr.ConstraintName == constraint
}

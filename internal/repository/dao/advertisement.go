package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Advertisement struct {
	UUID        string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"not null"`
	Category    string `gorm:"index"`
	Description string
	ImageURL    string
	LinkURL     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type AdvertisementDAO struct {
	db *gorm.DB
}

func NewAdvertisementDAO(db *gorm.DB) *AdvertisementDAO {
	return &AdvertisementDAO{
		db: db,
	}
}

func (d *AdvertisementDAO) Insert(ctx context.Context, ad Advertisement) (Advertisement, error) {
	ad.UUID = uuid.NewString()

	if err := d.db.WithContext(ctx).Create(&ad).Error; err != nil {
		return Advertisement{}, err
	}

	return ad, nil
}

func (d *AdvertisementDAO) FindAll(ctx context.Context, preds []Predicate) ([]Advertisement, error) {
	tx, err := applyPredicates(d.db.WithContext(ctx).Model(&Advertisement{}), "advertisements", preds)
	if err != nil {
		return nil, err
	}

	var ads []Advertisement
	if err := tx.Order("advertisements.created_at DESC").Find(&ads).Error; err != nil {
		return nil, err
	}

	return ads, nil
}

// repository/dinner_group_repository.go
package repository

import (
	"errors"

	"github.com/devneill/dinnernotonyourown-10/entity"
	"gorm.io/gorm"
)

type DinnerGroupRepository struct {
	DB *gorm.DB
}

func NewDinnerGroupRepository(db *gorm.DB) *DinnerGroupRepository {
	return &DinnerGroupRepository{DB: db}
}

// method ที่รับ tx ใช้ใน transaction ของ service

// หา attendee ของ user — ไม่เจอคืน (nil, nil)
func (r *DinnerGroupRepository) FindAttendeeByUserID(tx *gorm.DB, userID uint) (*entity.Attendee, error) {
	var att entity.Attendee
	err := tx.Where("user_id = ?", userID).First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *DinnerGroupRepository) CreateGroup(tx *gorm.DB, group *entity.DinnerGroup) error {
	return tx.Create(group).Error
}

func (r *DinnerGroupRepository) CountAttendees(tx *gorm.DB, groupID uint) (int64, error) {
	var count int64
	err := tx.Model(&entity.Attendee{}).Where("dinner_group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (r *DinnerGroupRepository) DeleteAttendee(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Attendee{}, id).Error
}

func (r *DinnerGroupRepository) DeleteGroup(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.DinnerGroup{}, id).Error
}

// ดึงกลุ่มทั้งหมดของร้าน พร้อมสมาชิก
func (r *DinnerGroupRepository) FindByRestaurantID(restaurantID string) ([]entity.DinnerGroup, error) {
	var groups []entity.DinnerGroup
	err := r.DB.
		Preload("Attendees").
		Where("restaurant_id = ?", restaurantID).
		Find(&groups).Error
	return groups, err
}

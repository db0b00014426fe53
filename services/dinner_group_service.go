// services/dinner_group_service.go
package services

import (
	"errors"

	"github.com/devneill/dinnernotonyourown-10/entity"
	"github.com/devneill/dinnernotonyourown-10/repository"

	"gorm.io/gorm"
)

// DinnerGroupService คุม invariant "หนึ่ง user หนึ่งกลุ่ม" ใน transaction
type DinnerGroupService struct {
	DB   *gorm.DB
	Repo *repository.DinnerGroupRepository
}

func NewDinnerGroupService(db *gorm.DB, repo *repository.DinnerGroupRepository) *DinnerGroupService {
	return &DinnerGroupService{DB: db, Repo: repo}
}

// Join สร้างกลุ่มใหม่ให้ร้านนั้นพร้อมตัวเองเป็นสมาชิกคนแรก
// เช็คสมาชิกเดิมใน tx เป็น fast path — ตัวตัดสินจริงคือ unique index บน user_id
func (s *DinnerGroupService) Join(userID uint, restaurantID string, notes string) (*entity.DinnerGroup, error) {
	var out entity.DinnerGroup
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.Repo.FindAttendeeByUserID(tx, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyMember
		}

		group := entity.DinnerGroup{
			RestaurantID: restaurantID,
			Notes:        notes,
			Attendees:    []entity.Attendee{{UserID: userID}},
		}
		if err := s.Repo.CreateGroup(tx, &group); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// join พร้อมกันสอง request — index ให้ผ่านแค่คนเดียว
				return ErrAlreadyMember
			}
			return err
		}

		out = group
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Leave ลบ attendee ของ user — ถ้าเป็นคนสุดท้าย กลุ่มต้องหายใน tx เดียวกัน
func (s *DinnerGroupService) Leave(userID uint) (*entity.Attendee, error) {
	var out entity.Attendee
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		att, err := s.Repo.FindAttendeeByUserID(tx, userID)
		if err != nil {
			return err
		}
		if att == nil {
			return ErrNotMember
		}

		count, err := s.Repo.CountAttendees(tx, att.DinnerGroupID)
		if err != nil {
			return err
		}
		if err := s.Repo.DeleteAttendee(tx, att.ID); err != nil {
			return err
		}
		if count == 1 {
			// คนสุดท้ายออก — กลุ่มว่างห้ามค้างอยู่ใน DB
			if err := s.Repo.DeleteGroup(tx, att.DinnerGroupID); err != nil {
				return err
			}
		}

		out = *att
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ดึงกลุ่มทั้งหมดของร้าน
func (s *DinnerGroupService) ListByRestaurant(restaurantID string) ([]entity.DinnerGroup, error) {
	return s.Repo.FindByRestaurantID(restaurantID)
}

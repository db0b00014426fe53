package entity

import (
	"time"
)

// Attendee หนึ่ง user อยู่ได้กลุ่มเดียวทั้งระบบ — unique index บน user_id
// คือตัวตัดสินสุดท้ายเวลา join ชนกัน (hard delete, ไม่งั้น index ค้าง)
type Attendee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	DinnerGroupID uint        `gorm:"not null;index" json:"dinnerGroupId"`
	DinnerGroup   DinnerGroup `json:"-"`
}

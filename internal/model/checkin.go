package model

import "time"

const (
	SlotMorning = "morning"
	SlotEvening = "evening"
)

// ValidSlot 判断打卡类型是否合法
func ValidSlot(slot string) bool {
	return slot == SlotMorning || slot == SlotEvening
}

// CheckIn 一条打卡记录，按 (name, team, type, date) 全表唯一
// JSON 字段与对外接口一一对应
type CheckIn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex:uk_checkin,priority:1" json:"name"`
	Team      string    `gorm:"type:varchar(64);not null;uniqueIndex:uk_checkin,priority:2" json:"team"`
	Type      string    `gorm:"type:varchar(16);not null;uniqueIndex:uk_checkin,priority:3" json:"type"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:uk_checkin,priority:4" json:"date"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

func (CheckIn) TableName() string {
	return "checkin"
}

package models

import (
	"database/sql/driver"
	"encoding/json"
)

// UintArray 无符号整型数组，用于存储口味/配料ID列表
type UintArray []uint

// Value 实现 driver.Valuer 接口
func (a UintArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan 实现 sql.Scanner 接口
func (a *UintArray) Scan(value interface{}) error {
	if value == nil {
		*a = UintArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// FlavourSelection 单个口味的球数选择
type FlavourSelection struct {
	FlavourID uint `json:"flavour_id"`
	Scoops    int  `json:"scoops"`
}

// FlavourSelections 口味选择列表（JSON 列）
type FlavourSelections []FlavourSelection

// Value 实现 driver.Valuer 接口
func (s FlavourSelections) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *FlavourSelections) Scan(value interface{}) error {
	if value == nil {
		*s = FlavourSelections{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

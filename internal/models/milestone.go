package models

import "github.com/Renal37/farm-to-home/internal/utils"

const DefaultMilestoneIcon = "fa-trophy"

type Milestone struct {
	ID                 int64  `json:"id"`
	Level              int    `json:"level"`
	DiscountPercentage int    `json:"discount_percentage"`
	Description        string `json:"description"`
	Icon               string `json:"icon"`
}

type NewMilestone struct {
	Level              *int    `json:"level"`
	DiscountPercentage *int    `json:"discount_percentage"`
	Description        *string `json:"description"`
	Icon               *string `json:"icon"`
}

// Coupon описывает достигнутую пользователем веху вместе с купоном.
type Coupon struct {
	Code               string            `json:"coupon_code"`
	Level              int               `json:"level"`
	DiscountPercentage int               `json:"discount_percentage"`
	Description        string            `json:"description"`
	Icon               string            `json:"icon"`
	IsUsed             bool              `json:"is_used"`
	Expired            bool              `json:"expired"`
	AchievedAt         utils.RFC3339Date `json:"achieved_at"`
	ExpiresAt          utils.RFC3339Date `json:"expires_at"`
}

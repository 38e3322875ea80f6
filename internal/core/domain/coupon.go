package domain

import "time"

// Coupon is a percentage discount code with a usage budget and expiry.
type Coupon struct {
	ID         string    `json:"_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Discount   int       `json:"discount"`
	UsageLimit int       `json:"usageLimit"`
	UsageCount int       `json:"usageCount"`
	ExpiryDate time.Time `json:"expiryDate"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// Expired reports whether the coupon's expiry date has passed.
func (c Coupon) Expired(now time.Time) bool {
	return c.ExpiryDate.Before(now)
}

// Exhausted reports whether the usage budget is spent.
func (c Coupon) Exhausted() bool {
	return c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit
}

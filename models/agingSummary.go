package models

import "github.com/shopspring/decimal"

type AgingBucketTotal struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// AgingSummary buckets the projected (active + visibly snoozed) AR alert set.
// NinetyPlus is always Ninety + OneTwentyPlus, both count and amount.
type AgingSummary struct {
	Current       AgingBucketTotal `json:"current"`
	Thirty        AgingBucketTotal `json:"thirty"`
	Sixty         AgingBucketTotal `json:"sixty"`
	Ninety        AgingBucketTotal `json:"ninety"`
	OneTwentyPlus AgingBucketTotal `json:"one_twenty_plus"`
	Total         AgingBucketTotal `json:"total"`
	NinetyPlus    AgingBucketTotal `json:"ninety_plus"`
}

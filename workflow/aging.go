package workflow

import (
	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
)

// SummarizeAging buckets an already-projected AR alert set. Callers must
// filter to the visible set first; handled/dismissed alerts never reach a
// bucket.
func SummarizeAging(alerts []models.ARAlert) models.AgingSummary {
	zero := models.AgingBucketTotal{Amount: decimal.Zero}
	summary := models.AgingSummary{
		Current: zero, Thirty: zero, Sixty: zero, Ninety: zero,
		OneTwentyPlus: zero, Total: zero, NinetyPlus: zero,
	}

	add := func(bucket *models.AgingBucketTotal, amount decimal.Decimal) {
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(amount)
	}

	for _, alert := range alerts {
		add(&summary.Total, alert.OverdueAmount)
		switch alert.AgingBucket {
		case 0:
			add(&summary.Current, alert.OverdueAmount)
		case 30:
			add(&summary.Thirty, alert.OverdueAmount)
		case 60:
			add(&summary.Sixty, alert.OverdueAmount)
		case 90:
			add(&summary.Ninety, alert.OverdueAmount)
		default:
			add(&summary.OneTwentyPlus, alert.OverdueAmount)
		}
	}

	summary.NinetyPlus = models.AgingBucketTotal{
		Count:  summary.Ninety.Count + summary.OneTwentyPlus.Count,
		Amount: summary.Ninety.Amount.Add(summary.OneTwentyPlus.Amount),
	}
	return summary
}

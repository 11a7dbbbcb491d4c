package workflow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/alerts_backend/models"
)

func TestSummarizeAging_BucketTotals(t *testing.T) {
	alerts := []models.ARAlert{
		{ID: "ar-1", AgingBucket: 30, OverdueAmount: decimal.NewFromInt(1000)},
		{ID: "ar-2", AgingBucket: 60, OverdueAmount: decimal.NewFromInt(2000)},
		{ID: "ar-3", AgingBucket: 90, OverdueAmount: decimal.NewFromInt(3000)},
		{ID: "ar-4", AgingBucket: 90, OverdueAmount: decimal.NewFromInt(4000)},
		{ID: "ar-5", AgingBucket: 120, OverdueAmount: decimal.NewFromInt(5000)},
	}

	summary := SummarizeAging(alerts)
	if summary.Total.Count != 5 || !summary.Total.Amount.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("total expected 5/$15000, got %d/%s", summary.Total.Count, summary.Total.Amount)
	}
	if summary.Current.Count != 0 {
		t.Fatalf("nothing in the current bucket, got %d", summary.Current.Count)
	}
	if summary.Ninety.Count != 2 || !summary.Ninety.Amount.Equal(decimal.NewFromInt(7000)) {
		t.Fatalf("90 bucket expected 2/$7000, got %d/%s", summary.Ninety.Count, summary.Ninety.Amount)
	}
	if summary.NinetyPlus.Count != 3 || !summary.NinetyPlus.Amount.Equal(decimal.NewFromInt(12000)) {
		t.Fatalf("90+ expected 3/$12000, got %d/%s", summary.NinetyPlus.Count, summary.NinetyPlus.Amount)
	}
}

func TestSummarizeAging_NinetyPlusInvariant(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	summary := SummarizeAging(GenerateARAlerts(now, nil))

	if summary.NinetyPlus.Count != summary.Ninety.Count+summary.OneTwentyPlus.Count {
		t.Fatalf("90+ count %d != %d + %d",
			summary.NinetyPlus.Count, summary.Ninety.Count, summary.OneTwentyPlus.Count)
	}
	expected := summary.Ninety.Amount.Add(summary.OneTwentyPlus.Amount)
	if !summary.NinetyPlus.Amount.Equal(expected) {
		t.Fatalf("90+ amount %s != %s", summary.NinetyPlus.Amount, expected)
	}

	bucketSum := summary.Current.Amount.
		Add(summary.Thirty.Amount).
		Add(summary.Sixty.Amount).
		Add(summary.Ninety.Amount).
		Add(summary.OneTwentyPlus.Amount)
	if !bucketSum.Equal(summary.Total.Amount) {
		t.Fatalf("buckets %s do not sum to total %s", bucketSum, summary.Total.Amount)
	}
}

func TestSummarizeAging_Empty(t *testing.T) {
	summary := SummarizeAging(nil)
	if summary.Total.Count != 0 || !summary.Total.Amount.Equal(decimal.Zero) {
		t.Fatalf("empty set should produce zero totals")
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"bitbucket.org/mmdatafocus/alerts_backend/config"
	"bitbucket.org/mmdatafocus/alerts_backend/drafts"
	"bitbucket.org/mmdatafocus/alerts_backend/provider"
	"bitbucket.org/mmdatafocus/alerts_backend/store"
)

const sheetName = "AR Aging"

func main() {
	out := flag.String("out", "ar_aging.xlsx", "Output xlsx path")
	asOf := flag.String("as-of", "", "Report date YYYY-MM-DD (default: today)")
	backend := flag.String("store", "redis", "Store backend: redis or memory")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall operation timeout")
	flag.Parse()

	now := time.Now().UTC()
	if *asOf != "" {
		parsed, err := time.Parse("2006-01-02", *asOf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --as-of: %v\n", err)
			os.Exit(1)
		}
		now = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var s store.Store
	switch *backend {
	case "memory":
		s = store.NewMemoryStore()
	case "redis":
		config.ConnectRedisWithRetry(ctx)
		rdb := config.GetRedisDB()
		if rdb == nil {
			fmt.Fprintln(os.Stderr, "redis not initialized")
			os.Exit(1)
		}
		s = store.NewRedisStore(rdb, config.GetRedisLock())
	default:
		fmt.Fprintf(os.Stderr, "unknown --store %q\n", *backend)
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	p := provider.NewLocalProvider(s, drafts.NewTemplateRenderer(), logger)

	summary, err := p.GetARAgingSummary(ctx, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aging summary failed: %v\n", err)
		os.Exit(1)
	}
	alerts, err := p.GetARAlerts(ctx, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "alert fetch failed: %v\n", err)
		os.Exit(1)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	f.SetCellValue(sheetName, "A1", config.FirmName())
	f.SetCellValue(sheetName, "A2", "AR Aging Summary as of "+now.Format("2006-01-02"))

	headerRow := 4
	setRow(f, headerRow, "Bucket", "Alerts", "Amount")
	buckets := []struct {
		label string
		total decimal.Decimal
		count int
	}{
		{"Current (0-29)", summary.Current.Amount, summary.Current.Count},
		{"30-59 days", summary.Thirty.Amount, summary.Thirty.Count},
		{"60-89 days", summary.Sixty.Amount, summary.Sixty.Count},
		{"90-119 days", summary.Ninety.Amount, summary.Ninety.Count},
		{"120+ days", summary.OneTwentyPlus.Amount, summary.OneTwentyPlus.Count},
	}
	row := headerRow + 1
	for _, b := range buckets {
		setRow(f, row, b.label, b.count, amountCell(b.total))
		row++
	}
	setRow(f, row, "90+ days", summary.NinetyPlus.Count, amountCell(summary.NinetyPlus.Amount))
	row++
	setRow(f, row, "Total", summary.Total.Count, amountCell(summary.Total.Amount))

	row += 2
	setRow(f, row, "Client", "Partner", "Days Overdue", "Bucket", "Amount", "Status")
	for _, a := range alerts {
		row++
		setRow(f, row, a.ClientName, a.PartnerName, a.DaysOverdue, a.AgingBucket, amountCell(a.OverdueAmount), string(a.ClientStatus))
	}

	if err := f.SaveAs(*out); err != nil {
		fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d alerts)\n", *out, len(alerts))
}

func setRow(f *excelize.File, row int, values ...interface{}) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheetName, cell, v)
	}
}

// amountCell converts a decimal into a float cell value. The report is for
// partner review, not ledger reconciliation, so float precision is acceptable.
func amountCell(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

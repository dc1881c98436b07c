package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-cur-etl-go/internal/adapter/driven/export"
	"github.com/diillson/aws-cur-etl-go/internal/adapter/driven/report"
	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
)

const sampleCUR = `ServiceName , Region,Cost,UsageQuantity,UsageDate,LinkedAccount
AmazonS3,us-east-1,10,5,2024-01-01,111
AmazonS3,us-east-1,20,5,2024-01-01,111
AmazonEC2,us-east-1,12.75,24,2024-01-01,111
AmazonEC2,us-west-2,N/A,24,2024-01-02,222
AWSLambda,us-east-1,0.0000166667,1000000,not-a-date,111
,us-east-1,99,1,2024-01-02,111
AmazonRDS,,99,1,2024-01-02,111
`

func TestWriteThenReloadReproducesAggregates(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sample_cur.csv")
	output := filepath.Join(dir, "out", "cleaned_cost_data.csv")
	require.NoError(t, os.WriteFile(input, []byte(sampleCUR), 0644))

	ctx := context.Background()
	loader := report.NewReportRepository()
	writer := export.NewExportRepository()

	table, err := loader.LoadReport(ctx, input)
	require.NoError(t, err)
	records, stats, err := CleanRecords(table)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Dropped)

	aggs := AggregateCosts(records)
	require.Len(t, aggs, 4)

	_, err = writer.WriteAggregates(aggs, output)
	require.NoError(t, err)

	reloaded, err := loader.LoadReport(ctx, output)
	require.NoError(t, err)
	assert.Equal(t, entity.AggregateColumns, reloaded.Header)
	require.Len(t, reloaded.Records, len(aggs))

	for i, agg := range aggs {
		row := reloaded.Records[i]
		assert.Equal(t, entity.FormatUsageDate(agg.UsageDate, entity.UsageDateLayout), row[0])
		assert.Equal(t, agg.ServiceName, row[1])
		assert.Equal(t, agg.Region, row[2])

		cost, err := entity.ParseAmount(row[3])
		require.NoError(t, err)
		assert.Equal(t, 0, agg.TotalCost.Cmp(cost))

		usage, err := entity.ParseAmount(row[4])
		require.NoError(t, err)
		assert.Equal(t, 0, agg.TotalUsage.Cmp(usage))
	}

	// A linha com data inválida fica por último, com a data vazia
	last := reloaded.Records[len(reloaded.Records)-1]
	assert.Equal(t, []string{"", "AWSLambda", "us-east-1", "0.0000166667", "1000000"}, last)
}

func TestWriteThenReloadKeepsSubSecondDates(t *testing.T) {
	output := filepath.Join(t.TempDir(), "cleaned_cost_data.csv")
	first := time.Date(2024, 1, 1, 12, 0, 0, 100000000, time.UTC)
	second := time.Date(2024, 1, 1, 12, 0, 0, 200000000, time.UTC)

	aggs := AggregateCosts([]entity.CostRecord{
		record(t, &second, "AmazonS3", "us-east-1", "2", "1"),
		record(t, &first, "AmazonS3", "us-east-1", "1", "1"),
	})
	require.Len(t, aggs, 2)

	_, err := export.NewExportRepository().WriteAggregates(aggs, output)
	require.NoError(t, err)

	reloaded, err := report.NewReportRepository().LoadReport(context.Background(), output)
	require.NoError(t, err)
	require.Len(t, reloaded.Records, 2)

	assert.Equal(t, "2024-01-01 12:00:00.1", reloaded.Records[0][0])
	assert.Equal(t, "2024-01-01 12:00:00.2", reloaded.Records[1][0])
	for i, agg := range aggs {
		parsed := parseUsageDate(reloaded.Records[i][0])
		require.NotNil(t, parsed)
		assert.True(t, agg.UsageDate.Equal(*parsed))
	}
}

package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
)

func amount(t *testing.T, s string) entity.Amount {
	t.Helper()
	a, err := entity.ParseAmount(s)
	require.NoError(t, err)
	return a
}

func sampleAggregates(t *testing.T) []entity.CostAggregate {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []entity.CostAggregate{
		{UsageDate: &jan1, ServiceName: "AmazonS3", Region: "us-east-1", TotalCost: amount(t, "30"), TotalUsage: amount(t, "10")},
		{UsageDate: &jan1, ServiceName: "Amazon Elastic Compute Cloud, Compute", Region: "us-west-2", TotalCost: amount(t, "12.75"), TotalUsage: amount(t, "24")},
		{UsageDate: nil, ServiceName: "AWSLambda", Region: "us-east-1", TotalCost: amount(t, "0.5"), TotalUsage: amount(t, "1000")},
	}
}

func sampleInsight(t *testing.T) entity.InsightReport {
	aggs := sampleAggregates(t)
	return entity.InsightReport{
		GeneratedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		SourcePath:     "data/sample_cur.csv",
		OutputPath:     "data/cleaned_cost_data.csv",
		Stats:          entity.CleanStats{Loaded: 10, Kept: 8, Dropped: 2},
		AggregateCount: len(aggs),
		TopServices: []entity.ServiceCost{
			{ServiceName: "AmazonS3", Cost: amount(t, "30")},
			{ServiceName: "AWSLambda", Cost: amount(t, "0.5")},
		},
		Spikes: entity.SpikeReport{MeanCost: 14.41, Factor: 3, Threshold: 43.25, Spikes: aggs[:1]},
	}
}

func TestWriteAggregates(t *testing.T) {
	repo := NewExportRepository()

	t.Run("writes header and rows without an index column", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "data", "cleaned_cost_data.csv")

		path, err := repo.WriteAggregates(sampleAggregates(t), output)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(path))

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"usagedate,servicename,region,total_cost,total_usage",
			"2024-01-01,AmazonS3,us-east-1,30,10",
			`2024-01-01,"Amazon Elastic Compute Cloud, Compute",us-west-2,12.75,24`,
			",AWSLambda,us-east-1,0.5,1000",
			"",
		}, "\n"), string(content))
	})

	t.Run("overwrites an existing file", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "cleaned_cost_data.csv")
		require.NoError(t, os.WriteFile(output, []byte("stale content that is longer than the new file\n"), 0644))

		_, err := repo.WriteAggregates(nil, output)
		require.NoError(t, err)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "usagedate,servicename,region,total_cost,total_usage\n", string(content))
	})

	t.Run("includes time of day when present", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "cleaned_cost_data.csv")
		hour := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)

		_, err := repo.WriteAggregates([]entity.CostAggregate{
			{UsageDate: &hour, ServiceName: "AmazonS3", Region: "us-east-1", TotalCost: amount(t, "1"), TotalUsage: amount(t, "1")},
		}, output)
		require.NoError(t, err)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(content), "2024-01-01 13:00:00,AmazonS3")
	})

	t.Run("fails when the output path is a directory", func(t *testing.T) {
		_, err := repo.WriteAggregates(nil, t.TempDir())
		assert.Error(t, err)
	})
}

func TestExportInsight(t *testing.T) {
	repo := NewExportRepository()
	report := sampleInsight(t)

	t.Run("json", func(t *testing.T) {
		dir := t.TempDir()

		path, err := repo.ExportInsightToJSON(report, "insights", dir)
		require.NoError(t, err)
		assert.Equal(t, ".json", filepath.Ext(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, float64(3), decoded["aggregate_count"])
		top := decoded["top_services"].([]interface{})
		require.Len(t, top, 2)
		assert.Equal(t, float64(30), top[0].(map[string]interface{})["cost"])
	})

	t.Run("csv", func(t *testing.T) {
		dir := t.TempDir()

		path, err := repo.ExportInsightToCSV(report, "insights", dir)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Section,Rank,Usage Date,Service,Region,Cost", lines[0])
		assert.Equal(t, "Top Services,1,,AmazonS3,,30", lines[1])
		assert.Equal(t, "Cost Spikes,1,2024-01-01,AmazonS3,us-east-1,30", lines[3])
	})

	t.Run("pdf", func(t *testing.T) {
		dir := t.TempDir()

		path, err := repo.ExportInsightToPDF(report, "insights", dir)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	})

	t.Run("creates the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "reports")

		path, err := repo.ExportInsightToJSON(report, "insights", dir)
		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(path))
	})
}

// failingWriter aceita limit bytes e falha a partir daí.
type failingWriter struct {
	limit int
}

var errDiskFull = errors.New("no space left on device")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errDiskFull
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestCSVWriteErrorsAreReported(t *testing.T) {
	t.Run("insight report", func(t *testing.T) {
		err := writeInsightCSV(&failingWriter{limit: 10}, sampleInsight(t))
		assert.ErrorIs(t, err, errDiskFull)
	})

	t.Run("aggregates", func(t *testing.T) {
		err := writeAggregatesCSV(&failingWriter{limit: 10}, sampleAggregates(t))
		assert.ErrorIs(t, err, errDiskFull)
	})
}

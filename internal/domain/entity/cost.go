package entity

import "time"

// Nomes de colunas do CUR após a normalização do cabeçalho.
const (
	ColumnServiceName   = "servicename"
	ColumnRegion        = "region"
	ColumnCost          = "cost"
	ColumnUsageQuantity = "usagequantity"
	ColumnUsageDate     = "usagedate"
)

// Colunas do dataset agregado, na ordem em que são gravadas.
var AggregateColumns = []string{ColumnUsageDate, ColumnServiceName, ColumnRegion, "total_cost", "total_usage"}

// CostRecord represents one CUR line after cleaning.
// ServiceName, Region and Cost are always present; UsageDate is nil when it could not be parsed.
type CostRecord struct {
	ServiceName   string
	Region        string
	Cost          Amount
	UsageQuantity Amount
	UsageDate     *time.Time
}

// CostAggregate is the summed cost and usage for one (date, service, region) triple.
type CostAggregate struct {
	UsageDate   *time.Time `json:"usage_date"`
	ServiceName string     `json:"service_name"`
	Region      string     `json:"region"`
	TotalCost   Amount     `json:"total_cost"`
	TotalUsage  Amount     `json:"total_usage"`
}

// ServiceCost represents the total cost of a single AWS service across all aggregates.
type ServiceCost struct {
	ServiceName string `json:"service_name"`
	Cost        Amount `json:"cost"`
}

// SpikeReport contém as linhas agregadas cujo custo excede Factor vezes a média.
type SpikeReport struct {
	MeanCost  float64         `json:"mean_cost"`
	Factor    float64         `json:"factor"`
	Threshold float64         `json:"threshold"`
	Spikes    []CostAggregate `json:"spikes"`
}

// Layouts de saída da coluna usagedate.
const (
	UsageDateLayout     = "2006-01-02"
	UsageDateTimeLayout = "2006-01-02 15:04:05"
	// frações de segundo só aparecem quando diferentes de zero
	UsageDateNanoLayout = "2006-01-02 15:04:05.999999999"
)

// FormatUsageDate formata a data de uso com o layout dado. Datas nulas viram string vazia.
func FormatUsageDate(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.Format(layout)
}

// UsageDateLayoutFor escolhe o menor layout que preserva todas as datas agregadas:
// só a data, data e horário, ou data e horário com frações de segundo.
func UsageDateLayoutFor(aggs []CostAggregate) string {
	layout := UsageDateLayout
	for _, agg := range aggs {
		if agg.UsageDate == nil {
			continue
		}
		if agg.UsageDate.Nanosecond() != 0 {
			return UsageDateNanoLayout
		}
		h, m, sec := agg.UsageDate.Clock()
		if h != 0 || m != 0 || sec != 0 {
			layout = UsageDateTimeLayout
		}
	}
	return layout
}

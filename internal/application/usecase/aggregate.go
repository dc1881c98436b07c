package usecase

import (
	"sort"

	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
)

// aggregateKey identifica um grupo (data, serviço, região). Datas nulas compartilham o mesmo grupo.
// A data entra como segundos + nanos para valer em qualquer ano, inclusive fora do intervalo de UnixNano.
type aggregateKey struct {
	hasDate bool
	sec     int64
	nsec    int
	service string
	region  string
}

// AggregateCosts soma custo e uso por (usagedate, servicename, region).
// O resultado é ordenado por data (nulas por último), serviço e região.
func AggregateCosts(records []entity.CostRecord) []entity.CostAggregate {
	sums := make(map[aggregateKey]*entity.CostAggregate)
	order := make([]aggregateKey, 0)

	for _, rec := range records {
		key := aggregateKey{service: rec.ServiceName, region: rec.Region}
		if rec.UsageDate != nil {
			key.hasDate = true
			key.sec = rec.UsageDate.Unix()
			key.nsec = rec.UsageDate.Nanosecond()
		}

		agg, exists := sums[key]
		if !exists {
			agg = &entity.CostAggregate{
				UsageDate:   rec.UsageDate,
				ServiceName: rec.ServiceName,
				Region:      rec.Region,
			}
			sums[key] = agg
			order = append(order, key)
		}

		agg.TotalCost = agg.TotalCost.Add(rec.Cost)
		agg.TotalUsage = agg.TotalUsage.Add(rec.UsageQuantity)
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.hasDate != b.hasDate {
			return a.hasDate
		}
		if a.sec != b.sec {
			return a.sec < b.sec
		}
		if a.nsec != b.nsec {
			return a.nsec < b.nsec
		}
		if a.service != b.service {
			return a.service < b.service
		}
		return a.region < b.region
	})

	result := make([]entity.CostAggregate, 0, len(order))
	for _, key := range order {
		result = append(result, *sums[key])
	}
	return result
}

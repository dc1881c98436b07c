package usecase

import (
	"sort"

	"github.com/diillson/aws-cur-etl-go/internal/domain/entity"
)

// RankServices soma o custo total por serviço e retorna os n maiores em ordem decrescente.
// Empates mantêm a ordem em que o serviço apareceu nos agregados. n <= 0 retorna todos.
func RankServices(aggs []entity.CostAggregate, n int) []entity.ServiceCost {
	totals := make(map[string]int)
	ranking := []entity.ServiceCost{}

	for _, agg := range aggs {
		i, exists := totals[agg.ServiceName]
		if !exists {
			i = len(ranking)
			totals[agg.ServiceName] = i
			ranking = append(ranking, entity.ServiceCost{ServiceName: agg.ServiceName})
		}
		ranking[i].Cost = ranking[i].Cost.Add(agg.TotalCost)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Cost.Cmp(ranking[j].Cost) > 0
	})

	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// DetectSpikes marca os agregados com custo acima de factor vezes o custo médio.
// Sem agregados a média é definida como zero e nenhum pico é retornado.
func DetectSpikes(aggs []entity.CostAggregate, factor float64) entity.SpikeReport {
	report := entity.SpikeReport{
		Factor: factor,
		Spikes: []entity.CostAggregate{},
	}
	if len(aggs) == 0 {
		return report
	}

	var total entity.Amount
	for _, agg := range aggs {
		total = total.Add(agg.TotalCost)
	}

	// média e limiar em float64 servem apenas para exibição
	report.MeanCost = total.Float64() / float64(len(aggs))
	report.Threshold = factor * report.MeanCost

	for _, agg := range aggs {
		if agg.TotalCost.ExceedsMeanBy(total, len(aggs), factor) {
			report.Spikes = append(report.Spikes, agg)
		}
	}
	return report
}

package spin

import (
	"math/rand"

	"spinner_backend/internal/model"
	servModel "spinner_backend/internal/service/spin/model"
)

// DrawOutcomes - разыгрывает count независимых исходов для режима.
// Каждый исход равновероятен в пространстве режима
func DrawOutcomes(rng *rand.Rand, variant model.Variant, count int) []model.Outcome {
	params := servModel.Variants[variant]

	outcomes := make([]model.Outcome, 0, count)
	for i := 0; i < count; i++ {
		value := rng.Intn(params.SpaceSize) + 1
		_, win := params.WinningValues[value]
		outcomes = append(outcomes, model.Outcome{Value: value, Win: win})
	}
	return outcomes
}

package spin

import (
	"math/rand"
	"testing"

	"spinner_backend/internal/model"
	servModel "spinner_backend/internal/service/spin/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawOutcomesCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, count := range []int{1, 2, 3} {
		outcomes := DrawOutcomes(rng, model.VariantStandard, count)
		assert.Len(t, outcomes, count)
	}
}

func TestDrawOutcomesWithinSpace(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for variant, params := range servModel.Variants {
		outcomes := DrawOutcomes(rng, variant, 200)
		for _, o := range outcomes {
			require.GreaterOrEqual(t, o.Value, 1)
			require.LessOrEqual(t, o.Value, params.SpaceSize)
		}
	}
}

func TestDrawOutcomesWinFlagMatchesTable(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for variant, params := range servModel.Variants {
		outcomes := DrawOutcomes(rng, variant, 500)
		for _, o := range outcomes {
			_, want := params.WinningValues[o.Value]
			require.Equal(t, want, o.Win, "variant %s value %d", variant, o.Value)
		}
	}
}

func TestDrawOutcomesDeterministic(t *testing.T) {
	first := DrawOutcomes(rand.New(rand.NewSource(42)), model.VariantDie, 3)
	second := DrawOutcomes(rand.New(rand.NewSource(42)), model.VariantDie, 3)

	assert.Equal(t, first, second)
}

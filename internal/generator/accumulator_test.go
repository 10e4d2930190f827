package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/xml-report-generator/internal/types"
)

func TestAccumulator_SumsBoundFields(t *testing.T) {
	acc := NewAccumulator()

	acc.Observe("SHCDN490", "100")
	acc.Observe("SHCDN490", "250")
	acc.Observe("SHCCN456", "7")

	assert.Equal(t, int64(350), acc.Total(types.TargetScheduleTwoFairValue))
	assert.Equal(t, int64(7), acc.Total(types.TargetScheduleThree456))
}

func TestAccumulator_IgnoresUnboundFields(t *testing.T) {
	acc := NewAccumulator()

	acc.Observe("SHCDN461", "999")
	acc.Observe("SHCA9017", "999")

	for _, target := range []types.SummaryTarget{
		types.TargetScheduleTwoFairValue,
		types.TargetScheduleThree456,
		types.TargetScheduleThree457,
		types.TargetScheduleThree458,
		types.TargetScheduleThree459,
	} {
		assert.Zero(t, acc.Total(target))
	}
}

func TestAccumulator_SkipsNonIntegerValues(t *testing.T) {
	acc := NewAccumulator()

	acc.Observe("SHCDN490", "not a number")
	acc.Observe("SHCDN490", "")
	acc.Observe("SHCDN490", "12.5")
	acc.Observe("SHCDN490", "40")

	assert.Equal(t, int64(40), acc.Total(types.TargetScheduleTwoFairValue))
}

func TestAccumulator_ZeroForUntouchedTarget(t *testing.T) {
	acc := NewAccumulator()
	assert.Zero(t, acc.Total(types.TargetScheduleThree459))
}

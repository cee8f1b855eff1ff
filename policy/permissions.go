package policy

import (
	"github.com/obadiaha/safe-trade-scout-v2/model"
)

type PermissionCalc struct{}

func (pc *PermissionCalc) Calc(data *model.AggregatedData) float64 {
	score := float64(100)
	if !data.Contract.IsOpenSource {
		score -= 30
	}
	if data.Contract.CanMint {
		score -= 20
	}
	if data.Contract.CanPause {
		score -= 15
	}
	if data.Contract.CanBlacklist {
		score -= 15
	}
	if data.Contract.OwnerChangeBalance {
		score -= 25
	}
	if data.Contract.IsProxy {
		score -= 10
	}
	return clampScore(score)
}

func (pc *PermissionCalc) Name() string {
	return "permissions"
}

func (pc *PermissionCalc) Weight() float64 {
	return 0.15
}

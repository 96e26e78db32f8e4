package scenario

import (
	"github.com/shopspring/decimal"
)

type Action string

const (
	ActionDeposit  Action = "deposit"
	ActionWithdraw Action = "withdraw"
)

type Step struct {
	Action Action
	Amount decimal.Decimal
}

// Script opens one account and applies Steps to it in order.
type Script struct {
	Owner          string
	InitialBalance decimal.Decimal
	Steps          []Step
}

// DefaultScript is the demo run: two successful operations followed by a
// withdrawal the account cannot cover.
func DefaultScript() Script {
	return Script{
		Owner:          "Ziaurrehman",
		InitialBalance: decimal.NewFromInt(1000),
		Steps: []Step{
			{Action: ActionDeposit, Amount: decimal.NewFromInt(500)},
			{Action: ActionWithdraw, Amount: decimal.NewFromInt(200)},
			{Action: ActionWithdraw, Amount: decimal.NewFromInt(2000)},
		},
	}
}

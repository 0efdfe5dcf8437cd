package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID           int64
	MemberID     int64
	Description  string
	Amount       decimal.Decimal
	ProofPicture *string
	Completed    bool
	CreatedAt    time.Time
}

func (p *Payment) Validate() error {
	if p.MemberID <= 0 {
		return NewValidationError("by is required")
	}
	if !p.Amount.IsPositive() {
		return NewValidationError("amount must be greater than 0")
	}
	return ValidateMoney("amount", p.Amount)
}

// CompletionOutcome - результат административного действия "завершить платеж"
type CompletionOutcome int

const (
	CompletionDone CompletionOutcome = iota
	// CompletionAlreadyDone - платеж уже был завершен, баланс не менялся
	CompletionAlreadyDone
)

func (o CompletionOutcome) String() string {
	switch o {
	case CompletionDone:
		return "completed"
	case CompletionAlreadyDone:
		return "already completed"
	}
	return "unknown"
}

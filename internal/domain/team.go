package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Team struct {
	ID        int64
	Number    int
	StartDate time.Time
}

// DisplayName - "EST 12.0"
func (t *Team) DisplayName() string {
	return fmt.Sprintf("EST %d.0", t.Number)
}

type TeamMember struct {
	ID      int64
	Name    string
	Email   string
	TeamID  int64
	Team    *Team
	Balance decimal.Decimal
}

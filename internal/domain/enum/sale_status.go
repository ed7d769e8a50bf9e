package enum

// SaleStatus represents the lifecycle state of a sale
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "COMPLETED"
	SaleStatusRefunded  SaleStatus = "REFUNDED"
	SaleStatusVoid      SaleStatus = "VOID"
)

// IsValid checks whether the status is a known value
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusCompleted, SaleStatusRefunded, SaleStatusVoid:
		return true
	}
	return false
}

func (s SaleStatus) String() string {
	return string(s)
}

package pricing

type Kind string

const (
	KindTransfer Kind = "transfer"
	KindHourly   Kind = "hourly"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindTransfer, KindHourly:
		return true
	default:
		return false
	}
}

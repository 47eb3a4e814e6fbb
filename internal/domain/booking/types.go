package booking

import "transfer-booking/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
)

var ErrInvalidStatus = errs.New("invalid booking status")

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", errs.Wrapf(ErrInvalidStatus, "status %q", s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// CanAdvanceTo reports whether next is a forward move. Staying put is not an advance.
func (s Status) CanAdvanceTo(next Status) bool {
	return s == StatusPending && (next == StatusPaid || next == StatusCancelled)
}

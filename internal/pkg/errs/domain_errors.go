package errs

// ErrBookingNotFound is shared by the booking store implementations and the usecase layer.
var ErrBookingNotFound = New("booking not found")

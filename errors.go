package repeat

import "errors"

// Construction errors. Runtime paths never return errors: out-of-range
// indices are prevented by clamping and an empty list is a normal state.
var (
	ErrNilDataSource = errors.New("repeat: nil data source")
	ErrNilViewport   = errors.New("repeat: nil viewport")
	ErrNilContainer  = errors.New("repeat: nil container")
	ErrInvalidOption = errors.New("repeat: invalid option")
)

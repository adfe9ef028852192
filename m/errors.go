package m

import "github.com/pkg/errors"

// Error kinds returned by NewNetwork and Network.Train. Test with errors.Is.
var (
	// ErrConfiguration reports an argument of the wrong kind, such as a
	// missing layer list or a non-finite learning rate.
	ErrConfiguration = errors.New("configuration error")

	// ErrRange reports an argument of the right kind outside its allowed domain.
	ErrRange = errors.New("range error")
)

func configurationError(msg string) error {
	return errors.Wrap(ErrConfiguration, msg)
}

func rangeError(msg string) error {
	return errors.Wrap(ErrRange, msg)
}

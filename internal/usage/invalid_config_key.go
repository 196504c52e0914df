package usage

import "fmt"

// InvalidConfigKey is returned when a config key is not recognized.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("slash: unknown config key '%s'. See 'slash config list'.", key),
	}
}

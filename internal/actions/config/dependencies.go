package config

import (
	"fmt"

	"github.com/relay-tools/slashcmd/internal/config"
)

type Deps struct {
	Get     func(string) (string, bool)
	GetAll  func() (map[string]string, error)
	Set     func(string, string) error
	Unset   func(string) error
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

func DefaultDeps() Deps {
	provider := config.NewProvider()
	return Deps{
		Get:     config.Get,
		GetAll:  config.GetAll,
		Set:     provider.Set,
		Unset:   provider.Unset,
		Printf:  fmt.Printf,
		Println: fmt.Println,
	}
}

// isKnownKey reports whether key is a supported configuration key.
func isKnownKey(key string) bool {
	for _, k := range config.Keys {
		if k.Name == key {
			return true
		}
	}
	return false
}

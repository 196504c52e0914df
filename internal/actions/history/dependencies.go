// Package history holds the actions for browsing submitted commands.
package history

import (
	"fmt"
	"time"

	"github.com/relay-tools/slashcmd/internal/domain"
	"github.com/relay-tools/slashcmd/internal/format"
	"github.com/relay-tools/slashcmd/internal/history"
)

type Deps struct {
	Open       func() (domain.HistoryStore, error)
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	FormatTime func(time.Time) string
}

func DefaultDeps() Deps {
	return Deps{
		Open: func() (domain.HistoryStore, error) {
			return history.New(history.DBPath())
		},
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		FormatTime: format.DateTime,
	}
}

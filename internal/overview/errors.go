package overview

import "errors"

var (
	// ErrSuperseded возвращается Select, если за время загрузки выбор сменился
	// или контроллер закрыли. Результат такой загрузки отброшен.
	ErrSuperseded = errors.New("overview: selection superseded")

	// ErrClosed возвращается при вызове после Close
	ErrClosed = errors.New("overview: controller closed")
)

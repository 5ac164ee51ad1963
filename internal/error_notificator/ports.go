package error_notificator

import "context"

type Notificator interface {
	// Notify reports a pipeline failure to the operator. source names the failing stage.
	Notify(ctx context.Context, source string, err error, details string) error
}

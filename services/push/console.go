package pushsvc

import (
	"context"
	"sync"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/push"
)

var (
	SentTokens = make([]string, 0)
	mu         sync.Mutex
)

// consoleNotifier logs tokens instead of forwarding them; used when no endpoint is configured.
type consoleNotifier struct {
	logger core.Logger
}

var _ push.Notifier = (*consoleNotifier)(nil)

func NewConsoleNotifier(logger core.Logger) push.Notifier {
	return &consoleNotifier{logger: logger}
}

func (n consoleNotifier) Notify(_ context.Context, token string) error {
	mu.Lock()
	SentTokens = append(SentTokens, token)
	mu.Unlock()
	n.logger.Debug("push token registered", map[string]interface{}{"token": token})
	return nil
}

// New returns the endpoint notifier, or the console one when no endpoint is configured.
func New(conf core.PushConfig, logger core.Logger) push.Notifier {
	if conf.Endpoint == "" {
		return NewConsoleNotifier(logger)
	}
	return NewEndpointNotifier(conf)
}

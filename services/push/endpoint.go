package pushsvc

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/push"
)

// endpointNotifier forwards tokens with GET {endpoint}?token={token}.
type endpointNotifier struct {
	endpoint string
	client   *rest.Client
}

var _ push.Notifier = (*endpointNotifier)(nil)

func NewEndpointNotifier(conf core.PushConfig) push.Notifier {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &endpointNotifier{
		endpoint: conf.Endpoint,
		client:   &rest.Client{HTTPClient: &http.Client{Timeout: timeout}},
	}
}

func (n *endpointNotifier) Notify(ctx context.Context, token string) error {
	resp, err := n.client.SendWithContext(ctx, rest.Request{
		Method:      rest.Get,
		BaseURL:     n.endpoint,
		QueryParams: map[string]string{"token": token},
	})
	if err != nil {
		return errors.Wrap(err, "sending push token")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("push endpoint: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return nil
}

package metric

import (
	"net/http"
	"time"
)

type (
	Factory interface {
		HTTP() HTTP
		Upstream() Upstream
		Label() Label
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	// Upstream observes calls made to the shipping provider.
	Upstream interface {
		ObserveDuration(operation string, duration time.Duration)
		IncrementFailures(operation string, reason string)
	}

	Label interface {
		Purchased(provider string)
		Failed(stage string)
	}
)

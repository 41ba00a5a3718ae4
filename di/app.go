package di

import (
	outboxService "furever/internal/domains/outbox/service"
	"furever/internal/domains/schema"
	"furever/transport/http"
)

// App bundles everything a long-running process needs beyond the HTTP
// surface itself.
type App struct {
	HTTP      *http.HTTP
	Inspector schema.Inspector
	Relay     outboxService.Relay
}

// Package ports holds the interfaces that connect the layers. The
// application layer implements the service ports (TodoService,
// SessionService) that the browser handlers, the terminal UI and the CLI
// call. Outbound adapters implement the client ports (TodoAPI) that the
// application layer calls.
package ports

package sms

// StatusHandler receives an asynchronous outcome for the message with the
// given id. Each outcome fires at most once per message, with no ordering
// between the sent and delivered callbacks.
type StatusHandler func(id string, ok bool)

// Transport is the carrier-level capability that actually moves a message.
// Send returns once the message is handed over; the sent (accepted by the
// network) and delivered (reached the handset) outcomes arrive later through
// the bound handlers.
type Transport interface {
	Connect() error
	Disconnect()
	IsConnected() bool
	Send(id, recipient, body string) error
	BindSentHandler(handler StatusHandler)
	BindDeliveredHandler(handler StatusHandler)
}

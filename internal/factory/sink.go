package factory

import (
	"sync/atomic"

	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/notify"
)

// lateSink breaks the controller↔gateway construction cycle: the controller
// is built against it, then the gateway is bound once it exists.
// Deliveries before binding are dropped (nothing can be connected yet).
type lateSink struct {
	sink atomic.Pointer[notify.Sink]
}

var _ notify.Sink = (*lateSink)(nil)

func (l *lateSink) bind(s notify.Sink) {
	l.sink.Store(&s)
}

func (l *lateSink) Deliver(n notify.Notification) {
	if s := l.sink.Load(); s != nil {
		(*s).Deliver(n)
	}
}

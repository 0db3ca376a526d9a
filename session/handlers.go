package session

import "mcproto/proto"

// MapHandler receives a decoded world-update event (spec.md §4.G).
type MapHandler func(proto.MapEvent)

// ChatHandler receives a decoded chat/system message.
type ChatHandler func(proto.ChatEvent)

// StateHandler receives a state transition, including the terminal
// DISCONNECT transition and its reason.
type StateHandler func(proto.StateEvent)

// handlers holds at most one callback of each kind. Setters may be called
// while the process pump is running — spec.md §4.G only guarantees the new
// callback takes effect from the next dispatched event onward, so a plain
// mutex (rather than atomic.Value per field) is enough: the pump always
// reads the current callback just before invoking it.
type handlers struct {
	mapFn   MapHandler
	chatFn  ChatHandler
	stateFn StateHandler
}

// OnMap registers the world-update handler.
func (s *Session) OnMap(h MapHandler) {
	s.handlersMu.Lock()
	s.handlers.mapFn = h
	s.handlersMu.Unlock()
}

// OnChat registers the chat handler.
func (s *Session) OnChat(h ChatHandler) {
	s.handlersMu.Lock()
	s.handlers.chatFn = h
	s.handlersMu.Unlock()
}

// OnState registers the state-transition handler.
func (s *Session) OnState(h StateHandler) {
	s.handlersMu.Lock()
	s.handlers.stateFn = h
	s.handlersMu.Unlock()
}

func (s *Session) current() handlers {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	return s.handlers
}

package errors

import (
	"sync"
	"time"
)

// TUIHandler keeps messages for the TUI status line instead of printing them.
type TUIHandler struct {
	mu        sync.RWMutex
	messages  []Message
	onMessage func(msg Message)
	now       func() time.Time
}

// Message is one reported outcome.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

var _ ErrorHandler = (*TUIHandler)(nil)

// NewTUIHandler creates a handler that calls onMessage for every new message.
// onMessage may be nil.
func NewTUIHandler(onMessage func(msg Message)) *TUIHandler {
	return &TUIHandler{
		messages:  make([]Message, 0),
		onMessage: onMessage,
		now:       time.Now,
	}
}

func (h *TUIHandler) Error(msg string) {
	h.addMessage(msg, MessageTypeError)
}

func (h *TUIHandler) Warning(msg string) {
	h.addMessage(msg, MessageTypeWarning)
}

func (h *TUIHandler) Info(msg string) {
	h.addMessage(msg, MessageTypeInfo)
}

func (h *TUIHandler) Success(msg string) {
	h.addMessage(msg, MessageTypeSuccess)
}

func (h *TUIHandler) addMessage(msg string, msgType MessageType) {
	h.mu.Lock()
	message := Message{
		Text:      msg,
		Type:      msgType,
		Timestamp: h.now(),
	}
	h.messages = append(h.messages, message)
	callback := h.onMessage
	h.mu.Unlock()

	if callback != nil {
		callback(message)
	}
}

// GetLatest returns the most recent message, if any.
func (h *TUIHandler) GetLatest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = make([]Message, 0)
}

// GetAll returns a copy of every message in arrival order.
func (h *TUIHandler) GetAll() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}

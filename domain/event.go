package domain

import (
	"encoding/json"
	"strconv"
)

// Event names shared with the web client.
const (
	EventMessage    = "message"
	EventConnect    = "connect message"
	EventDisconnect = "disconnect message"
)

// Frame is the envelope of every websocket message, in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// MessageBroadcast mirrors a log entry to clients.
// Sequence is a decimal string: it may exceed what JSON numbers hold precisely.
type MessageBroadcast struct {
	Message  string `json:"message"`
	From     string `json:"from"`
	Sequence string `json:"sequence"`
}

type ConnectPresence struct {
	Client  string `json:"client"`
	TopicID string `json:"topicId,omitempty"`
}

type DisconnectPresence struct {
	OperatorAccount string `json:"operatorAccount"`
	Client          string `json:"client"`
}

func NewMessageBroadcast(entry LogEntry) MessageBroadcast {
	return MessageBroadcast{
		Message:  entry.Text,
		From:     entry.SenderAccount,
		Sequence: strconv.FormatUint(entry.Sequence, 10),
	}
}

// EncodeFrame marshals payload and wraps it under event.
func EncodeFrame(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Event: event, Data: data})
}

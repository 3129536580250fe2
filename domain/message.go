// Package domain contains core concepts of the relay.
// This file defines the messages flowing from clients to the consensus log and back.
// Log entries are immutable: their order and sequence are assigned by the log.
package domain

import (
	"chat-relay/errors"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// InboundMessage is what a client submits once it has paid for a message.
type InboundMessage struct {
	Text        string `json:"message" validate:"required"`
	PaymentTxID string `json:"transactionId" validate:"required"`
}

// LogPayload is the body written to the consensus log.
type LogPayload struct {
	Text string `json:"msg"`
	From string `json:"from"`
}

// LogEntry is a message delivered by the consensus log.
type LogEntry struct {
	Text          string
	SenderAccount string
	Sequence      uint64
	ConsensusAt   time.Time
}

// DecodeInbound parses the data of an inbound "message" event.
// Data is either a JSON object or a JSON string holding that object.
func DecodeInbound(data []byte) (InboundMessage, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return InboundMessage{}, fmt.Errorf("%w: %v", errors.ErrInvalidInbound, err)
		}
		trimmed = inner
	}
	var msg InboundMessage
	if err := json.Unmarshal([]byte(trimmed), &msg); err != nil {
		return InboundMessage{}, fmt.Errorf("%w: %v", errors.ErrInvalidInbound, err)
	}
	if err := validate.Struct(msg); err != nil {
		return InboundMessage{}, fmt.Errorf("%w: %v", errors.ErrInvalidInbound, err)
	}
	return msg, nil
}

// EncodePayload renders the JSON body published to the log.
func EncodePayload(payload LogPayload) ([]byte, error) {
	return json.Marshal(payload)
}

// DecodeEntry turns raw log contents into a LogEntry.
// Contents that are not a LogPayload are kept verbatim as text with no sender.
func DecodeEntry(contents []byte, sequence uint64, at time.Time) LogEntry {
	entry := LogEntry{Sequence: sequence, ConsensusAt: at}
	var payload LogPayload
	if err := json.Unmarshal(contents, &payload); err != nil {
		entry.Text = string(contents)
		return entry
	}
	entry.Text = payload.Text
	entry.SenderAccount = payload.From
	return entry
}

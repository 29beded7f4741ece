package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/matheus3301/wave/internal/bus"
	"github.com/matheus3301/wave/internal/messagelog"
)

// MessageService implements wave.v1.MessageService.
type MessageService struct {
	log *messagelog.Log
	bus *bus.Bus
}

// NewMessageService creates a new message service backed by the message log.
func NewMessageService(log *messagelog.Log, b *bus.Bus) *MessageService {
	return &MessageService{log: log, bus: b}
}

func (s *MessageService) ListMessages(_ context.Context, req *ListMessagesRequest) (*ListMessagesResponse, error) {
	msgs, err := s.log.GetLog(req.ConversationID)
	if err != nil {
		return nil, toStatus(err)
	}
	if req.NewestFirst {
		msgs = messagelog.Reversed(msgs)
	}
	return &ListMessagesResponse{Messages: msgs}, nil
}

func (s *MessageService) SendText(_ context.Context, req *SendTextRequest) (*SendTextResponse, error) {
	msg, err := s.log.Append(req.ConversationID, req.Text)
	if err != nil {
		return nil, toStatus(err)
	}
	return &SendTextResponse{Message: msg}, nil
}

func (s *MessageService) WatchMessages(req *WatchMessagesRequest, stream MessageStream) error {
	ch, unsub := s.bus.Subscribe("message.", 64)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			msg, ok := evt.Payload.(messagelog.Message)
			if !ok {
				continue
			}
			if req.ConversationID != "" && msg.ConversationID != req.ConversationID {
				continue
			}
			if err := stream.Send(&MessageEvent{
				EventID:          uuid.New().String(),
				OccurredAtUnixMs: evt.Timestamp.UnixMilli(),
				Kind:             evt.Kind,
				Message:          msg,
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}

package api

import (
	"context"

	"github.com/matheus3301/wave/internal/directory"
)

// ChatService implements wave.v1.ChatService.
type ChatService struct {
	dir *directory.Directory
}

// NewChatService creates a new chat service backed by the directory.
func NewChatService(dir *directory.Directory) *ChatService {
	return &ChatService{dir: dir}
}

func (s *ChatService) ListChats(_ context.Context, _ *Empty) (*ListChatsResponse, error) {
	return &ListChatsResponse{Chats: s.dir.List()}, nil
}

func (s *ChatService) GetChat(_ context.Context, req *GetChatRequest) (*ChatResponse, error) {
	c, err := s.dir.Get(req.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ChatResponse{Chat: c}, nil
}

// NewChat opens the first conversation until starting real conversations is
// supported.
func (s *ChatService) NewChat(_ context.Context, _ *Empty) (*ChatResponse, error) {
	c, err := s.dir.First()
	if err != nil {
		return nil, toStatus(err)
	}
	return &ChatResponse{Chat: c}, nil
}

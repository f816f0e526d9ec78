package service

import (
	"kernel_school_backend/internal/model"
	"kernel_school_backend/internal/repository"
)

const chatHistoryLimit = 50

type ChatService struct {
	Messages *repository.MessageRepository
}

func NewChatService(messages *repository.MessageRepository) *ChatService {
	return &ChatService{Messages: messages}
}

// History 最新50条，按时间正序返回给客户端
func (s *ChatService) History() ([]repository.MessageWithAuthor, error) {
	messages, err := s.Messages.FindLatest(chatHistoryLimit)
	if err != nil {
		return nil, err
	}
	return reverseMessages(messages), nil
}

func (s *ChatService) Send(userID uint, text string) error {
	return s.Messages.Create(&model.Message{UserID: userID, Text: text})
}

func reverseMessages(messages []repository.MessageWithAuthor) []repository.MessageWithAuthor {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages
}

package service

import (
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/repository"
	"github.com/litmart/litmart-backend/internal/ws"
)

// ChatService handles support chat business logic
type ChatService struct {
	repo    *repository.ChatRepository
	members repository.MemberRepository
	hub     *ws.Hub
}

// NewChatService creates a new ChatService
func NewChatService(repo *repository.ChatRepository, members repository.MemberRepository, hub *ws.Hub) *ChatService {
	return &ChatService{repo: repo, members: members, hub: hub}
}

// GetHistory returns a page of the member's conversation, marking incoming
// messages as read for the reading side
func (s *ChatService) GetHistory(memberID int64, asStaff bool, page, limit int) (*domain.ChatHistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	messages, total, err := s.repo.GetHistory(memberID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	// Staff reading marks member messages read; members mark staff messages
	if err := s.repo.MarkConversationRead(memberID, !asStaff); err != nil {
		return nil, err
	}

	resp := &domain.ChatHistoryResponse{
		Messages: make([]domain.ChatMessageResponse, len(messages)),
		Total:    total,
	}
	for i := range messages {
		resp.Messages[i] = messages[i].ToResponse()
	}

	return resp, nil
}

// Send persists a message in a member's conversation and pushes it live
func (s *ChatService) Send(memberID, senderID int64, fromStaff bool, content string) (*domain.ChatMessageResponse, error) {
	sender, err := s.members.FindByID(senderID)
	if err != nil {
		return nil, err
	}

	message := &domain.ChatMessage{
		MemberID:  memberID,
		SenderID:  senderID,
		FromStaff: fromStaff,
		Content:   content,
	}
	if sender != nil {
		message.SenderName = sender.Name
	}

	if err := s.repo.Create(message); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.SendToMember(memberID, &ws.Message{
			Type:    "chat",
			Payload: message.ToResponse(),
		})
	}

	resp := message.ToResponse()
	return &resp, nil
}

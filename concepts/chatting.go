package concepts

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmates-api/apperrors"
	"tripmates-api/models"
)

// Chatting manages message threads scoped to a fixed participant set. It does
// not dedup sessions: callers may open several threads for the same pair.
type Chatting struct {
	db *gorm.DB
}

func NewChatting(db *gorm.DB) *Chatting {
	return &Chatting{db: db}
}

func (c *Chatting) StartSession(participants []string) (*models.ChatSession, error) {
	if len(participants) == 0 {
		return nil, apperrors.BadValues("A chat needs at least one participant.")
	}

	session := models.ChatSession{
		ID:           uuid.New().String(),
		Participants: models.StringSliceType(participants),
		CreatedAt:    time.Now(),
	}
	if err := c.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// SendMessage appends a message stamped with the current time. Membership is
// not checked here; callers invoke AssertParticipants first.
func (c *Chatting) SendMessage(chatID, senderID, text string) (*models.ChatMessage, error) {
	message := models.ChatMessage{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		SenderID:  senderID,
		Text:      text,
		Timestamp: time.Now(),
	}
	if err := c.db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// GetMessages returns the thread ordered oldest first.
func (c *Chatting) GetMessages(chatID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := c.db.Where("chat_id = ?", chatID).Order("timestamp ASC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Chatting) GetSession(chatID string) (*models.ChatSession, error) {
	var session models.ChatSession
	if err := c.db.First(&session, "id = ?", chatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Chat %s does not exist!", chatID)
		}
		return nil, err
	}
	return &session, nil
}

// GetSessionsFor returns every session the user participates in. Participant
// ids are UUIDs stored as a JSON array, so a quoted LIKE match is exact and
// portable across MySQL and SQLite.
func (c *Chatting) GetSessionsFor(userID string) ([]models.ChatSession, error) {
	var sessions []models.ChatSession
	err := c.db.Where("participants LIKE ?", "%\""+userID+"\"%").
		Order("created_at DESC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// EndSession deletes the session record only; messages are retained as an
// audit trail.
func (c *Chatting) EndSession(chatID string) error {
	res := c.db.Delete(&models.ChatSession{}, "id = ?", chatID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Chat %s does not exist!", chatID)
	}
	return nil
}

// AssertParticipants guards message access: NotFound when the session is
// missing, NotAllowed when the user is not a participant.
func (c *Chatting) AssertParticipants(chatID, userID string) error {
	session, err := c.GetSession(chatID)
	if err != nil {
		return err
	}
	if !session.Participants.Contains(userID) {
		return apperrors.NotAllowed("User %s is not in chat %s!", userID, chatID)
	}
	return nil
}

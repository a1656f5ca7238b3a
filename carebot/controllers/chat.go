package controllers

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"carebot/carebot/services/ai"
	"carebot/carebot/sources/store"
	"carebot/carebot/utils/logging"
	"carebot/carebot/utils/types"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatController struct {
	store     store.Store
	assistant ai.Assistant
}

func NewChatController(st store.Store, assistant ai.Assistant) *ChatController {
	return &ChatController{
		store:     st,
		assistant: assistant,
	}
}

func (c *ChatController) History(ctx context.Context, userID int) ([]types.ChatHistoryEntry, error) {
	msgs, err := c.store.GetChatHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]types.ChatHistoryEntry, 0, len(msgs))
	for _, m := range msgs {
		entries = append(entries, types.ChatHistoryEntry{
			ChatID:    m.ChatID,
			UserID:    m.UserID,
			Query:     m.Query,
			Response:  m.Response,
			Timestamp: m.Timestamp,
		})
	}
	return entries, nil
}

// Session states. A session loops Idle -> AwaitingResponse -> Idle per
// message; the transient error path also lands back on Idle after emitting
// an apology, so the client is never left hanging.
const (
	stateIdle int32 = iota
	stateAwaitingResponse
)

type chatSession struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex
	state   atomic.Int32
}

func (s *chatSession) emit(ctx context.Context, event types.SocketEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.Write(ctx, websocket.MessageText, payload)
}

// ChatSocket drives one websocket connection. Each user_message is handled
// in its own goroutine so a slow provider call never blocks the read loop or
// other messages on the same connection.
func (c *ChatController) ChatSocket(ctx context.Context, conn *websocket.Conn) {
	session := &chatSession{
		id:   uuid.New().String()[:8],
		conn: conn,
	}
	logging.AppLogger.Info("chat session opened", zap.String("session", session.id))

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			logging.AppLogger.Info("chat session closed",
				zap.String("session", session.id), zap.Error(err))
			return
		}
		if typ != websocket.MessageText {
			session.emit(ctx, types.SocketEvent{Event: types.EventError, Error: "unsupported data"})
			continue
		}

		var evt types.UserMessageEvent
		if err := json.Unmarshal(data, &evt); err != nil {
			session.emit(ctx, types.SocketEvent{Event: types.EventError, Error: "invalid json"})
			continue
		}
		if evt.Event != "" && evt.Event != types.EventUserMessage {
			session.emit(ctx, types.SocketEvent{Event: types.EventError, Error: "unknown event"})
			continue
		}

		// Typing indicator goes out before the provider call starts.
		session.state.Store(stateAwaitingResponse)
		session.emit(ctx, types.SocketEvent{Event: types.EventBotTyping})

		// Detached context: a disconnect mid-flight must not abort the
		// provider call; the response is still persisted, the emit just
		// fails and gets logged.
		go c.handleMessage(context.WithoutCancel(ctx), session, evt)
	}
}

func (c *ChatController) handleMessage(ctx context.Context, session *chatSession, evt types.UserMessageEvent) {
	defer logging.LogDuration(ctx, "chat_handle_message")()
	defer session.state.Store(stateIdle)

	response, err := c.processMessage(ctx, evt.UserID, evt.Message, evt.Language)
	if err != nil {
		logging.ErrorLogger.Error("chat save error",
			zap.String("session", session.id), zap.Int("user_id", evt.UserID), zap.Error(err))
	}

	if err := session.emit(ctx, types.SocketEvent{Event: types.EventChatMessage, Message: response}); err != nil {
		logging.AppLogger.Warn("dropping response for closed session",
			zap.String("session", session.id), zap.Int("user_id", evt.UserID))
	}
}

// processMessage is the request/response cycle without the socket: get an
// answer (or the defensive apology), persist the exchange, return the text
// that should reach the client. The returned error is a store failure only;
// the response text is always usable.
func (c *ChatController) processMessage(ctx context.Context, userID int, message, lang string) (string, error) {
	response, err := c.assistant.Answer(ctx, message, userID, lang)
	if err != nil {
		// Defensive: the adapter broke its always-answer contract.
		response = ai.ApologyFor(lang, err.Error())
	}

	_, saveErr := c.store.SaveChat(ctx, userID, message, response)
	return response, saveErr
}

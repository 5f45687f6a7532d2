package http

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"pub-trivia-service/internal/app"
	"pub-trivia-service/internal/domain"
	"pub-trivia-service/internal/logger"
)

// WSHandler wires websocket connections into the game: participant commands
// (join, answer), read-only queries, and host commands gated by a shared key.
type WSHandler struct {
	game     *app.Game
	hub      *Hub
	hostKey  string
	upgrader websocket.Upgrader
}

func NewWSHandler(game *app.Game, hub *Hub, hostKey string) *WSHandler {
	return &WSHandler{
		game:    game,
		hub:     hub,
		hostKey: hostKey,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type joinPayload struct {
	Team   string `json:"team"`
	Player string `json:"player"`
}

type answerPayload struct {
	Option int `json:"option"`
}

type hostPayload struct {
	Key     string `json:"key"`
	Command string `json:"command"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type joinedPayload struct {
	Team   domain.Team   `json:"team"`
	Player domain.Player `json:"player"`
}

type answerResult struct {
	Status string `json:"status"`
}

type ackPayload struct {
	Command string `json:"command"`
}

type eventPayload struct {
	Name string `json:"name"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and runs the message loop for
// one connection.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	clientID := domain.NewID()
	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				logger.Debug("ws write error", "client", clientID, "error", err)
				return
			}
		}
	}()

	h.hub.add(clientID, send)

	teamID := ""
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "create":
			var payload joinPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.Team == "" {
				send <- errorMessage("invalid create payload")
				continue
			}
			team, err := h.game.CreateTeam(payload.Team)
			if err != nil {
				send <- errorMessage("team name already taken, join it instead")
				continue
			}
			send <- outboundMessage[any]{Type: "created", Payload: team}
			h.hub.NotifyOthers(clientID, app.EventUpdateGame)
		case "join":
			var payload joinPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.Team == "" || payload.Player == "" {
				send <- errorMessage("invalid join payload")
				continue
			}
			team, player := h.game.JoinTeam(payload.Team, payload.Player)
			teamID = team.ID
			send <- outboundMessage[any]{Type: "joined", Payload: joinedPayload{Team: team, Player: player}}
			h.hub.NotifyOthers(clientID, app.EventUpdateGame)
		case "answer":
			if teamID == "" {
				send <- errorMessage("join a team before answering")
				continue
			}
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMessage("invalid answer payload")
				continue
			}
			status, err := h.game.SubmitAnswer(teamID, payload.Option)
			if err != nil {
				send <- errorMessage(submitErrorText(err))
				continue
			}
			send <- outboundMessage[any]{Type: "answerResult", Payload: answerResult{Status: status.String()}}
		case "state":
			send <- outboundMessage[any]{Type: "state", Payload: h.game.Snapshot()}
		case "question":
			question, err := h.game.CurrentQuestion()
			if err != nil {
				send <- errorMessage("no current question")
				continue
			}
			send <- outboundMessage[any]{Type: "question", Payload: question}
		case "teams":
			send <- outboundMessage[any]{Type: "teams", Payload: h.game.Teams()}
		case "host":
			var payload hostPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMessage("invalid host payload")
				continue
			}
			if !h.authorizeHost(payload.Key) {
				send <- errorMessage("host key rejected")
				continue
			}
			if !h.runHostCommand(payload.Command) {
				send <- errorMessage("unknown host command")
				continue
			}
			send <- outboundMessage[any]{Type: "ack", Payload: ackPayload{Command: payload.Command}}
		default:
			send <- errorMessage("unsupported message type")
		}
	}

	h.hub.remove(clientID)
	close(send)
	<-writerDone
}

func (h *WSHandler) authorizeHost(key string) bool {
	if h.hostKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(h.hostKey)) == 1
}

func (h *WSHandler) runHostCommand(command string) bool {
	switch command {
	case "start":
		h.game.Start()
	case "next":
		h.game.Advance()
	case "results":
		h.game.ShowResults()
	case "end":
		h.game.EndNow()
	case "reset":
		h.game.Reset()
	default:
		return false
	}
	return true
}

func submitErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownTeam):
		return "unknown team"
	case errors.Is(err, domain.ErrInvalidOption):
		return "answer option out of range"
	default:
		return err.Error()
	}
}

func errorMessage(text string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: text}}
}

package http

import (
	"encoding/json"
	"log"
	"net/http"

	"ethics-quiz-service/internal/app"
	"ethics-quiz-service/internal/domain"
	"github.com/gorilla/websocket"
)

// topDisplay caps the ranking shown right after a submission.
const topDisplay = 3

type WSHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService) *WSHandler {
	return &WSHandler{
		service: service,
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

type startPayload struct {
	Tier string `json:"tier"`
}

type answerPayload struct {
	OptionIndex int `json:"optionIndex"`
}

type submitPayload struct {
	Name  string `json:"name"`
	Grade int    `json:"grade"`
}

type finishedPayload struct {
	Score int `json:"score"`
}

type hallOfFamePayload struct {
	Entries []domain.HallOfFameEntry `json:"entries"`
}

type topEntriesPayload struct {
	Low  *domain.HallOfFameEntry `json:"low"`
	High *domain.HallOfFameEntry `json:"high"`
}

type soundPayload struct {
	Cue domain.SoundCue `json:"cue"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// wsAudio forwards sound cues to the client as fire-and-forget events. A
// full buffer drops the cue; playback never affects game logic.
type wsAudio struct {
	events chan<- outboundMessage[any]
}

func (a wsAudio) Play(cue domain.SoundCue) {
	select {
	case a.events <- outboundMessage[any]{Type: "sound", Payload: soundPayload{Cue: cue}}:
	default:
	}
}

// ServeWS upgrades the request and drives one game session per connection.
// All outbound traffic funnels through a single writer goroutine; countdown
// expiries and sound cues are injected into the same queue via the events
// channel so the session sees one sequential stream.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		http.Error(w, "missing clientId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 16)
	events := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(eventsDone)
		for {
			select {
			case msg := <-events:
				select {
				case send <- msg:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	onTimeout := func(outcome domain.AnswerOutcome) {
		select {
		case events <- outboundMessage[any]{Type: "timeout", Payload: outcome}:
		default:
		}
	}
	h.service.Register(clientID, wsAudio{events: events}, onTimeout)
	defer h.service.Drop(clientID)

	send <- outboundMessage[any]{Type: "topEntries", Payload: h.topEntries(r)}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errMsg("invalid start payload")
				continue
			}
			tier, err := domain.ParseTier(payload.Tier)
			if err != nil {
				send <- errMsg(err.Error())
				continue
			}
			view, err := h.service.StartQuiz(r.Context(), clientID, tier)
			if err != nil {
				send <- errMsg(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "question", Payload: view}
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errMsg("invalid answer payload")
				continue
			}
			outcome, err := h.service.Answer(r.Context(), clientID, payload.OptionIndex)
			if err == domain.ErrAlreadyAnswered {
				// Second click on the same question is a no-op.
				continue
			}
			if err != nil {
				send <- errMsg(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "answerResult", Payload: outcome}
		case "next":
			view, score, finished, err := h.service.Advance(r.Context(), clientID)
			if err != nil {
				send <- errMsg(err.Error())
				continue
			}
			if finished {
				send <- outboundMessage[any]{Type: "finished", Payload: finishedPayload{Score: score}}
				continue
			}
			send <- outboundMessage[any]{Type: "question", Payload: view}
		case "quit":
			if err := h.service.Quit(clientID); err != nil {
				send <- errMsg(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "topEntries", Payload: h.topEntries(r)}
		case "submit":
			var payload submitPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errMsg("invalid submit payload")
				continue
			}
			entries, err := h.service.Submit(r.Context(), clientID, payload.Name, payload.Grade)
			if err != nil {
				send <- errMsg(err.Error())
				continue
			}
			if len(entries) > topDisplay {
				entries = entries[:topDisplay]
			}
			send <- outboundMessage[any]{Type: "hallOfFame", Payload: hallOfFamePayload{Entries: entries}}
		case "playAgain":
			best, err := h.service.PlayAgain(r.Context(), clientID)
			if err != nil {
				send <- errMsg(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "topEntries", Payload: topEntriesPayload{
				Low:  best[domain.TierLow],
				High: best[domain.TierHigh],
			}}
		default:
			send <- errMsg("unsupported message type")
		}
	}

	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
}

func (h *WSHandler) topEntries(r *http.Request) topEntriesPayload {
	best := h.service.HallOfFame().Best(r.Context())
	return topEntriesPayload{
		Low:  best[domain.TierLow],
		High: best[domain.TierHigh],
	}
}

func errMsg(message string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}}
}

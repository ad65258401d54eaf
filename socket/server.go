package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewServer builds the socket.io server. Clients emit "join" with
// their user ID after connecting; notifications and messages are then
// broadcast to their room.
func NewServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(conn socketio.Conn) error {
		log.Printf("Socket connected: %s", conn.ID())
		return nil
	})

	server.OnEvent("/", "join", func(conn socketio.Conn, userID string) {
		if userID == "" {
			return
		}
		conn.Join(roomFor(userID))
		log.Printf("Socket %s joined room for user %s", conn.ID(), userID)
	})

	server.OnEvent("/", "leave", func(conn socketio.Conn, userID string) {
		conn.Leave(roomFor(userID))
	})

	server.OnError("/", func(conn socketio.Conn, err error) {
		log.Printf("Socket error: %v", err)
	})

	server.OnDisconnect("/", func(conn socketio.Conn, reason string) {
		log.Printf("Socket disconnected: %s (%s)", conn.ID(), reason)
	})

	return server
}

// Broadcaster pushes events to a single user's room.
type Broadcaster struct {
	Server *socketio.Server
}

// Emit broadcasts an event to the user's room. Users with no open
// connection simply miss the realtime copy; the persisted notification
// remains.
func (b *Broadcaster) Emit(userID, event string, payload interface{}) {
	b.Server.BroadcastToRoom("/", roomFor(userID), event, payload)
}

func roomFor(userID string) string {
	return "user:" + userID
}

package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

const idlePingInterval = 30 * time.Second

// writeWithHeartbeat drains send into the connection and writes a ping frame
// when nothing was written for idlePingInterval.
func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(idlePingInterval)
	defer ticker.Stop()

	lastWrite := time.Now()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return nil
			}

			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}

			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < idlePingInterval {
				continue
			}

			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return err
			}

			lastWrite = time.Now()
		}
	}
}

package ws

import (
	"testing"
	"time"
)

// Send ต้องไม่ block แม้ไม่มีใครอ่าน channel (เช่น hub ยังไม่ Run)
func TestSendNeverBlocks(t *testing.T) {
	hub := NewNotifyHub()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			hub.Send(7, map[string]any{"seq": i})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Send blocked with a full broadcast channel")
	}
}

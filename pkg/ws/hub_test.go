package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHubSendToRegisteredClient(t *testing.T) {
	h := NewHub()
	c := NewClient("u1", nil)
	h.Register(c)

	ok, err := h.SendJSON("u1", map[string]string{"type": "notification"})
	if err != nil {
		t.Fatalf("SendJSON returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected message to be queued")
	}

	msg := <-c.send
	if string(msg) != `{"type":"notification"}` {
		t.Errorf("unexpected payload %s", msg)
	}
}

func TestHubSendWithoutClients(t *testing.T) {
	h := NewHub()
	if h.Send("nobody", []byte("x")) {
		t.Error("expected false for offline user")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	h := NewHub()
	c := NewClient("u1", nil)
	h.Register(c)

	for i := 0; i < cap(c.send); i++ {
		if !h.Send("u1", []byte("x")) {
			t.Fatalf("send %d should succeed", i)
		}
	}
	if h.Send("u1", []byte("overflow")) {
		t.Error("expected send to fail once buffer is full")
	}
	if h.Online("u1") != 0 {
		t.Error("slow client should have been unregistered")
	}
}

func TestWriteFailureUnregistersClient(t *testing.T) {
	h := NewHub()
	registered := make(chan *Client, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := NewClient("u1", conn)
		h.Register(c)
		registered <- c
	}))
	defer srv.Close()

	peer, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer peer.Close()

	var c *Client
	select {
	case c = <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("client was not registered")
	}
	// 底层连接已断开，下一次写会失败
	_ = c.conn.Close()

	done := make(chan struct{})
	go func() {
		c.WritePump(func() { h.Unregister(c) })
		close(done)
	}()
	if !h.Send("u1", []byte("x")) {
		t.Fatal("expected message to be queued")
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WritePump did not return after write failure")
	}
	if h.Online("u1") != 0 {
		t.Error("client should be unregistered after write failure")
	}
	if h.Send("u1", []byte("y")) {
		t.Error("unregistered client must not receive messages")
	}
}

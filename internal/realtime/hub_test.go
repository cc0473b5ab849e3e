package realtime

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/blogmanager-backend/internal/platform/logger"
	"github.com/yungbote/blogmanager-backend/internal/realtime/bus"
)

func recvEvent(t *testing.T, ch <-chan bus.Event, timeout time.Duration) bus.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
	}
	return bus.Event{}
}

func TestHubRoutesByChannel(t *testing.T) {
	hub := NewHub(logger.NewNop())
	blogs := hub.NewClient()
	hub.AddChannel(blogs, "blog")
	all := hub.NewClient()
	hub.AddChannel(all, AllChannels)
	hub.AddChannel(all, "blog")

	ev := bus.Event{Kind: "blog.create", ID: uuid.New()}
	hub.Broadcast(ev)
	hub.Broadcast(bus.Event{Kind: "author.delete", ID: uuid.New()})

	require.Equal(t, ev.ID, recvEvent(t, blogs.Outbound, time.Second).ID)
	require.Equal(t, ev.ID, recvEvent(t, all.Outbound, time.Second).ID)
	require.Equal(t, "author.delete", recvEvent(t, all.Outbound, time.Second).Kind)

	select {
	case extra := <-blogs.Outbound:
		t.Fatalf("unexpected event for blog client: %+v", extra)
	default:
	}
	select {
	case extra := <-all.Outbound:
		t.Fatalf("duplicate event for wildcard client: %+v", extra)
	default:
	}
}

func TestHubReconnectKeepsOrdering(t *testing.T) {
	hub := NewHub(logger.NewNop())
	first := hub.NewClient()
	hub.AddChannel(first, "author")

	hub.Broadcast(bus.Event{Kind: "author.create"})
	hub.Broadcast(bus.Event{Kind: "author.update"})
	require.Equal(t, "author.create", recvEvent(t, first.Outbound, time.Second).Kind)
	require.Equal(t, "author.update", recvEvent(t, first.Outbound, time.Second).Kind)

	hub.CloseClient(first)
	_, ok := <-first.Outbound
	require.False(t, ok)

	second := hub.NewClient()
	hub.AddChannel(second, "author")
	hub.Broadcast(bus.Event{Kind: "author.delete"})
	require.Equal(t, "author.delete", recvEvent(t, second.Outbound, time.Second).Kind)
}

func TestServeWritesEventStream(t *testing.T) {
	hub := NewHub(logger.NewNop())
	client := hub.NewClient()
	hub.AddChannel(client, "blog")

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest("GET", "/api/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		hub.Serve(rec, req, client)
		close(done)
	}()

	id := uuid.New()
	hub.Broadcast(bus.Event{Kind: "blog.create", ID: id})
	require.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
		}
		return len(client.Outbound) == 0
	}, time.Second, 10*time.Millisecond)
	cancel()
	<-done

	body := rec.Body.String()
	require.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	require.True(t, strings.Contains(body, "event: blog.create"))
	require.True(t, strings.Contains(body, id.String()))
}

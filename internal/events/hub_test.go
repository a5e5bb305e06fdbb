package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientCanSee(t *testing.T) {
	event := Event{
		Type:         "complaint.updated",
		ComplaintID:  "c1",
		Organization: "Waterworks",
		UserID:       "reporter-1",
	}

	admin := &Client{UserID: "a1", Role: "admin"}
	assert.True(t, admin.canSee(event), "admins see everything")

	reporter := &Client{UserID: "reporter-1", Role: "user"}
	assert.True(t, reporter.canSee(event))

	stranger := &Client{UserID: "someone-else", Role: "user"}
	assert.False(t, stranger.canSee(event))

	orgStaff := &Client{UserID: "o1", Role: "organization", Organization: "Waterworks"}
	assert.True(t, orgStaff.canSee(event))

	otherOrg := &Client{UserID: "o2", Role: "organization", Organization: "Lighting Dept"}
	assert.False(t, otherOrg.canSee(event))

	worker := &Client{UserID: "w1", Role: "worker", Organization: "Waterworks"}
	assert.True(t, worker.canSee(event))

	// staff without an organization on the token sees nothing
	orphan := &Client{UserID: "w2", Role: "worker"}
	assert.False(t, orphan.canSee(event))

	unknown := &Client{UserID: "x", Role: "ghost"}
	assert.False(t, unknown.canSee(event))
}

func TestHubDispatchScopesEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	admin := &Client{UserID: "a1", Role: "admin", Send: make(chan Event, 1)}
	stranger := &Client{UserID: "u2", Role: "user", Send: make(chan Event, 1)}

	hub.register <- admin
	hub.register <- stranger

	hub.Publish(Event{Type: "complaint.created", ComplaintID: "c1", UserID: "u1"})

	select {
	case got := <-admin.Send:
		assert.Equal(t, "c1", got.ComplaintID)
	case <-time.After(time.Second):
		t.Fatal("admin never received the event")
	}

	select {
	case <-stranger.Send:
		t.Fatal("stranger must not receive a foreign user's event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	// no Run loop draining the channel
	hub := NewHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish(Event{Type: "complaint.updated"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full buffer")
	}
}

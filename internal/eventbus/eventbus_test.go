package eventbus

import (
	"context"
	"testing"
)

type testEvent struct {
	N int
}

type otherEvent struct {
	S string
}

func TestPublishReachesSubscribersOfSameType(t *testing.T) {
	Use(New())
	defer Use(nil)

	var got []testEvent
	Subscribe(func(ctx context.Context, e testEvent) { got = append(got, e) })

	var other []otherEvent
	Subscribe(func(ctx context.Context, e otherEvent) { other = append(other, e) })

	Publish(context.Background(), testEvent{N: 1})
	Publish(context.Background(), testEvent{N: 2})

	if len(got) != 2 || got[0].N != 1 || got[1].N != 2 {
		t.Fatalf("got = %v", got)
	}
	if len(other) != 0 {
		t.Fatalf("handler for another type fired: %v", other)
	}
}

func TestMultipleHandlers(t *testing.T) {
	Use(New())
	defer Use(nil)

	calls := 0
	Subscribe(func(ctx context.Context, e testEvent) { calls++ })
	Subscribe(func(ctx context.Context, e testEvent) { calls++ })

	Publish(context.Background(), testEvent{})
	if calls != 2 {
		t.Fatalf("calls = %d", calls)
	}
}

func TestNoBusIsNoop(t *testing.T) {
	Use(nil)

	Subscribe(func(ctx context.Context, e testEvent) { t.Fatal("handler registered on nil bus") })
	Publish(context.Background(), testEvent{})
}

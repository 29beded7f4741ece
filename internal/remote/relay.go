package remote

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/matheus3301/wave/internal/bus"
	"github.com/matheus3301/wave/internal/logging"
	"github.com/matheus3301/wave/internal/messagelog"
)

const publishTimeout = 10 * time.Second

// Relay forwards outbound messages appended to the log to a Publisher.
// Delivery failures are logged; the log itself is never touched.
type Relay struct {
	pub    Publisher
	bus    *bus.Bus
	logger *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRelay creates a new relay.
func NewRelay(pub Publisher, b *bus.Bus, logger *zap.Logger) *Relay {
	return &Relay{
		pub:    pub,
		bus:    b,
		logger: logging.OrNop(logger),
	}
}

// Start subscribes to message events on the bus.
func (r *Relay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	ch, unsub := r.bus.Subscribe("message.", 256)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer unsub()
		for {
			select {
			case evt := <-ch:
				r.handleEvent(ctx, evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the relay and waits for the in-flight delivery to finish.
func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Relay) handleEvent(ctx context.Context, evt bus.Event) {
	if evt.Kind != bus.KindMessageAdded {
		return
	}
	msg, ok := evt.Payload.(messagelog.Message)
	if !ok || !msg.IsOutbound {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := r.pub.Publish(ctx, msg); err != nil {
		r.logger.Error("failed to publish message", zap.Error(err),
			zap.String("conversation_id", msg.ConversationID), zap.String("msg_id", msg.ID))
		return
	}
	r.logger.Debug("message published", zap.String("conversation_id", msg.ConversationID), zap.String("msg_id", msg.ID))
}

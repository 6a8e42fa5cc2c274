package cart

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const changeChannel = "cart.changed"

// RedisBus extends a LocalBus across processes via redis pub/sub. A publish
// fires local subscribers immediately and broadcasts to other instances; remote
// messages are replayed into the local bus. Messages carry the publisher's
// instance id so an instance does not re-deliver its own broadcast: local
// delivery already happened at publish time.
type RedisBus struct {
	local      *LocalBus
	rdb        *redis.Client
	instanceID string
	logger     *zap.Logger
	cancel     context.CancelFunc
}

func NewRedisBus(rdb *redis.Client, logger *zap.Logger) *RedisBus {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &RedisBus{
		local:      NewLocalBus(),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     logger.Named("cart.bus"),
		cancel:     cancel,
	}

	go b.listen(ctx)
	return b
}

func (b *RedisBus) Subscribe(fn func(key string)) func() {
	return b.local.Subscribe(fn)
}

func (b *RedisBus) Publish(key string) {
	b.local.Publish(key)

	payload := b.instanceID + " " + key
	if err := b.rdb.Publish(context.Background(), changeChannel, payload).Err(); err != nil {
		b.logger.Warn("publish to redis failed", zap.String("key", key), zap.Error(err))
	}
}

func (b *RedisBus) Close() {
	b.cancel()
}

func (b *RedisBus) listen(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, changeChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			instanceID, key, found := strings.Cut(msg.Payload, " ")
			if !found || instanceID == b.instanceID {
				continue
			}
			b.local.Publish(key)
		}
	}
}

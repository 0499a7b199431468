package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/rueidis"

	model "curtisos.com/curtisos/internal/models"
)

type RedisNotifier struct {
	client  rueidis.Client
	channel string
}

func NewRedisNotifier(client rueidis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
	}
}

func (r *RedisNotifier) TaskUpdated(ctx context.Context, task *model.Task) error {
	payload, err := json.Marshal(NewEvent(task))
	if err != nil {
		return err
	}

	cmd := r.client.B().Publish().Channel(r.channel).Message(string(payload)).Build()
	return r.client.Do(ctx, cmd).Error()
}

// Subscribe blocks, calling fn for each event published on the channel,
// until ctx is cancelled or the connection fails.
func (r *RedisNotifier) Subscribe(ctx context.Context, fn func(Event)) error {
	cmd := r.client.B().Subscribe().Channel(r.channel).Build()

	return r.client.Receive(ctx, cmd, func(msg rueidis.PubSubMessage) {
		var event Event
		if err := json.Unmarshal([]byte(msg.Message), &event); err != nil {
			log.Printf("notify: dropping malformed event on %s: %v", msg.Channel, err)
			return
		}
		fn(event)
	})
}

package producer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/tennis-autobet/pkg/contracts/events"
)

type fakeWriter struct {
	msgs []kafka.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func TestPublishBetOutcome(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w, "bet_outcome")

	err := p.PublishBetOutcome(context.Background(), events.BetOutcome{
		RequestID: "req-1",
		Home:      "Taro Daniel",
		Away:      "Hong Seong-chan",
		Kind:      "placed",
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("req-1"), w.msgs[0].Key)

	var got events.BetOutcome
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, "placed", got.Kind)
	assert.NotZero(t, got.TsUnixMs)
}

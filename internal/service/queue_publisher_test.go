package queue_publisher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	q "github.com/oliFYP/RingReady/internal/queue"
)

// main hands the configured broker address to the publisher once at
// startup; an empty value keeps the local broker default.
func TestSetBrokerURL(t *testing.T) {
	t.Cleanup(func() { SetBrokerURL("") })

	SetBrokerURL("amqp://app:pw@broker:5672/")
	assert.Equal(t, "amqp://app:pw@broker:5672/", brokerURL)

	SetBrokerURL("")
	assert.Equal(t, q.BrokerURL(""), brokerURL)
}

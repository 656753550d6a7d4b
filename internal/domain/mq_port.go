package domain

type Message struct {
	Key   []byte
	Value []byte
}

// PublisherPort is the raw broker surface; the topic is fixed at
// construction time.
type PublisherPort interface {
	Publish(msgs ...Message) error
}

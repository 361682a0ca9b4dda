package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"neuroad-server/config"
	"neuroad-server/pkg/logger"
)

type RabbitMQClient struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queues     map[string]amqp.Queue
}

// Event is one project lifecycle notification published to the event bus.
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	ProjectID string                 `json:"project_id"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

type EventHandler func(event *Event) error

var Queue *RabbitMQClient

// Queue and event type constants.
const (
	ProjectEventsQueue = "project_events"

	EventProjectCreated      = "project.created"
	EventProjectDeleted      = "project.deleted"
	EventGenerationCompleted = "generation.completed"
	EventGenerationFailed    = "generation.failed"
	EventVideoFailed         = "video.failed"
)

func InitRabbitMQ(cfg *config.Config) error {
	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}

	Queue = &RabbitMQClient{
		connection: conn,
		channel:    ch,
		queues:     make(map[string]amqp.Queue),
	}

	if err := Queue.declareQueues(); err != nil {
		return fmt.Errorf("failed to declare queues: %w", err)
	}

	logger.Info("RabbitMQ connected successfully")
	return nil
}

func (r *RabbitMQClient) declareQueues() error {
	queueNames := []string{ProjectEventsQueue}

	for _, name := range queueNames {
		queue, err := r.channel.QueueDeclare(
			name,
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			amqp.Table{
				"x-message-ttl":             int32(30 * 60 * 1000), // 30 minutes
				"x-dead-letter-exchange":    "dlx",
				"x-dead-letter-routing-key": "dlx." + name,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", name, err)
		}

		r.queues[name] = queue
	}

	// Declare dead letter exchange
	err := r.channel.ExchangeDeclare(
		"dlx",
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare dead letter exchange: %w", err)
	}

	return nil
}

func (r *RabbitMQClient) PublishEvent(queueName string, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = r.channel.Publish(
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish event to queue %s: %w", queueName, err)
	}

	logger.Infof("Event published to queue %s: %s", queueName, event.Type)
	return nil
}

func (r *RabbitMQClient) ConsumeEvents(queueName string, handler EventHandler, concurrency int) error {
	// Set QoS for the channel
	err := r.channel.Qos(
		concurrency, // prefetch count
		0,           // prefetch size
		false,       // global
	)
	if err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := r.channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for i := 0; i < concurrency; i++ {
		go r.worker(msgs, handler, queueName)
	}

	logger.Infof("Started %d workers for queue %s", concurrency, queueName)
	return nil
}

func (r *RabbitMQClient) worker(msgs <-chan amqp.Delivery, handler EventHandler, queueName string) {
	for msg := range msgs {
		var event Event
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			logger.Errorf("Failed to unmarshal event from queue %s: %v", queueName, err)
			msg.Nack(false, false) // Dead letter
			continue
		}

		if err := handler(&event); err != nil {
			logger.Errorf("Event %s failed: %v", event.ID, err)
			msg.Nack(false, false)
		} else {
			msg.Ack(false)
		}
	}
}

// NewEvent builds a project lifecycle event.
func NewEvent(eventType, projectID string, payload map[string]interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ProjectID: projectID,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// PublishProjectEvent publishes a lifecycle event for a project. Publish
// failures are logged, never surfaced to the request path.
func PublishProjectEvent(eventType, projectID string, payload map[string]interface{}) {
	if Queue == nil {
		return
	}
	if err := Queue.PublishEvent(ProjectEventsQueue, NewEvent(eventType, projectID, payload)); err != nil {
		logger.Errorf("Failed to publish %s event: %v", eventType, err)
	}
}

// EventLogHandler is the audit consumer for the project event stream.
func EventLogHandler(event *Event) error {
	logger.WithFields(map[string]interface{}{
		"event_id":   event.ID,
		"event_type": event.Type,
		"project_id": event.ProjectID,
	}).Info("Project event")
	return nil
}

func (r *RabbitMQClient) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.connection != nil {
		return r.connection.Close()
	}
	return nil
}

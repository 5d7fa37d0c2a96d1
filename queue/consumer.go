package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// SendMailFunc delivers one mail. utils.Mailer.Send satisfies it.
type SendMailFunc func(to, subject, body string) error

// StartMailConsumers launches one background consumer per reservation
// queue. Each runs a reconnect loop with exponential backoff and never
// returns under normal operation; call them from goroutines at startup.
func StartMailConsumers(send SendMailFunc) {
	go consumeForever(confirmedQueueName, func(body []byte) error {
		var ev ReservationConfirmedEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("decode confirmed event: %w", err)
		}
		subject, text := confirmationMail(ev)
		return send(ev.UserEmail, subject, text)
	})
	go consumeForever(cancelledQueueName, func(body []byte) error {
		var ev ReservationCancelledEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("decode cancelled event: %w", err)
		}
		subject, text := cancellationMail(ev)
		return send(ev.UserEmail, subject, text)
	})
}

func consumeForever(queueName string, handle func([]byte) error) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Printf("mail-consumer[%s]: dial failed: %v; retrying in %s", queueName, err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn, queueName, handle); err != nil {
			log.Printf("mail-consumer[%s]: consume loop ended: %v; reconnecting", queueName, err)
		}
		_ = conn.Close()
		time.Sleep(2 * time.Second)
	}
}

func consumeLoop(conn *amqp.Connection, queueName string, handle func([]byte) error) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(20, 0, false); err != nil {
		log.Printf("mail-consumer[%s]: set QoS failed: %v", queueName, err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handle(d.Body); err != nil {
			log.Printf("mail-consumer[%s]: handle message failed: %v", queueName, err)
			// Drop the message instead of requeueing: a malformed event or a
			// permanent SMTP rejection would otherwise loop forever.
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return fmt.Errorf("delivery channel closed")
}

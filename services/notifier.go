package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"codebank/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification carries what the new-question email needs. The creator email
// is resolved by the worker, off the request path.
type Notification struct {
	Title     string
	Topic     string
	CreatedBy primitive.ObjectID
}

// Notifier sends the new-question email to all registered users from a
// background worker. Enqueueing never blocks and send failures never
// surface to the caller.
type Notifier struct {
	users  UserRepository
	mailer utils.Mailer
	queue  chan Notification
	done   chan struct{}
}

func NewNotifier(users UserRepository, mailer utils.Mailer) *Notifier {
	return &Notifier{
		users:  users,
		mailer: mailer,
		queue:  make(chan Notification, 16),
		done:   make(chan struct{}),
	}
}

func (n *Notifier) Start() {
	go n.run()
}

// Notify enqueues a notification. When the queue is full the notification is
// dropped; there are no delivery guarantees.
func (n *Notifier) Notify(note Notification) {
	select {
	case n.queue <- note:
	default:
		log.Println("Notification queue full, dropping new-question email")
	}
}

// Close stops the worker after draining already-queued notifications.
func (n *Notifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *Notifier) run() {
	defer close(n.done)
	for note := range n.queue {
		n.send(note)
	}
}

func (n *Notifier) send(note Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users, err := n.users.FindAll(ctx)
	if err != nil {
		log.Println("Error loading notification recipients:", err)
		return
	}
	if len(users) == 0 {
		return
	}

	creatorEmail := "unknown"
	recipients := make([]string, 0, len(users))
	for _, u := range users {
		recipients = append(recipients, u.Email)
		if u.ID == note.CreatedBy {
			creatorEmail = u.Email
		}
	}

	body := fmt.Sprintf(`
		<h2>A new question has been posted!</h2>
		<p>Hello,</p>
		<p>A new coding question titled "<strong>%s</strong>" has been added by %s.</p>
		<p><strong>Topic:</strong> %s</p>
		<p>You can check it out now on the platform.</p>
		<p>Happy coding!</p>
	`, note.Title, creatorEmail, note.Topic)

	if err := n.mailer.Send(recipients, "New Coding Question Posted!", body); err != nil {
		log.Println("Error sending email:", err)
		return
	}
	log.Printf("New-question email sent to %d users", len(recipients))
}

package payloads

import "time"

const (
	ResourceArticle = "article"
	ResourceUser    = "user"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionRemoved = "removed"
)

// ResourceEvent описывает изменение статьи или пользователя,
// публикуется в RabbitMQ и читается воркером аудита.
type ResourceEvent struct {
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewResourceEvent(resource, action string, id int64) ResourceEvent {
	return ResourceEvent{
		Resource:   resource,
		Action:     action,
		ID:         id,
		OccurredAt: time.Now().UTC(),
	}
}

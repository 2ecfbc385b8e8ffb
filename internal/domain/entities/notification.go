package entities

// Notification is a local task reminder. Key is the task id so a notification
// system can collapse repeats.
type Notification struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  Date   `json:"date"`
}

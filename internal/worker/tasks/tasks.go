package worker_task

import "time"

const TaskFileAssignedEmail = "email:file_assigned"

const TaskLongRunningEntries = "low:long_running_entries"

// FileAssignedPayload benachrichtigt einen Grafiker über eine neue Mappe in seinem Pool.
type FileAssignedPayload struct {
	FileID     string    `json:"file_id"`
	FileNo     string    `json:"file_no"`
	DesignerID string    `json:"designer_id"`
	ActorID    string    `json:"actor_id"`
	Action     string    `json:"action"`
	AssignedAt time.Time `json:"assigned_at"`
}

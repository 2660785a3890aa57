// Package permission enthält die statische Zuordnung Rolle -> erlaubte Aktionen.
package permission

import (
	"slices"

	"github.com/dogaculudag/repro-dashboard-sub001/internal/entity"
)

type Action string

const (
	FileAssign           Action = "file:assign"
	FileTransfer         Action = "file:transfer"
	FileViewQueue        Action = "file:view_queue"
	FileViewPool         Action = "file:view_pool"
	FileSendToProduction Action = "file:send_to_production"
	TimeTrack            Action = "time:track"
	TimeTrackAnyFile     Action = "time:track_any_file"
	SessionViewAll       Action = "session:view_all"
	ReportViewDepartment Action = "report:view_department"
	ReportViewAnyWorker  Action = "report:view_any_worker"
	ReportViewFile       Action = "report:view_file"
	AuditView            Action = "audit:view"
)

var capabilities = map[entity.UserRole][]Action{
	entity.ADMIN: {
		FileAssign, FileTransfer, FileViewQueue, FileViewPool, FileSendToProduction,
		TimeTrack, TimeTrackAnyFile,
		SessionViewAll, ReportViewDepartment, ReportViewAnyWorker, ReportViewFile, AuditView,
	},
	entity.GRAFIKER: {
		FileViewPool, FileSendToProduction, TimeTrack,
	},
	entity.ONREPRO: {
		FileAssign, FileTransfer, FileViewQueue, TimeTrack, TimeTrackAnyFile, ReportViewFile,
	},
}

// Has meldet, ob role die Aktion ausführen darf. Unbekannte Rollen dürfen nichts.
func Has(role entity.UserRole, action Action) bool {
	return slices.Contains(capabilities[role], action)
}

// HasRole meldet, ob role in roles enthalten ist.
func HasRole(role entity.UserRole, roles ...entity.UserRole) bool {
	return slices.Contains(roles, role)
}

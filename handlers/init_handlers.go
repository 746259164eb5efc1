package handlers

import (
	"github.com/Brandongr90/la-gruta-dashboard/auth"
	"github.com/Brandongr90/la-gruta-dashboard/reports"
)

var (
	reportService   *reports.Service
	credentialStore *auth.Store
)

// Init wires the handlers to their collaborators. Called once from main
// after configuration, the credential store and the ventas source exist.
func Init(service *reports.Service, store *auth.Store) {
	reportService = service
	credentialStore = store
}

package httpx

import (
	"net/http"

	"github.com/mirdanish6594/Rentr/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Jobs        *service.JobService
	Contractors *service.ContractorService
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	jobHandlers := &JobHandlers{Svc: services.Jobs}
	contractorHandlers := &ContractorHandlers{Svc: services.Contractors}

	registerJobRoutes(mux, jobHandlers)
	registerContractorRoutes(mux, contractorHandlers)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers) {
	mux.HandleFunc("GET /api/jobs", h.ListJobs)
	mux.HandleFunc("POST /api/jobs", h.CreateJob)
	mux.HandleFunc("PUT /api/jobs/{id}", h.UpdateJob)
	mux.HandleFunc("DELETE /api/jobs/{id}", h.DeleteJob)
	mux.HandleFunc("POST /api/jobs/{id}/apply", h.Apply)
	mux.HandleFunc("POST /api/jobs/{id}/assign", h.Assign)
	mux.HandleFunc("POST /api/jobs/{id}/status", h.UpdateStatus)
	mux.HandleFunc("POST /api/jobs/{id}/invoice", h.CreateInvoice)
	mux.HandleFunc("POST /api/jobs/{id}/pay", h.Pay)
}

func registerContractorRoutes(mux *http.ServeMux, h *ContractorHandlers) {
	mux.HandleFunc("GET /api/contractors/{id}", h.GetByID)
}

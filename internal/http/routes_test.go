package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mirdanish6594/Rentr/internal/domain/model"
	"github.com/mirdanish6594/Rentr/internal/mocks"
	"github.com/mirdanish6594/Rentr/internal/service"
)

func newTestRouter(t *testing.T) (http.Handler, jobHandlerMocks, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := jobHandlerMocks{
		jobs:       mocks.NewMockJobRepository(ctrl),
		applicants: mocks.NewMockApplicantRepository(ctrl),
		invoices:   mocks.NewMockInvoiceRepository(ctrl),
	}
	router := NewRouter(RouterServices{
		Jobs: service.NewJobService(service.JobServiceOptions{
			Jobs:       m.jobs,
			Applicants: m.applicants,
			Invoices:   m.invoices,
		}),
		Contractors: service.NewContractorService(service.ContractorServiceOptions{
			Contractors: mocks.NewMockContractorRepository(ctrl),
		}),
	})
	return router, m, ctrl
}

func TestHealthz(t *testing.T) {
	router, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestRouter_JobRoutesResolvePathID(t *testing.T) {
	router, m, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	m.jobs.EXPECT().Delete(gomock.Any(), int64(12)).Return(true, nil)

	r := httptest.NewRequest(http.MethodDelete, "/api/jobs/12", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_ListJobs(t *testing.T) {
	router, m, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	m.jobs.EXPECT().List(gomock.Any()).Return([]*model.Job{}, nil)
	m.applicants.EXPECT().ListByJobIDs(gomock.Any(), []int64{}).Return(nil, nil)
	m.invoices.EXPECT().ListByJobIDs(gomock.Any(), []int64{}).Return(nil, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

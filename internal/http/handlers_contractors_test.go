package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mirdanish6594/Rentr/internal/data"
	"github.com/mirdanish6594/Rentr/internal/domain/model"
	"github.com/mirdanish6594/Rentr/internal/mocks"
	"github.com/mirdanish6594/Rentr/internal/service"
)

func newContractorHandlersWithMock(
	t *testing.T,
) (*ContractorHandlers, *mocks.MockContractorRepository, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContractorRepository(ctrl)
	svc := service.NewContractorService(service.ContractorServiceOptions{Contractors: repo})
	return &ContractorHandlers{Svc: svc}, repo, ctrl
}

func TestGetContractor_Success(t *testing.T) {
	h, repo, ctrl := newContractorHandlersWithMock(t)
	defer ctrl.Finish()

	repo.EXPECT().GetByID(gomock.Any(), int64(101)).Return(&model.Contractor{
		ID:     101,
		Name:   "Danish Mir",
		Rating: 4.8,
		Skills: []string{"Plumbing", "Electrical"},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/contractors/101", nil)
	r.SetPathValue("id", "101")
	w := httptest.NewRecorder()

	h.GetByID(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.Contractor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Danish Mir", got.Name)
	assert.Len(t, got.Skills, 2)
}

func TestGetContractor_NotFound(t *testing.T) {
	h, repo, ctrl := newContractorHandlersWithMock(t)
	defer ctrl.Finish()

	repo.EXPECT().GetByID(gomock.Any(), int64(999)).Return(nil, data.ErrContractorNotFound)

	r := httptest.NewRequest(http.MethodGet, "/api/contractors/999", nil)
	r.SetPathValue("id", "999")
	w := httptest.NewRecorder()

	h.GetByID(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "contractor_not_found", errBody["error"])
}

func TestGetContractor_InvalidID(t *testing.T) {
	h, _, ctrl := newContractorHandlersWithMock(t)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodGet, "/api/contractors/bogus", nil)
	r.SetPathValue("id", "bogus")
	w := httptest.NewRecorder()

	h.GetByID(w, r)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

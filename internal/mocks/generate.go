// Package mocks provides mock implementations for testing the Rentr marketplace API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

// Generate mock for JobRepository interface from internal/core package.
// This creates MockJobRepository with methods for all JobRepository interface methods:
// Create, GetByID, List, Update, Delete, SetAssignment, SetStatus
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/mirdanish6594/Rentr/internal/core JobRepository

// Generate mock for ApplicantRepository interface from internal/core package.
// This creates MockApplicantRepository with methods for all ApplicantRepository interface methods:
// Create, ListByJobIDs
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=applicant_repository_mock.go github.com/mirdanish6594/Rentr/internal/core ApplicantRepository

// Generate mock for InvoiceRepository interface from internal/core package.
// This creates MockInvoiceRepository with methods for all InvoiceRepository interface methods:
// CreateForJob, GetByJobID, ListByJobIDs
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=invoice_repository_mock.go github.com/mirdanish6594/Rentr/internal/core InvoiceRepository

// Generate mock for ContractorRepository interface from internal/core package.
// This creates MockContractorRepository with methods for all ContractorRepository interface methods:
// GetByID
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=contractor_repository_mock.go github.com/mirdanish6594/Rentr/internal/core ContractorRepository

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/mirdanish6594/Rentr/internal/core CacheRepository

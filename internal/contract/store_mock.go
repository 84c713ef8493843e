package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"botstats/schema"
)

// MockStore is a testify-based mock of the Store interface.
type MockStore struct {
	mock.Mock
}

var _ Store = &MockStore{} // Compile-time check

// Replace implements the Store interface.
func (m *MockStore) Replace(ctx context.Context, result schema.ScanResult) error {
	ret := m.Called(ctx, result)
	return ret.Error(0)
}

// BeginImportRun implements the Store interface.
func (m *MockStore) BeginImportRun(ctx context.Context, start time.Time) (int64, error) {
	ret := m.Called(ctx, start)
	return ret.Get(0).(int64), ret.Error(1)
}

// EndImportRun implements the Store interface.
func (m *MockStore) EndImportRun(ctx context.Context, runID int64, end time.Time, repos, commits int) error {
	ret := m.Called(ctx, runID, end, repos, commits)
	return ret.Error(0)
}

// MonthlyCounts implements the Store interface.
func (m *MockStore) MonthlyCounts(ctx context.Context) ([]schema.MonthlyCount, error) {
	ret := m.Called(ctx)
	rows, _ := ret.Get(0).([]schema.MonthlyCount)
	return rows, ret.Error(1)
}

// FirstCommitByRepo implements the Store interface.
func (m *MockStore) FirstCommitByRepo(ctx context.Context) ([]schema.RepoFirstCommit, error) {
	ret := m.Called(ctx)
	rows, _ := ret.Get(0).([]schema.RepoFirstCommit)
	return rows, ret.Error(1)
}

// TopRepos implements the Store interface.
func (m *MockStore) TopRepos(ctx context.Context, limit int) ([]schema.RepoVolume, error) {
	ret := m.Called(ctx, limit)
	rows, _ := ret.Get(0).([]schema.RepoVolume)
	return rows, ret.Error(1)
}

// MarkerProportions implements the Store interface.
func (m *MockStore) MarkerProportions(ctx context.Context) (schema.MarkerProportions, error) {
	ret := m.Called(ctx)
	proportions, _ := ret.Get(0).(schema.MarkerProportions)
	return proportions, ret.Error(1)
}

// Repos implements the Store interface.
func (m *MockStore) Repos(ctx context.Context) ([]schema.RepoRecord, error) {
	ret := m.Called(ctx)
	rows, _ := ret.Get(0).([]schema.RepoRecord)
	return rows, ret.Error(1)
}

// Commits implements the Store interface.
func (m *MockStore) Commits(ctx context.Context) ([]schema.CommitRecord, error) {
	ret := m.Called(ctx)
	rows, _ := ret.Get(0).([]schema.CommitRecord)
	return rows, ret.Error(1)
}

// ImportRuns implements the Store interface.
func (m *MockStore) ImportRuns(ctx context.Context) ([]schema.ImportRunRecord, error) {
	ret := m.Called(ctx)
	rows, _ := ret.Get(0).([]schema.ImportRunRecord)
	return rows, ret.Error(1)
}

// Close implements the Store interface.
func (m *MockStore) Close() error {
	ret := m.Called()
	return ret.Error(0)
}

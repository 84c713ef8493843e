package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify-based mock of the GitClient interface.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	mockArgs := []any{ctx, repoPath}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// HasMarkerToken implements the GitClient interface.
func (m *MockGitClient) HasMarkerToken(ctx context.Context, repoPath, token string) (bool, error) {
	ret := m.Called(ctx, repoPath, token)
	return ret.Bool(0), ret.Error(1)
}

// BotCommitLog implements the GitClient interface.
func (m *MockGitClient) BotCommitLog(ctx context.Context, repoPath string, authors []string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, authors)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

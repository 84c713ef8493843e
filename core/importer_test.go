package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"botstats/internal/contract"
)

func TestExecuteImport_HappyPath(t *testing.T) {
	cfg := testScanConfig()
	ctx := context.Background()
	mockClient := new(contract.MockGitClient)
	mockStore := new(contract.MockStore)

	dir := filepath.Join(t.TempDir(), "alpha")
	require.NoError(t, os.Mkdir(dir, 0o755))

	mockClient.On("HasMarkerToken", ctx, dir, cfg.MarkerToken).Return(true, nil).Once()
	mockClient.On("BotCommitLog", ctx, dir, cfg.Authors).
		Return([]byte("2024-01-01 bot-one@example.com\n"), nil).Once()

	mockStore.On("BeginImportRun", ctx, mock.AnythingOfType("time.Time")).Return(int64(7), nil).Once()
	mockStore.On("Replace", ctx, mock.Anything).Return(nil).Once()
	mockStore.On("EndImportRun", ctx, int64(7), mock.AnythingOfType("time.Time"), 1, 1).Return(nil).Once()

	err := ExecuteImport(ctx, cfg, mockClient, mockStore, []string{dir})
	require.NoError(t, err)
	mockClient.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestExecuteImport_ReplaceFailure(t *testing.T) {
	cfg := testScanConfig()
	ctx := context.Background()
	mockClient := new(contract.MockGitClient)
	mockStore := new(contract.MockStore)

	dir := filepath.Join(t.TempDir(), "alpha")
	require.NoError(t, os.Mkdir(dir, 0o755))

	mockClient.On("HasMarkerToken", ctx, dir, cfg.MarkerToken).Return(false, nil).Once()
	mockClient.On("BotCommitLog", ctx, dir, cfg.Authors).Return([]byte(""), nil).Once()

	mockStore.On("BeginImportRun", ctx, mock.AnythingOfType("time.Time")).Return(int64(1), nil).Once()
	mockStore.On("Replace", ctx, mock.Anything).Return(errors.New("disk full")).Once()

	err := ExecuteImport(ctx, cfg, mockClient, mockStore, []string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not store scan result")
	mockStore.AssertNotCalled(t, "EndImportRun", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteImport_EmptyPathList(t *testing.T) {
	cfg := testScanConfig()
	ctx := context.Background()
	mockClient := new(contract.MockGitClient)
	mockStore := new(contract.MockStore)

	mockStore.On("BeginImportRun", ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil).Once()
	mockStore.On("Replace", ctx, mock.Anything).Return(nil).Once()
	mockStore.On("EndImportRun", ctx, int64(2), mock.AnythingOfType("time.Time"), 0, 0).Return(nil).Once()

	// An empty import still replaces the tables, leaving them empty.
	err := ExecuteImport(ctx, cfg, mockClient, mockStore, nil)
	require.NoError(t, err)
	mockStore.AssertExpectations(t)
}

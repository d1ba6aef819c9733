package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
)

// newTestLookupEnv returns a lookupEnv giving each test an isolated
// in-memory database, dynamic port, and throwaway backup file.
func newTestLookupEnv(t *testing.T) func(string) (string, bool) {
	t.Helper()
	backupPath := filepath.Join(t.TempDir(), "backup.json")
	return func(key string) (string, bool) {
		switch key {
		case "LIFTLOG_SQLITE_URL":
			return ":memory:", true
		case "LIFTLOG_ADDR":
			return "localhost:0", true
		case "LIFTLOG_BACKUP_PATH":
			return backupPath, true
		default:
			return "", false
		}
	}
}

// decodeJSONBody decodes a JSON response body into out.
func decodeJSONBody(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

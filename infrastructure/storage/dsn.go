package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const busyTimeoutPragma = "_pragma=busy_timeout(5000)"

// NormalizeDSN turns the URLs accepted in DATABASE_URL into modernc.org/sqlite URIs.
//
//	sqlite://items.db?mode=rwc  -> file:items.db?mode=rwc&_pragma=busy_timeout(5000)
//	sqlite::memory:             -> file:<uuid>?mode=memory&cache=shared
//	/var/lib/items.db           -> file:/var/lib/items.db?_pragma=busy_timeout(5000)
//
// Anonymous in-memory targets get a unique shared-cache name so every connection
// of one pool sees the same database while two pools never do.
func NormalizeDSN(raw string) string {
	dsn := strings.TrimSpace(raw)
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	dsn = strings.TrimPrefix(dsn, "sqlite:")
	dsn = strings.TrimPrefix(dsn, "file:")
	path, query, _ := strings.Cut(dsn, "?")

	if path == "" || path == ":memory:" {
		return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	}
	if strings.Contains(query, "mode=memory") {
		return "file:" + dsn
	}

	var params []string
	if query != "" {
		params = append(params, query)
	}
	if !strings.Contains(query, "busy_timeout") {
		params = append(params, busyTimeoutPragma)
	}
	return "file:" + path + "?" + strings.Join(params, "&")
}

// Package cache is the read-through cache in front of read-heavy listings.
//
// Entries are JSON snapshots of query results, stored WITHOUT expiry.
// Correctness relies on write paths deleting every key their write can
// stale, synchronously, before the response returns to the client.
//
// Key contract:
//
//   - "projects"                  : snapshot of the project listing.
//     Deleted by project create/update/delete.
//   - "project:{id}"              : snapshot of one project detail.
//     Deleted by update/delete of that project.
//   - "status_updates"            : snapshot of the full status-update listing.
//   - "status_updates:user:{id}"  : snapshot of one user's status updates.
//     Both deleted by any operation touching the status ledger
//     (create/reassign/remove assignment, submit, edit).
package cache

import (
	"context"
	"fmt"
)

type Client interface {
	// Get returns the entry for key, and whether it was found.
	//
	// (nil, false, nil) is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores val under key. No TTL is set.
	Set(ctx context.Context, key string, val []byte) error

	// Del removes the entries for keys. Missing keys are not an error.
	Del(ctx context.Context, keys ...string) error
}

func KeyProjects() string {
	return "projects"
}

func KeyProject(projectId int) string {
	return fmt.Sprintf("project:%d", projectId)
}

func KeyStatusUpdates() string {
	return "status_updates"
}

func KeyUserStatusUpdates(userId int) string {
	return fmt.Sprintf("status_updates:user:%d", userId)
}

// Package store is the persistence boundary: a namespaced key-value store of
// JSON blobs. Every durable thing the system owns (action log, custom rules,
// toggle maps, reminder approval/cancellation/sent logs, client status
// overrides) lives under one of the named keys below.
package store

import (
	"context"

	"bitbucket.org/mmdatafocus/alerts_backend/utils"
)

// Namespace keys. ResetAll clears exactly these and nothing else.
const (
	KeyAlertActions          = "alert_actions"
	KeyCustomRules           = "custom_rules"
	KeyRuleToggles           = "rule_toggles"
	KeyReminderApprovals     = "reminder_approvals"
	KeyReminderCancellations = "reminder_cancellations"
	KeySentReminders         = "sent_reminders"
	KeyClientStatuses        = "client_statuses"
)

var Namespaces = []string{
	KeyAlertActions,
	KeyCustomRules,
	KeyRuleToggles,
	KeyReminderApprovals,
	KeyReminderCancellations,
	KeySentReminders,
	KeyClientStatuses,
}

type Store interface {
	// Get returns the raw blob under key; found=false when the key is unset.
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// Update performs an atomic read-modify-write of one key. fn receives nil
	// when the key is unset. Appends to the action log go through Update so
	// "last entry wins" stays well defined under concurrent writers.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
	// ResetAll irreversibly clears every namespace key. Demo/test reset only.
	ResetAll(ctx context.Context) error
}

// GetObject unmarshals the blob under key into a zero value of T.
// Returns the zero value when the key is unset.
func GetObject[T any](ctx context.Context, s Store, key string) (T, error) {
	var out T
	data, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return out, err
	}
	if err := utils.UnmarshalFromJSON(data, &out); err != nil {
		return out, err
	}
	return out, nil
}

func SetObject[T any](ctx context.Context, s Store, key string, value T) error {
	data, err := utils.MarshalToJSON(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}

// AppendToList appends one entry to the JSON list stored under key,
// creating the list if the key is unset.
func AppendToList[T any](ctx context.Context, s Store, key string, entry T) error {
	return s.Update(ctx, key, func(current []byte) ([]byte, error) {
		var list []T
		if len(current) > 0 {
			if err := utils.UnmarshalFromJSON(current, &list); err != nil {
				return nil, err
			}
		}
		list = append(list, entry)
		return utils.MarshalToJSON(list)
	})
}

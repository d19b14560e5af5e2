// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getIdentity = `
		SELECT
			device_id,
			display_name
		FROM replica_identity
		WHERE id = 1;`

	upsertIdentity = `
		INSERT INTO replica_identity (
			id,
			device_id,
			display_name
		) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			device_id    = excluded.device_id,
			display_name = excluded.display_name;`

	getState = `
		SELECT state
		FROM replica_state
		WHERE id = 1;`

	upsertState = `
		INSERT INTO replica_state (
			id,
			state,
			updated_at
		) VALUES (1, $1, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			state      = excluded.state,
			updated_at = CURRENT_TIMESTAMP;`
)

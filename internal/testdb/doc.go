// Package testdb provides helpers for tests that run against a real
// PostgreSQL database. Tests using it are tagged `integration` and are
// skipped when no database URL is configured.
//
// Typical use:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		s := postgres.NewPostgresPersonStore(tx, nil)
//		...
//	})
//
// Every WithTx callback runs in a transaction that is rolled back
// afterwards, so tests never see each other's rows.
package testdb

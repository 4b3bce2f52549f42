package domain

import "context"

// UnitOfWork is a storage transaction. Writes issued through its repositories
// become visible only after Commit; Rollback discards all of them and is a no-op
// once the unit has been committed.
type UnitOfWork interface {
	Activities() ActivityRepository
	Visitors() VisitorRepository
	Registrations() RegistrationRepository
	Commit() error
	Rollback() error
}

// Store gives access to the repositories outside a transaction and opens units
// of work.
type Store interface {
	Begin(ctx context.Context) (UnitOfWork, error)
	Activities() ActivityRepository
	Visitors() VisitorRepository
	Registrations() RegistrationRepository
}

// SlotLocker serializes admissions competing for the same turn. The returned
// function releases the lock.
type SlotLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// AdmissionRecorder observes admission outcomes. An empty kind marks an
// accepted batch.
type AdmissionRecorder interface {
	RecordAdmission(activityName string, kind AdmissionKind, participants int)
}

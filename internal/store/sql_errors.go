// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified covers every error the classifier does not recognise.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a UNIQUE constraint rejected the write.
	UniqueViolation

	// ForeignKeyViolation means a referenced row does not exist.
	ForeignKeyViolation

	// Transient means the operation failed because of a temporary
	// condition (lock, serialization failure, connection loss).
	Transient
)

// String implements fmt.Stringer.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case Transient:
		return "transient"
	default:
		return "unclassified"
	}
}

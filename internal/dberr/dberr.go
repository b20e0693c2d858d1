// Package dberr converts database driver errors into API errors.
//
// Postgres SQLSTATE codes and MongoDB write errors are mapped onto a small
// set of categories, then turned into *errs.HTTPError values with
// user-friendly messages (a unique violation becomes "A word with this
// identifier already exists" rather than a 500).
package dberr

import (
	"fmt"
	"strings"
)

// Code is the category a driver error falls into.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	InvalidText         Code = "invalid_text_representation"
	InvalidRegex        Code = "invalid_regular_expression"
	QueryCanceled       Code = "query_canceled"
	ConnectionFailure   Code = "connection_failure"
)

// Severity mirrors the Postgres severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is the normalized form of a driver error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE onto a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "22P02":
		return InvalidText
	case "2201B":
		return InvalidRegex
	case "57014":
		return QueryCanceled
	}
	if strings.HasPrefix(sqlState, "08") {
		return ConnectionFailure
	}
	return Other
}

// MapSeverity maps a Postgres severity string onto a Severity.
func MapSeverity(severity string) Severity {
	switch strings.ToUpper(severity) {
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	case "NOTICE":
		return SeverityNotice
	case "DEBUG":
		return SeverityDebug
	case "INFO":
		return SeverityInfo
	case "LOG":
		return SeverityLog
	default:
		return SeverityError
	}
}

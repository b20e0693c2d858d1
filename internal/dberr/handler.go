package dberr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/dictionary-api/internal/errs"
)

var (
	uniqueKeyPattern   = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
	mongoIndexPattern  = regexp.MustCompile(`index: (\S+) dup key`)
	mongoCollectionRaw = regexp.MustCompile(`collection: \S+\.(\S+) index`)
)

// ErrCode reports the Code carried by err, or Other.
func ErrCode(err error) Code {
	var dbErr *Error
	if errors.As(err, &dbErr) {
		return dbErr.Code
	}
	return Other
}

// ConvertPgError normalizes a pgconn.PgError.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ConvertMongoError normalizes a MongoDB duplicate key error. Other mongo
// errors are reported as Other.
func ConvertMongoError(src error) *Error {
	out := &Error{
		Code:      Other,
		Severity:  SeverityError,
		Message:   src.Error(),
		driverErr: src,
	}

	if mongo.IsDuplicateKeyError(src) {
		out.Code = UniqueViolation
		out.DatabaseCode = "11000"
		if m := mongoIndexPattern.FindStringSubmatch(src.Error()); len(m) > 1 {
			out.ConstraintName = m[1]
		}
		if m := mongoCollectionRaw.FindStringSubmatch(src.Error()); len(m) > 1 {
			out.TableName = m[1]
		}
	}
	if mongo.IsTimeout(src) {
		out.Code = QueryCanceled
	}
	if mongo.IsNetworkError(src) {
		out.Code = ConnectionFailure
	}

	return out
}

// generateErrorCode builds "<DOMAIN>_<ACTION>", e.g. words + UniqueViolation
// gives WORD_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText, InvalidRegex:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(dbErr *Error) string {
	entityName := getEntityName(dbErr.TableName, dbErr.ColumnName)

	switch dbErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)
	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)
	case NotNullViolation:
		fieldName := humanizeText(dbErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)
	case CheckViolation:
		fieldName := humanizeText(dbErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"
	case InvalidText:
		return "The provided id is invalid"
	case InvalidRegex:
		return "The search keyword could not be processed"
	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers a "<entity>_id" column, then the singular table name.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText turns "word_class" into "Word Class".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation understands "unique_<table>_<column>",
// "<table>_<column>_key" and mongo's "<column>_1" index names.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeyPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	if name, ok := strings.CutSuffix(constraintName, "_1"); ok && !strings.Contains(name, "_1_") {
		return name
	}

	return ""
}

// HandleError converts a database error into an *errs.HTTPError.
// HTTP errors pass through unchanged; unknown errors become a 500.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var dbErr *Error
	var pgerr *pgconn.PgError
	switch {
	case errors.As(err, &pgerr):
		dbErr = ConvertPgError(pgerr)
	case mongo.IsDuplicateKeyError(err):
		dbErr = ConvertMongoError(err)
	}

	if dbErr != nil {
		errorCode := generateErrorCode(dbErr.TableName, dbErr.Code)
		userMessage := formatUserFriendlyMessage(dbErr)

		switch dbErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil, nil)
		case UniqueViolation:
			if columnName := extractColumnForUniqueViolation(dbErr.ConstraintName); columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)
		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(dbErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)
		case CheckViolation, InvalidText, InvalidRegex:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)
		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) || errors.Is(err, mongo.ErrNoDocuments) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}

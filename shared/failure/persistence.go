package failure

import (
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"strings"

	"rentdesk/shared/constant"

	"github.com/lib/pq"
)

const (
	DetailForeignKeyViolation = "foreign_key_violation"
	DetailUniqueViolation     = "unique_violation"
	DetailInvalidValue        = "invalid_value"
	DetailDatabaseUnavailable = "database_unavailable"
	DetailPersistenceFailure  = "persistence_failure"
)

// Persistence classifies a database error into a Failure with a stable details code and a
// generic message. Failures already in the chain are returned untouched.
func Persistence(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := As(err); ok {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)

		switch {
		case code == constant.PqErrorCodeFkViolation:
			return &Failure{Code: http.StatusBadRequest, Message: "referenced record does not exist", Details: DetailForeignKeyViolation}
		case code == constant.PqErrorCodeUniqueViolation:
			return &Failure{Code: http.StatusConflict, Message: "record already exists", Details: DetailUniqueViolation}
		case code == constant.PqErrorCodeNotNullViolation, code == constant.PqErrorCodeCheckViolation, strings.HasPrefix(code, constant.PqErrorClassDataException):
			return &Failure{Code: http.StatusBadRequest, Message: "invalid value", Details: DetailInvalidValue}
		case strings.HasPrefix(code, constant.PqErrorClassConnection):
			return Unavailable("database unavailable")
		}
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return Unavailable("database unavailable")
	}

	return InternalError(err)
}

package service

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/repo"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
	ErrDuplicate  = errors.New("duplicate")  // unique constraint
	ErrForeignKey = errors.New("foreign key") // missing referenced row
)

// Error carries a message that is safe to show to API clients.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Kind.Error() + ": " + e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// PublicMessage returns the client-safe message of err, or def for unexpected errors.
func PublicMessage(err error, def string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return def
}

type field struct {
	name string
	set  bool
}

func requireFields(fields ...field) error {
	missing := lo.FilterMap(fields, func(f field, _ int) (string, bool) {
		return f.name, !f.set
	})
	if len(missing) == 0 {
		return nil
	}
	return fail(ErrValidation, "missing required field(s): %v", missing)
}

// storeErr translates repo and driver errors into service errors.
func storeErr(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fail(ErrNotFound, "%s not found", entity)
	case errors.Is(err, repo.ErrCustomerMissing), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fail(ErrForeignKey, "customer does not exist")
	case errors.Is(err, repo.ErrProductInUse):
		return fail(ErrConflict, "product is referenced by existing orders")
	case errors.Is(err, repo.ErrAlreadyCancelled):
		return fail(ErrConflict, "order already cancelled")
	}
	return err
}
